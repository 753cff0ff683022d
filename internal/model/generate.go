package model

import "github.com/AlexZinkM/bulk-checker/internal/crypto"

// GenerateResult describes the files written by key generation.
// Keys[i] is written on line i of both files.
type GenerateResult struct {
	PrivatePath string
	PublicPath  string
	Keys        []crypto.Keypair
}

package model

import (
	"github.com/gagliardetto/solana-go"
)

// Category is the output a checked wallet is sorted into
type Category string

const (
	CategoryFunded Category = "FUNDED"
	CategoryEmpty  Category = "EMPTY"
)

// BalanceReading is the outcome of a single balance probe
type BalanceReading struct {
	Address  solana.PublicKey
	Lamports uint64
	Err      error // set when the probe failed; Lamports is then meaningless
}

// Category returns where the reading belongs. Failed probes count as empty.
func (r BalanceReading) Category() Category {
	if r.Err == nil && r.Lamports > 0 {
		return CategoryFunded
	}
	return CategoryEmpty
}

// ClassificationRecord is the text written for one checked wallet
type ClassificationRecord struct {
	Secret   string
	Address  string
	Balance  string // SOL with 9 decimals, or the failure reason
	Failed   bool
	Category Category
}

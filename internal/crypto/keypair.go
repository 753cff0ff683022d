package crypto

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrInvalidKeyLength = errors.New("invalid private key length: expected 64 bytes")
	ErrKeyMismatch      = errors.New("public half does not match private seed")
)

// Keypair is a Solana secret key together with its public address.
// The secret bytes are copied on construction and never handed out mutably.
type Keypair struct {
	secret solana.PrivateKey
}

// NewKeypair generates a fresh random keypair.
func NewKeypair() (Keypair, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return Keypair{}, fmt.Errorf("failed to generate private key: %w", err)
	}
	return Keypair{secret: priv}, nil
}

// KeypairFromBytes builds a keypair from the full 64-byte Solana secret
// (32-byte seed followed by the 32-byte public key).
func KeypairFromBytes(b []byte) (Keypair, error) {
	if len(b) != ed25519.PrivateKeySize {
		return Keypair{}, ErrInvalidKeyLength
	}

	// Same check solders applies: the public half must derive from the seed
	derived := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], b[ed25519.SeedSize:]) {
		return Keypair{}, ErrKeyMismatch
	}

	secret := make(solana.PrivateKey, len(b))
	copy(secret, b)
	return Keypair{secret: secret}, nil
}

// KeypairFromBase58 builds a keypair from the base58 form printed by
// solana-keygen and most wallets.
func KeypairFromBase58(s string) (Keypair, error) {
	priv, err := solana.PrivateKeyFromBase58(s)
	if err != nil {
		return Keypair{}, fmt.Errorf("failed to decode base58 key: %w", err)
	}
	return KeypairFromBytes(priv)
}

// PublicKey returns the public address.
func (k Keypair) PublicKey() solana.PublicKey {
	return k.secret.PublicKey()
}

// String returns the secret key in base58.
func (k Keypair) String() string {
	return k.secret.String()
}

// Bytes returns a copy of the 64-byte secret.
func (k Keypair) Bytes() []byte {
	out := make([]byte, len(k.secret))
	copy(out, k.secret)
	return out
}

// IsZero reports whether the keypair was never initialised.
func (k Keypair) IsZero() bool {
	return len(k.secret) == 0
}

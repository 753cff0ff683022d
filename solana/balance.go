package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/bulk-checker/internal/client"

	"github.com/gagliardetto/solana-go"
)

// BalanceProbe looks up the balance of an address in lamports
type BalanceProbe interface {
	GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error)
}

var _ BalanceProbe = (*client.SolanaClient)(nil)

// NewRPCProbe returns a probe backed by the Solana JSON-RPC node at rpcURL
func NewRPCProbe(rpcURL, commitment string) (*client.SolanaClient, error) {
	solanaClient, err := client.NewSolanaClient(rpcURL, commitment)
	if err != nil {
		return nil, fmt.Errorf("failed to create Solana client: %w", err)
	}
	return solanaClient, nil
}

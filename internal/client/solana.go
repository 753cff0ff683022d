package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaClient is a client for reading balances from a Solana RPC node
type SolanaClient struct {
	rpcClient  *rpc.Client
	rpcURL     string
	commitment rpc.CommitmentType
}

// NewSolanaClient creates a new Solana client for the given RPC endpoint.
// An empty commitment falls back to "confirmed".
func NewSolanaClient(rpcURL, commitment string) (*SolanaClient, error) {
	if strings.TrimSpace(rpcURL) == "" {
		return nil, fmt.Errorf("rpc url is empty")
	}

	c, err := parseCommitment(commitment)
	if err != nil {
		return nil, err
	}

	return &SolanaClient{
		rpcClient:  rpc.New(rpcURL),
		rpcURL:     rpcURL,
		commitment: c,
	}, nil
}

// URL returns the RPC endpoint the client talks to
func (c *SolanaClient) URL() string {
	return c.rpcURL
}

// GetBalance gets SOL balance in lamports for the given address
func (c *SolanaClient) GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, owner, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	if balance == nil {
		return 0, fmt.Errorf("failed to get SOL balance: empty response")
	}
	return balance.Value, nil
}

// Close releases the underlying RPC connection
func (c *SolanaClient) Close() error {
	return c.rpcClient.Close()
}

func parseCommitment(s string) (rpc.CommitmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "confirmed":
		return rpc.CommitmentConfirmed, nil
	case "finalized":
		return rpc.CommitmentFinalized, nil
	case "processed":
		return rpc.CommitmentProcessed, nil
	default:
		return "", fmt.Errorf("unknown commitment %q: use processed, confirmed or finalized", s)
	}
}

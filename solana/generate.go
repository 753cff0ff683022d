package solana

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlexZinkM/bulk-checker/internal/crypto"
	"github.com/AlexZinkM/bulk-checker/internal/logx"
	"github.com/AlexZinkM/bulk-checker/internal/model"
)

// ErrInvalidCount is returned for a negative number of keys
var ErrInvalidCount = errors.New("key count must not be negative")

// createOutput truncates or creates one of the generated key files
var createOutput = func(path string, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
}

// GenerateKeys creates count new keypairs and writes them to two line-aligned
// files: base58 secrets to privPath and addresses to pubPath. Line i of both
// files belongs to the same keypair. A zero count leaves two empty files.
// Any failure stops generation; both files are closed on every path.
func GenerateKeys(ctx context.Context, count int, privPath, pubPath string) (res *model.GenerateResult, err error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}
	if privPath == pubPath {
		return nil, fmt.Errorf("private and public key files must differ")
	}

	// Registered first so it runs after both files are closed
	defer func() {
		if err != nil {
			res = nil
		}
	}()

	log := logx.With("generator")
	log.Infow("generating wallets", "count", count, "private_file", privPath, "public_file", pubPath)

	privFile, err := createOutput(privPath, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", privPath, err)
	}
	defer closeFile(privFile, privPath, &err)

	pubFile, err := createOutput(pubPath, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", pubPath, err)
	}
	defer closeFile(pubFile, pubPath, &err)

	privW := bufio.NewWriter(privFile)
	pubW := bufio.NewWriter(pubFile)

	keys := make([]crypto.Keypair, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation interrupted after %d keys: %w", i, err)
		}

		kp, err := crypto.NewKeypair()
		if err != nil {
			return nil, err
		}

		if _, err := privW.WriteString(kp.String() + "\n"); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", privPath, err)
		}
		if _, err := pubW.WriteString(kp.PublicKey().String() + "\n"); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", pubPath, err)
		}
		keys = append(keys, kp)
	}

	if err := privW.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush %s: %w", privPath, err)
	}
	if err := pubW.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush %s: %w", pubPath, err)
	}

	log.Infow("wallets generated", "count", len(keys))

	return &model.GenerateResult{
		PrivatePath: privPath,
		PublicPath:  pubPath,
		Keys:        keys,
	}, nil
}

// closeFile closes f and reports the close error unless an earlier one is set
func closeFile(f io.Closer, path string, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close %s: %w", path, cerr)
	}
}

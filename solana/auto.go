package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/bulk-checker/internal/model"
)

// GenerateAndCheck generates count keys and immediately checks the secret
// file that was just written. opt.InputPath is replaced by privPath.
func GenerateAndCheck(ctx context.Context, count int, privPath, pubPath string, opt CheckOptions) (*model.GenerateResult, *model.CheckReport, error) {
	gen, err := GenerateKeys(ctx, count, privPath, pubPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate keys: %w", err)
	}

	opt.InputPath = gen.PrivatePath
	report, err := CheckWallets(ctx, opt)
	return gen, report, err
}

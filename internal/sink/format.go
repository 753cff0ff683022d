package sink

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/bulk-checker/internal/common"
	"github.com/AlexZinkM/bulk-checker/internal/model"
)

const (
	separatorWidth = 130
	secretWidth    = 50
	addressWidth   = 45
	balanceWidth   = 10
	previewLen     = 20
)

// Separator is the horizontal rule framing the header
func Separator() string {
	return strings.Repeat("-", separatorWidth)
}

// Header returns the column header block, identical for every output
func Header() string {
	cols := fmt.Sprintf("%-*s | %-*s | %-*s", secretWidth, "SECRET KEY (Base58)", addressWidth, "PUBLIC KEY", balanceWidth, "BALANCE")
	return Separator() + "\n" + cols + "\n" + Separator() + "\n"
}

// NewRecord builds the record for a probe result
func NewRecord(secret string, reading model.BalanceReading) model.ClassificationRecord {
	rec := model.ClassificationRecord{
		Secret:   secret,
		Address:  reading.Address.String(),
		Category: reading.Category(),
	}
	if reading.Err != nil {
		rec.Failed = true
		rec.Balance = reading.Err.Error()
		return rec
	}
	rec.Balance = common.LamportsToSOL(reading.Lamports) + " SOL"
	return rec
}

// FormatRecord renders one record line without the trailing newline.
// Failed probes show a shortened secret and the reason instead of the columns.
func FormatRecord(rec model.ClassificationRecord) string {
	if rec.Failed {
		return fmt.Sprintf("%s... | Error: %s", preview(rec.Secret), rec.Balance)
	}
	return fmt.Sprintf("%-*s | %-*s | %s", secretWidth, rec.Secret, addressWidth, rec.Address, rec.Balance)
}

// Summary returns the footer written at the end of a run
func Summary(c model.RunCounters, fundedPath, emptyPath string) string {
	return fmt.Sprintf(
		"Done.\n"+
			"Total checked : %d\n"+
			"Balance > 0   : %d (saved to %s)\n"+
			"Balance = 0   : %d (saved to %s)\n",
		c.Checked, c.Funded, fundedPath, c.Empty, emptyPath,
	)
}

func preview(secret string) string {
	if len(secret) <= previewLen {
		return secret
	}
	return secret[:previewLen]
}

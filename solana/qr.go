package solana

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// writeAddressQR saves a PNG QR code of address as <dir>/<address>.png
func writeAddressQR(dir, address string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create QR dir: %w", err)
	}

	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	path := filepath.Join(dir, address+".png")
	if err := qr.WriteFile(qrSize, path); err != nil {
		return "", fmt.Errorf("failed to write QR code: %w", err)
	}
	return path, nil
}

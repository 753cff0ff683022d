package crypto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseLine decodes one line of an input file into a keypair.
// Two encodings are accepted: a JSON byte array as written by solana-keygen
// ("[12,34,...]") and a base58 secret string. Every failure, including a
// blank line, is reported as ok == false with no further detail.
func ParseLine(line string) (kp Keypair, ok bool) {
	content := strings.TrimSpace(line)
	if content == "" {
		return Keypair{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			kp, ok = Keypair{}, false
		}
	}()

	var err error
	if isByteArray(content) {
		kp, err = parseByteArray(content)
	} else {
		kp, err = KeypairFromBase58(content)
	}
	if err != nil {
		return Keypair{}, false
	}
	return kp, true
}

func isByteArray(s string) bool {
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// parseByteArray follows solana-go's keygen file reader: a JSON array
// decodes straight into []byte, values outside 0..255 are rejected.
func parseByteArray(s string) (Keypair, error) {
	var raw []byte
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return Keypair{}, fmt.Errorf("failed to decode byte array: %w", err)
	}
	defer clear(raw)
	return KeypairFromBytes(raw)
}

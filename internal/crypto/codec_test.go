package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteArrayLine(t *testing.T, b []byte) string {
	t.Helper()
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	out, err := json.Marshal(ints)
	require.NoError(t, err)
	return string(out)
}

func TestParseLine(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	t.Run("base58", func(t *testing.T) {
		parsed, ok := ParseLine(kp.String())
		require.True(t, ok)
		assert.Equal(t, kp.PublicKey(), parsed.PublicKey())
		assert.Equal(t, kp.String(), parsed.String())
	})

	t.Run("base58 with surrounding whitespace", func(t *testing.T) {
		parsed, ok := ParseLine("  \t" + kp.String() + " \r\n")
		require.True(t, ok)
		assert.Equal(t, kp.PublicKey(), parsed.PublicKey())
	})

	t.Run("byte array", func(t *testing.T) {
		parsed, ok := ParseLine(byteArrayLine(t, kp.Bytes()))
		require.True(t, ok)
		assert.Equal(t, kp.PublicKey(), parsed.PublicKey())
		assert.Equal(t, kp.String(), parsed.String())
	})

	t.Run("both encodings give the same keypair", func(t *testing.T) {
		a, ok := ParseLine(kp.String())
		require.True(t, ok)
		b, ok := ParseLine(byteArrayLine(t, kp.Bytes()))
		require.True(t, ok)
		assert.Equal(t, a.Bytes(), b.Bytes())
	})

	t.Run("parsing is deterministic", func(t *testing.T) {
		first, ok := ParseLine(kp.String())
		require.True(t, ok)
		second, ok := ParseLine(first.String())
		require.True(t, ok)
		assert.Equal(t, first.PublicKey().String(), second.PublicKey().String())
	})
}

func TestParseLine_Failures(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	tampered := kp.Bytes()
	tampered[40] ^= 0xff

	ints := make([]int, 64)
	for i, v := range kp.Bytes() {
		ints[i] = int(v)
	}
	ints[0] = 256
	outOfRangeJSON, err := json.Marshal(ints)
	require.NoError(t, err)
	outOfRange := string(outOfRangeJSON)

	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace only", "   \t "},
		{"short byte array", "[1,2,3]"},
		{"broken json array", "[1,2,"},
		{"json array of strings", `["a","b"]`},
		{"byte value out of range", outOfRange},
		{"public half does not match seed", byteArrayLine(t, tampered)},
		{"invalid base58 characters", "0OIl-not-base58"},
		{"base58 of wrong length", "3yZe7d"},
		{"public key instead of secret", kp.PublicKey().String()},
		{"truncated secret", kp.String()[:40]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseLine(tt.line)
			assert.False(t, ok)
			assert.True(t, parsed.IsZero())
		})
	}
}

func TestKeypairFromBytes(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	t.Run("copies input", func(t *testing.T) {
		raw := kp.Bytes()
		parsed, err := KeypairFromBytes(raw)
		require.NoError(t, err)

		clear(raw)
		assert.Equal(t, kp.String(), parsed.String())
	})

	t.Run("bytes returns a copy", func(t *testing.T) {
		b := kp.Bytes()
		b[0] ^= 0xff
		assert.NotEqual(t, b, kp.Bytes())
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := KeypairFromBytes(make([]byte, 32))
		require.ErrorIs(t, err, ErrInvalidKeyLength)
	})

	t.Run("mismatched public half", func(t *testing.T) {
		raw := kp.Bytes()
		raw[63] ^= 0x01
		_, err := KeypairFromBytes(raw)
		require.ErrorIs(t, err, ErrKeyMismatch)
	})
}

package logx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskingCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(newMaskingCore(core)).Sugar()

	secret := "4Z7cXSyeFR8wNGMVXUE1TwtKn5D5Vu7FzEv69dokLv7KrQk7h6pu4LF8ZRR9yQBhc7uSM6RTTZtU1fmaxiNrxXrs"
	address := "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"

	logger.Infow("checked "+secret, "secret", secret, "address", address)
	logger.With("private_key", secret).Infow("derived")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "checked "+redacted, first.Message)
	fields := first.ContextMap()
	assert.Equal(t, redacted, fields["secret"])
	assert.Equal(t, address, fields["address"], "addresses are not masked")

	assert.Equal(t, redacted, entries[1].ContextMap()["private_key"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" WARNING "))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("err"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

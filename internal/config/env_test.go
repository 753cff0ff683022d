package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.mainnet-beta.solana.com", c.SolanaRPCURL)
	assert.Equal(t, "confirmed", c.Commitment)
	assert.Equal(t, 500*time.Millisecond, c.CheckInterval)
	assert.Equal(t, "skey.txt", c.InputFile)
	assert.Equal(t, "skey.txt", c.PrivateKeysFile)
	assert.Equal(t, "pkey.txt", c.PublicKeysFile)
	assert.Equal(t, "funded.txt", c.FundedFile)
	assert.Equal(t, "empty.txt", c.EmptyFile)
	assert.Empty(t, c.QRDir)
	assert.False(t, c.HideSecretsInLog)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "http://localhost:8899")
	t.Setenv("CHECK_INTERVAL", "2s")
	t.Setenv("HIDE_SECRETS", "true")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8899", c.SolanaRPCURL)
	assert.Equal(t, 2*time.Second, c.CheckInterval)
	assert.True(t, c.HideSecretsInLog)
}

func TestLoad_YAMLOverridesEnv(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "http://from-env:8899")
	t.Setenv("FUNDED_FILE", "env-funded.txt")

	path := filepath.Join(t.TempDir(), "bulkchecker.yaml")
	yml := "solana_rpc_url: http://from-yaml:8899\ncheck_interval: 1s\nqr_dir: qr\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-yaml:8899", c.SolanaRPCURL)
	assert.Equal(t, time.Second, c.CheckInterval)
	assert.Equal(t, "qr", c.QRDir)
	assert.Equal(t, "env-funded.txt", c.FundedFile, "keys missing from the file keep their env value")
}

func TestLoad_EmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := Load(path)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing yaml", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("CHECK_INTERVAL", "soon")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("same output files", func(t *testing.T) {
		t.Setenv("FUNDED_FILE", "out.txt")
		t.Setenv("EMPTY_FILE", "out.txt")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("negative interval", func(t *testing.T) {
		t.Setenv("CHECK_INTERVAL", "-1s")
		_, err := Load("")
		require.Error(t, err)
	})
}

func TestInitGet(t *testing.T) {
	require.NoError(t, Init(""))
	assert.NotNil(t, Get())
}

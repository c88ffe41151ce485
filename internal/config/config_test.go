package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvSeed, EnvLogLevel, EnvLogPretty, EnvShots} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, DefaultShots, cfg.Shots)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogPretty, "true")
	t.Setenv(EnvShots, "64")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 64, cfg.Shots)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "-3")
	t.Setenv(EnvShots, "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, DefaultShots, cfg.Shots)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that exist, even when empty.
	os.Unsetenv(EnvSeed)
	os.Unsetenv(EnvShots)
	path := filepath.Join(t.TempDir(), "qsim.env")
	require.NoError(t, os.WriteFile(path, []byte("QSIM_SEED=7\nQSIM_SHOTS=10\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvSeed)
		os.Unsetenv(EnvShots)
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 10, cfg.Shots)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, (&Config{LogLevel: "loud", Shots: 1}).Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, (&Config{LogLevel: "info", Shots: 0}).Validate(), ErrInvalidConfig)
	assert.NoError(t, (&Config{LogLevel: "error", Shots: 1}).Validate())
}

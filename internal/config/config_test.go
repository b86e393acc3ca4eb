package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GRPC_ADDR", "API_TOKEN", "MAX_SESSIONS", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, 1000, cfg.MaxSessions)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRPC_ADDR", "127.0.0.1:9090")
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("MAX_SESSIONS", "5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.GRPCAddr)
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, 5, cfg.MaxSessions)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TOKEN", "from-env")

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("API_TOKEN=from-file\nMAX_SESSIONS=7\n"), 0o600))

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIToken)
	assert.Equal(t, 7, cfg.MaxSessions)
}

func TestLoad_MultipleEnvFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("API_TOKEN=first\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("API_TOKEN=second\nLOG_LEVEL=warn\n"), 0o600))

	cfg, err := Load(filepath.Join(dir, "missing.env"), first, second)

	require.NoError(t, err)
	assert.Equal(t, "first", cfg.APIToken)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_UnreadableEnvFile(t *testing.T) {
	clearEnv(t)

	// A directory opens but cannot be read as an env file
	cfg, err := Load(t.TempDir())

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{"Non-numeric max sessions", "MAX_SESSIONS", "many", "invalid MAX_SESSIONS"},
		{"Negative max sessions", "MAX_SESSIONS", "-1", "invalid MAX_SESSIONS"},
		{"Unknown log level", "LOG_LEVEL", "loud", "invalid LOG_LEVEL"},
		{"Unknown log format", "LOG_FORMAT", "xml", "invalid LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

			assert.Nil(t, cfg)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: slog.LevelWarn, LogFormat: "json"}
	logger := cfg.NewLogger()

	assert.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultGRPCAddr    = ":8080"
	defaultAPIToken    = "dev-token"
	defaultMaxSessions = 1000
)

// Config holds the server settings read from the environment
type Config struct {
	GRPCAddr    string
	APIToken    string
	MaxSessions int
	LogLevel    slog.Level
	LogFormat   string // "text" or "json"
}

// Load reads the configuration from the environment
// Values from envFiles (default ".env") fill in variables that are not already set.
// Missing env files are ignored; unreadable or malformed ones fail.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		// Loaded one at a time so a missing file does not skip the rest
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{
		GRPCAddr:    getEnv("GRPC_ADDR", defaultGRPCAddr),
		APIToken:    getEnv("API_TOKEN", defaultAPIToken),
		MaxSessions: defaultMaxSessions,
		LogLevel:    slog.LevelInfo,
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if raw := os.Getenv("MAX_SESSIONS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MAX_SESSIONS %q: must be a non-negative integer", raw)
		}
		cfg.MaxSessions = n
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// NewLogger builds the slog logger described by the configuration
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

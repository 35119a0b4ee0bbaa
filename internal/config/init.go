package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration.
type Config struct {
	ServiceURL   string
	AssetBaseURL string
	TokenPath    string
	LogLevel     zerolog.Level
}

// Load loads application configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		ServiceURL:   getEnvOrDefault("PAWPLANET_SERVICE_URL", "http://localhost:5000"),
		AssetBaseURL: getEnvOrDefault("PAWPLANET_API_URL", "http://localhost:5000"),
		TokenPath:    getEnvOrDefault("PAWPLANET_TOKEN_PATH", defaultTokenPath()),
		LogLevel:     getLogLevel(),
	}
	return cfg
}

// Init initializes all application dependencies.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.LogLevel)

	log.Debug().
		Str("service_url", c.ServiceURL).
		Str("asset_base_url", c.AssetBaseURL).
		Str("log_level", c.LogLevel.String()).
		Msg("Application configuration loaded")
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// defaultTokenPath places the persisted session token under the home dir.
func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pawplanet", "token")
}

// getLogLevel parses log level from environment or returns default.
func getLogLevel() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

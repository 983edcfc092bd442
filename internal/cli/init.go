// Package cli provides common CLI initialization utilities shared by
// cmd/ggmoney and cmd/ggmoney-watch.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"ggmoney/internal/config"
	applog "ggmoney/internal/log"
)

// SetupLogger initializes structured logging with default settings and
// sets the result as the default logger.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// Package cli provides common initialization for the fintree binary:
// env-file loading, configuration, and logger setup.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"fintree/internal/config"
	applog "fintree/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger builds the application logger from the configuration and
// installs it as the default logger.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: "fintree",
		Output:    os.Stdout,
	})
	applog.SetDefault(logger)
	return logger
}

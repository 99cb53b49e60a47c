package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string

	// Tree dump output
	DumpFormat      string
	AmountPrecision int
}

func Load() *Config {
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DumpFormat:      getEnv("DUMP_FORMAT", "auto"),
		AmountPrecision: getEnvInt("AMOUNT_PRECISION", 2),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validLevels := []string{"debug", "info", "warn", "error"}
	if !oneOf(c.LogLevel, validLevels) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	validFormats := []string{"text", "json"}
	if !oneOf(c.LogFormat, validFormats) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	validDumps := []string{"plain", "pretty", "auto"}
	if !oneOf(c.DumpFormat, validDumps) {
		errors = append(errors, fmt.Sprintf("invalid dump format '%s': must be one of %v", c.DumpFormat, validDumps))
	}

	if c.AmountPrecision < 0 {
		errors = append(errors, fmt.Sprintf("invalid amount precision %d: must be at least 0", c.AmountPrecision))
	} else if c.AmountPrecision > 10 {
		errors = append(errors, fmt.Sprintf("invalid amount precision %d: must be at most 10", c.AmountPrecision))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func oneOf(value string, valid []string) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

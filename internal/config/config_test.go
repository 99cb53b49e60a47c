package config

import (
	"os"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid defaults",
			config: Config{
				LogLevel:        "info",
				LogFormat:       "text",
				DumpFormat:      "auto",
				AmountPrecision: 2,
			},
			wantErr: false,
		},
		{
			name: "valid json logging with pretty dump",
			config: Config{
				LogLevel:        "debug",
				LogFormat:       "json",
				DumpFormat:      "pretty",
				AmountPrecision: 0,
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			config: Config{
				LogLevel:        "trace",
				LogFormat:       "text",
				DumpFormat:      "plain",
				AmountPrecision: 2,
			},
			wantErr:     true,
			errorString: "invalid log level 'trace'",
		},
		{
			name: "invalid log format",
			config: Config{
				LogLevel:        "info",
				LogFormat:       "xml",
				DumpFormat:      "plain",
				AmountPrecision: 2,
			},
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name: "invalid dump format",
			config: Config{
				LogLevel:        "info",
				LogFormat:       "text",
				DumpFormat:      "fancy",
				AmountPrecision: 2,
			},
			wantErr:     true,
			errorString: "invalid dump format 'fancy'",
		},
		{
			name: "negative precision",
			config: Config{
				LogLevel:        "info",
				LogFormat:       "text",
				DumpFormat:      "plain",
				AmountPrecision: -1,
			},
			wantErr:     true,
			errorString: "invalid amount precision -1: must be at least 0",
		},
		{
			name: "precision too large",
			config: Config{
				LogLevel:        "info",
				LogFormat:       "text",
				DumpFormat:      "plain",
				AmountPrecision: 11,
			},
			wantErr:     true,
			errorString: "invalid amount precision 11: must be at most 10",
		},
		{
			name: "multiple errors reported together",
			config: Config{
				LogLevel:        "loud",
				LogFormat:       "xml",
				DumpFormat:      "plain",
				AmountPrecision: 2,
			},
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalVars := map[string]string{
		"LOG_LEVEL":        os.Getenv("LOG_LEVEL"),
		"LOG_FORMAT":       os.Getenv("LOG_FORMAT"),
		"DUMP_FORMAT":      os.Getenv("DUMP_FORMAT"),
		"AMOUNT_PRECISION": os.Getenv("AMOUNT_PRECISION"),
	}

	// Clean environment
	for key := range originalVars {
		os.Unsetenv(key)
	}

	// Restore env vars at end of test
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.LogFormat != "text" {
			t.Errorf("Load() LogFormat = %v, want text", cfg.LogFormat)
		}
		if cfg.DumpFormat != "auto" {
			t.Errorf("Load() DumpFormat = %v, want auto", cfg.DumpFormat)
		}
		if cfg.AmountPrecision != 2 {
			t.Errorf("Load() AmountPrecision = %v, want 2", cfg.AmountPrecision)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("LOG_FORMAT", "json")
		os.Setenv("DUMP_FORMAT", "plain")
		os.Setenv("AMOUNT_PRECISION", "4")

		cfg := Load()

		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
		if cfg.LogFormat != "json" {
			t.Errorf("Load() LogFormat = %v, want json", cfg.LogFormat)
		}
		if cfg.DumpFormat != "plain" {
			t.Errorf("Load() DumpFormat = %v, want plain", cfg.DumpFormat)
		}
		if cfg.AmountPrecision != 4 {
			t.Errorf("Load() AmountPrecision = %v, want 4", cfg.AmountPrecision)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		os.Setenv("AMOUNT_PRECISION", "invalid")

		cfg := Load()

		if cfg.AmountPrecision != 2 {
			t.Errorf("Load() AmountPrecision = %v, want 2 (default for invalid input)", cfg.AmountPrecision)
		}
	})
}

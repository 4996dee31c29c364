package config

import (
	"os"
	"strconv"

	"skillprep/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Seed      SeedConfig
	Report    ReportConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	UIPort  string
	GinMode string
}

// SeedConfig controls what gets loaded into the store at startup
type SeedConfig struct {
	DemoUser     bool
	DemoUsername string
}

// ReportConfig holds settings for generated practice reports
type ReportConfig struct {
	SheetSessions string
	SheetProgress string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			UIPort:  getEnvOrDefault("UI_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Seed: SeedConfig{
			DemoUser:     getEnvBoolOrDefault("SEED_DEMO_USER", true),
			DemoUsername: getEnvOrDefault("DEMO_USERNAME", "alexchen"),
		},
		Report: ReportConfig{
			SheetSessions: getEnvOrDefault("REPORT_SHEET_SESSIONS", "Sessions"),
			SheetProgress: getEnvOrDefault("REPORT_SHEET_PROGRESS", "Progress"),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("server port must be numeric")
	}
	if config.Profiling.Enabled {
		if _, err := strconv.Atoi(config.Profiling.Port); err != nil {
			return errors.ConfigInvalid("pprof port must be numeric")
		}
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

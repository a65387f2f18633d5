package config

import (
	"os"
	"strconv"

	"randlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	API      APIConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web UI server settings
type ServerConfig struct {
	Port string
}

// APIConfig holds JSON API server settings
type APIConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds the optional report-history database settings.
// An empty URL disables persistence; reports are then kept in memory only.
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig holds default analysis parameters
type AnalysisConfig struct {
	DomainSize int
	SampleSize int
	Seed       int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		API: APIConfig{
			Port:    getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Analysis: AnalysisConfig{
			DomainSize: getEnvIntOrDefault("DEFAULT_N", 100),
			SampleSize: getEnvIntOrDefault("DEFAULT_SAMPLE_SIZE", 10000),
			Seed:       getEnvInt64OrDefault("SEED", 1),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.DomainSize <= 0 {
		return errors.ConfigInvalid("DEFAULT_N must be > 0")
	}
	if config.Analysis.SampleSize <= 0 {
		return errors.ConfigInvalid("DEFAULT_SAMPLE_SIZE must be > 0")
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

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

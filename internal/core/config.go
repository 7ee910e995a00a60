package core

import (
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	LogLevel      string // DEBUG, INFO, WARN, ERROR
	Workers       int    // Parallel classification workers
	MaxTextLength int    // Longest requirement text analyzed; 0 disables the cap
	Sheet         string // XLSX sheet to read; empty means the first sheet
}

const (
	DefaultWorkers       = 4
	DefaultMaxTextLength = 2000
)

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	workers, err := getEnvInt("EARSLINT_WORKERS", DefaultWorkers)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	maxLen, err := getEnvInt("EARSLINT_MAX_TEXT_LENGTH", DefaultMaxTextLength)
	if err != nil {
		return nil, err
	}
	if maxLen < 0 {
		return nil, &ValidationError{
			Field:   "EARSLINT_MAX_TEXT_LENGTH",
			Message: "must not be negative",
		}
	}

	cfg := &Config{
		LogLevel:      logLevel,
		Workers:       workers,
		MaxTextLength: maxLen,
		Sheet:         os.Getenv("EARSLINT_SHEET"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer environment variable, falling back to defaultValue when unset.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{
			Field:   key,
			Message: "must be an integer",
			Err:     err,
		}
	}
	return n, nil
}

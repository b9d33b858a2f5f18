package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the incident analysis service
type Config struct {
	// Server configuration
	Port           string
	AllowedOrigins string

	// Remote analysis endpoint override for the moderator-console client.
	// Empty means the default candidate list is used.
	AnalysisURL string

	// Per-attempt timeout for remote analysis calls
	ClientTimeout time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server defaults
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		// Client defaults
		AnalysisURL:   strings.TrimSpace(getEnv("ANALYSIS_URL", "")),
		ClientTimeout: getDurationEnv("CLIENT_TIMEOUT", 5*time.Second),

		// Logging defaults
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

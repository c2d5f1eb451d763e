package config

import (
	"os"
	"strconv"
)

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port         string
	LogLevel     string
	MaxBodyBytes int64
	Search       SearchSettings
}

// Load loads configuration from environment variables with defaults.
// Search settings are left as read so Validate sees them before ApplyDefaults runs.
func Load() *ServerConfig {
	cfg := &ServerConfig{
		Port:         GetEnv("SIMPLESEARCH_PORT", "8080"),
		LogLevel:     GetEnv("SIMPLESEARCH_LOG_LEVEL", "info"),
		MaxBodyBytes: int64(GetIntEnv("SIMPLESEARCH_MAX_BODY_BYTES", 10<<20)),
		Search: SearchSettings{
			Workers:           GetIntEnv("SIMPLESEARCH_WORKERS", 0),
			ParallelThreshold: GetIntEnv("SIMPLESEARCH_PARALLEL_THRESHOLD", 0),
		},
	}
	return cfg
}

// GetEnv returns the environment variable or the default value when unset
func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv returns the environment variable parsed as int, or the default value when unset or invalid
func GetIntEnv(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

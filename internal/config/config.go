// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the gateway.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string of the submission ledger. Required.
	DatabaseURL string

	// BackendURL is the base URL of the upstream maintenance backend. Required.
	BackendURL string

	// BackendTimeout bounds each upstream attempt. Defaults to 10s.
	BackendTimeout time.Duration

	// BackendMaxRetries is how many times a retryable upstream call is
	// repeated after the first attempt. Defaults to 2; 0 disables retries.
	BackendMaxRetries uint64

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (dashboard dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// ReportTimezone is the IANA zone in which report months are counted.
	// Defaults to "America/Sao_Paulo".
	ReportTimezone string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable that could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		ReportTimezone: getEnv("REPORT_TIMEZONE", "America/Sao_Paulo"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	cfg.BackendURL = os.Getenv("BACKEND_URL")
	if cfg.BackendURL == "" {
		missing = append(missing, "BACKEND_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.BackendTimeout, err = time.ParseDuration(getEnv("BACKEND_TIMEOUT", "10s")); err != nil || cfg.BackendTimeout <= 0 {
		return Config{}, fmt.Errorf("BACKEND_TIMEOUT must be a positive duration, got %q", os.Getenv("BACKEND_TIMEOUT"))
	}
	if cfg.BackendMaxRetries, err = strconv.ParseUint(getEnv("BACKEND_MAX_RETRIES", "2"), 10, 8); err != nil {
		return Config{}, fmt.Errorf("BACKEND_MAX_RETRIES must be a small non-negative integer, got %q", os.Getenv("BACKEND_MAX_RETRIES"))
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", os.Getenv("MAX_BODY_BYTES"))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

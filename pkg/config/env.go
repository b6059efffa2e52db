// Package config reads typed values from environment variables. Parse
// failures never abort: the helpers log a warning and return the
// caller's default, so a bad value degrades to the shipped
// configuration instead of taking the process down.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the variable's value, or def when unset or
// empty. No validation, no warnings.
func GetEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt parses the variable as an integer.
//
//	pageSize := GetEnvInt("WORKER_PAGE_SIZE", 50)
func GetEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		warnInvalid(key, raw, "integer", def, err)
		return def
	}
	return v
}

// GetEnvFloat parses the variable as a float64.
//
//	rps := GetEnvFloat("WEBHOOK_RATE_LIMIT", 2.0)
func GetEnvFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		warnInvalid(key, raw, "float", def, err)
		return def
	}
	return v
}

// GetEnvBool parses the variable with strconv.ParseBool semantics
// (1/t/true/0/f/false, any case).
//
//	forceMock := GetEnvBool("G2B_FORCE_MOCK", false)
func GetEnvBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		warnInvalid(key, raw, "boolean", def, err)
		return def
	}
	return v
}

// GetEnvDuration parses the variable with time.ParseDuration, so
// values like "30s" or "1h30m".
//
//	timeout := GetEnvDuration("WEBHOOK_SEND_TIMEOUT", 30*time.Second)
func GetEnvDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		warnInvalid(key, raw, "duration", def, err)
		return def
	}
	return v
}

func warnInvalid(key, raw, kind string, def any, err error) {
	slog.Warn("invalid environment variable, using default",
		slog.String("key", key),
		slog.String("value", raw),
		slog.String("expected", kind),
		slog.Any("default", def),
		slog.Any("error", err))
}

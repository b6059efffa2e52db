package worker

import (
	"fmt"
	"log/slog"
	"time"

	"bizeyes/internal/pkg/config"
)

// WorkerConfig controls the scheduled fetch-and-relay job: when it runs,
// how long a single run may take, and how much data each run pulls.
//
// All fields have defaults and validation rules; LoadConfigFromEnv never
// fails, it falls back to defaults on invalid input.
type WorkerConfig struct {
	// CronSchedule is a five-field cron expression for the relay job.
	// Default: "*/30 8-20 * * 1-5" (every 30 minutes during business
	// hours on weekdays, when 나라장터 publishes new notices).
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	// G2B publishes dates in KST, so the default is "Asia/Seoul".
	Timezone string

	// FetchTimeout bounds a single fetch-and-relay run.
	// Default: 5 minutes.
	FetchTimeout time.Duration

	// PageSize is the number of rows each scheduled run requests per
	// dataset. Range: 1-100 (G2B page size limit). Default: 50.
	PageSize int

	// HealthPort is the port for the worker's liveness/readiness server.
	// Range: 1024-65535. Default: 9091.
	HealthPort int
}

// DefaultConfig returns production-ready worker defaults.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule: "*/30 8-20 * * 1-5",
		Timezone:     "Asia/Seoul",
		FetchTimeout: 5 * time.Minute,
		PageSize:     50,
		HealthPort:   9091,
	}
}

// Validate checks every field and returns all violations aggregated.
func (c *WorkerConfig) Validate() error {
	var errors []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errors = append(errors, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errors = append(errors, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidateDuration(c.FetchTimeout, 10*time.Second, time.Hour); err != nil {
		errors = append(errors, fmt.Errorf("fetch timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.PageSize, 1, 100); err != nil {
		errors = append(errors, fmt.Errorf("page size: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errors = append(errors, fmt.Errorf("health port: %w", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation failed: %v", errors)
	}
	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables
// with fail-open fallback: an invalid value logs a warning, bumps the
// fallback metrics, and uses the default. The returned config is always
// valid and the error is always nil.
//
// Environment variables:
//   - CRON_SCHEDULE: cron expression (default "*/30 8-20 * * 1-5")
//   - WORKER_TIMEZONE: IANA timezone name (default "Asia/Seoul")
//   - FETCH_TIMEOUT: duration string 10s-1h (default "5m")
//   - WORKER_PAGE_SIZE: integer 1-100 (default 50)
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	fallbackApplied := false

	load := func(field, envKey string, result config.ConfigLoadResult) config.ConfigLoadResult {
		if result.FallbackApplied {
			fallbackApplied = true
			metrics.RecordValidationError(field)
			metrics.RecordFallback(field, "default")
			for _, warning := range result.Warnings {
				logger.Warn("Configuration fallback applied",
					slog.String("field", field),
					slog.String("env_key", envKey),
					slog.String("warning", warning))
			}
		}
		return result
	}

	cfg.CronSchedule = load("cron_schedule", "CRON_SCHEDULE",
		config.LoadEnvWithFallback("CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)).Value.(string)

	cfg.Timezone = load("timezone", "WORKER_TIMEZONE",
		config.LoadEnvWithFallback("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)).Value.(string)

	cfg.FetchTimeout = load("fetch_timeout", "FETCH_TIMEOUT",
		config.LoadEnvDuration("FETCH_TIMEOUT", cfg.FetchTimeout, func(d time.Duration) error {
			return config.ValidateDuration(d, 10*time.Second, time.Hour)
		})).Value.(time.Duration)

	cfg.PageSize = load("page_size", "WORKER_PAGE_SIZE",
		config.LoadEnvInt("WORKER_PAGE_SIZE", cfg.PageSize, func(v int) error {
			return config.ValidateIntRange(v, 1, 100)
		})).Value.(int)

	cfg.HealthPort = load("health_port", "WORKER_HEALTH_PORT",
		config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
			return config.ValidateIntRange(v, 1024, 65535)
		})).Value.(int)

	metrics.SetFallbackActive("", fallbackApplied)
	metrics.RecordLoadTimestamp()

	return &cfg, nil
}

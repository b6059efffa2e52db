package worker

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promauto registers against the default registry, so the test binary
// shares a single metrics instance.
var testWorkerMetrics = NewWorkerMetrics()

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "*/30 8-20 * * 1-5", cfg.CronSchedule)
	assert.Equal(t, "Asia/Seoul", cfg.Timezone)
	assert.Equal(t, 5*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 9091, cfg.HealthPort)

	assert.NoError(t, cfg.Validate())
}

func TestWorkerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WorkerConfig)
		wantErr string
	}{
		{
			name:    "invalid cron schedule",
			mutate:  func(c *WorkerConfig) { c.CronSchedule = "not a cron" },
			wantErr: "cron schedule",
		},
		{
			name:    "invalid timezone",
			mutate:  func(c *WorkerConfig) { c.Timezone = "Mars/Olympus_Mons" },
			wantErr: "timezone",
		},
		{
			name:    "fetch timeout too short",
			mutate:  func(c *WorkerConfig) { c.FetchTimeout = time.Second },
			wantErr: "fetch timeout",
		},
		{
			name:    "page size out of range",
			mutate:  func(c *WorkerConfig) { c.PageSize = 1000 },
			wantErr: "page size",
		},
		{
			name:    "privileged health port",
			mutate:  func(c *WorkerConfig) { c.HealthPort = 80 },
			wantErr: "health port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv(slog.Default(), testWorkerMetrics)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "0 9 * * *")
	t.Setenv("WORKER_TIMEZONE", "UTC")
	t.Setenv("FETCH_TIMEOUT", "10m")
	t.Setenv("WORKER_PAGE_SIZE", "20")
	t.Setenv("WORKER_HEALTH_PORT", "9191")

	cfg, err := LoadConfigFromEnv(slog.Default(), testWorkerMetrics)

	require.NoError(t, err)
	assert.Equal(t, "0 9 * * *", cfg.CronSchedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 9191, cfg.HealthPort)
}

func TestLoadConfigFromEnv_FallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "every day at nine")
	t.Setenv("WORKER_TIMEZONE", "KST")
	t.Setenv("FETCH_TIMEOUT", "2s")
	t.Setenv("WORKER_PAGE_SIZE", "0")
	t.Setenv("WORKER_HEALTH_PORT", "99999")

	cfg, err := LoadConfigFromEnv(slog.Default(), testWorkerMetrics)

	// fail-open: 잘못된 값은 전부 기본값으로 대체된다
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
	assert.NoError(t, cfg.Validate())
}

package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bizeyes/internal/pkg/config"
)

// WorkerMetrics tracks the scheduled relay job. It embeds the standard
// configuration metrics (worker_config_*) and adds job execution metrics:
//
//   - worker_cron_job_runs_total{status}: runs by success/failure
//   - worker_cron_job_duration_seconds: run duration histogram
//   - worker_cron_job_datasets_relayed_total: datasets delivered to the webhook
//   - worker_cron_job_last_success_timestamp: Unix time of the last clean run
type WorkerMetrics struct {
	*config.ConfigMetrics

	CronJobRunsTotal            *prometheus.CounterVec
	CronJobDurationSeconds      prometheus.Histogram
	CronJobDatasetsRelayedTotal prometheus.Counter
	CronJobLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates and registers all worker metrics. promauto
// registers against the default registry, so call this once per process.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		CronJobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Total number of scheduled relay job runs by status (success/failure)",
		}, []string{"status"}),

		CronJobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Duration of scheduled relay job runs in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		CronJobDatasetsRelayedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_cron_job_datasets_relayed_total",
			Help: "Total number of datasets relayed to the webhook across all runs",
		}),

		CronJobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful relay job run",
		}),
	}
}

// RecordJobRun increments the run counter; status is "success" or "failure".
func (m *WorkerMetrics) RecordJobRun(status string) {
	m.CronJobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes one run's duration in seconds.
func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.CronJobDurationSeconds.Observe(seconds)
}

// RecordDatasetsRelayed adds the number of datasets delivered in one run.
func (m *WorkerMetrics) RecordDatasetsRelayed(count int) {
	m.CronJobDatasetsRelayedTotal.Add(float64(count))
}

// RecordLastSuccess stamps the current time as the last successful run.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.CronJobLastSuccessTimestamp.SetToCurrentTime()
}

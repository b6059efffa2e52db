package relay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for relay pipeline monitoring
var (
	// relayRequestsTotal tracks relay invocations per kind and data source
	relayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total number of relay pipeline invocations",
		},
		[]string{"kind", "source"}, // source: live|mock
	)

	// fetchFallbacksTotal tracks live fetches that fell back to mock data
	fetchFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_fetch_fallbacks_total",
			Help: "Total number of live fetches replaced by mock data",
		},
		[]string{"kind"},
	)

	// webhookSendsTotal tracks webhook delivery results per kind
	webhookSendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_webhook_sends_total",
			Help: "Total number of webhook deliveries",
		},
		[]string{"kind", "status"}, // status: success|failure
	)

	// webhookDuration tracks webhook delivery duration
	webhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_webhook_duration_seconds",
			Help:    "Webhook delivery duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"kind"},
	)
)

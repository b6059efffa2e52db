package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"bizeyes/internal/handler/http/respond"
	"bizeyes/internal/resilience/circuitbreaker"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// UpstreamStatus is the slice of the G2B client the health check needs.
type UpstreamStatus interface {
	CheckStatus(ctx context.Context) bool
	UsesMockData() bool
}

// HealthHandler reports overall service health: database connectivity,
// upstream API reachability, and the circuit breaker states for the
// G2B client and the webhook relay. A mock-data client always reports
// a healthy upstream since no live dependency exists.
type HealthHandler struct {
	DB             *sql.DB // optional
	Upstream       UpstreamStatus
	Breaker        *circuitbreaker.CircuitBreaker // optional, G2B live calls
	WebhookBreaker *circuitbreaker.CircuitBreaker // optional, webhook deliveries
	Version        string
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{}
	healthy := true

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			checks["database"] = CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err)}
			healthy = false
		} else {
			checks["database"] = CheckStatus{Status: "healthy"}
		}
	}

	if h.Upstream != nil {
		switch {
		case h.Upstream.UsesMockData():
			checks["g2b_api"] = CheckStatus{Status: "healthy", Message: "mock data source"}
		case h.Upstream.CheckStatus(ctx):
			checks["g2b_api"] = CheckStatus{Status: "healthy"}
		default:
			// Upstream trouble degrades to mock data, so it does not make
			// the service itself unhealthy.
			checks["g2b_api"] = CheckStatus{Status: "unhealthy", Message: "upstream unreachable"}
		}
	}

	if h.Breaker != nil {
		checks["g2b_circuit_breaker"] = breakerCheck(h.Breaker)
	}
	if h.WebhookBreaker != nil {
		checks["webhook_circuit_breaker"] = breakerCheck(h.WebhookBreaker)
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// breakerCheck reports a breaker as unhealthy only while it is open.
// An open breaker does not fail the whole health check: both breakers
// guard calls that degrade gracefully (mock fallback, failed Result).
func breakerCheck(cb *circuitbreaker.CircuitBreaker) CheckStatus {
	status := "healthy"
	if cb.IsOpen() {
		status = "unhealthy"
	}
	return CheckStatus{Status: status, Message: cb.State().String()}
}

// ReadyHandler answers readiness probes: the service is ready when its
// database (if configured) accepts connections. A store-less deployment is
// always ready.
type ReadyHandler struct {
	DB *sql.DB // optional
}

func (h ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.DB.PingContext(ctx); err != nil {
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LivenessHandler answers process liveness probes.
func LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
	})
}

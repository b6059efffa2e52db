// Package webhook delivers fetched procurement datasets to a single
// externally configured endpoint. Delivery failures never propagate as
// errors: the outcome of a send is a Result, and orchestration decides
// what a failed relay means for the overall request.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"bizeyes/internal/resilience/circuitbreaker"
)

// sourceTag identifies this service in every outbound payload.
const sourceTag = "bizeyes-api"

// userAgent identifies this service to the receiving endpoint.
const userAgent = "bizeyes-webhook-relay/1.0"

// maxResponseBodyBytes caps how much of a failure response body is kept
// for diagnostics.
const maxResponseBodyBytes = 512

// Metadata describes the dataset accompanying a payload.
type Metadata struct {
	Type       string `json:"type"`
	TotalCount int    `json:"totalCount"`
	PageNo     int    `json:"pageNo"`
	NumOfRows  int    `json:"numOfRows"`
}

// Payload is the envelope POSTed downstream. Timestamp reflects send
// time, not data time, and is rebuilt on every send.
type Payload struct {
	Timestamp string   `json:"timestamp"`
	Source    string   `json:"source"`
	Data      any      `json:"data"`
	Metadata  Metadata `json:"metadata"`
}

// Result reports the outcome of a single delivery attempt. StatusCode
// and Reason are diagnostic only; callers branch on Success.
type Result struct {
	Success    bool
	StatusCode int
	Reason     string
}

// Relay POSTs payloads to the configured webhook endpoint with bearer
// authentication. All sends pass a shared token bucket so a burst of
// relay requests cannot flood the receiver, and deliveries run through
// a circuit breaker so a dead receiver stops costing a full timeout
// per send.
type Relay struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *circuitbreaker.CircuitBreaker
}

// NewRelay builds a Relay from the given configuration.
//
// A missing webhook URL is a configuration error, not a runtime
// condition: construction fails rather than producing a relay that can
// only ever report failure.
func NewRelay(cfg Config) (*Relay, error) {
	if cfg.URL == "" {
		return nil, errors.New("webhook: URL is not configured")
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 30 * time.Second
	}
	if cfg.TestTimeout <= 0 {
		cfg.TestTimeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2.0
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	return &Relay{
		cfg:        cfg,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker:    circuitbreaker.New(circuitbreaker.WebhookConfig()),
	}, nil
}

// Breaker exposes the delivery circuit breaker for health reporting.
func (r *Relay) Breaker() *circuitbreaker.CircuitBreaker {
	return r.breaker
}

// Send delivers data plus metadata to the webhook endpoint.
//
// Any failure (rate-limiter cancellation, network error, non-2xx
// status) is logged with diagnostic detail and returned as an
// unsuccessful Result. Send never returns an error.
func (r *Relay) Send(ctx context.Context, data any, meta Metadata) Result {
	return r.post(ctx, Payload{
		Timestamp: time.Now().Format(time.RFC3339),
		Source:    sourceTag,
		Data:      data,
		Metadata:  meta,
	}, r.cfg.SendTimeout)
}

// TestConnection delivers a fixed diagnostic payload with the shorter
// test timeout. Used by the connectivity health endpoint.
func (r *Relay) TestConnection(ctx context.Context) Result {
	return r.post(ctx, Payload{
		Timestamp: time.Now().Format(time.RFC3339),
		Source:    sourceTag,
		Data:      map[string]string{"message": "connectivity test"},
		Metadata:  Metadata{Type: "test"},
	}, r.cfg.TestTimeout)
}

func (r *Relay) post(ctx context.Context, payload Payload, timeout time.Duration) Result {
	if err := r.limiter.Wait(ctx); err != nil {
		return r.failure(payload.Metadata.Type, 0, fmt.Sprintf("rate limiter: %v", err))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return r.failure(payload.Metadata.Type, 0, fmt.Sprintf("marshal payload: %v", err))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return r.failure(payload.Metadata.Type, 0, fmt.Sprintf("create request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	// Bearer 헤더는 키가 비어 있어도 항상 붙인다
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	// Network errors and non-2xx responses count against the breaker;
	// local failures above (marshal, rate limiter) do not.
	out, err := r.breaker.Execute(func() (interface{}, error) {
		resp, err := r.httpClient.Do(req)
		if err != nil {
			return r.failure(payload.Metadata.Type, 0, fmt.Sprintf("execute request: %v", err)), err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
			res := r.failure(payload.Metadata.Type, resp.StatusCode,
				fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(respBody)))
			return res, fmt.Errorf("webhook: unexpected status %d", resp.StatusCode)
		}

		slog.Info("webhook delivered",
			slog.String("type", payload.Metadata.Type),
			slog.Int("total_count", payload.Metadata.TotalCount),
			slog.Int("status", resp.StatusCode))

		return Result{Success: true, StatusCode: resp.StatusCode}, nil
	})
	if res, ok := out.(Result); ok {
		return res
	}
	// The breaker rejected the call before the request was attempted.
	return r.failure(payload.Metadata.Type, 0, fmt.Sprintf("circuit breaker: %v", err))
}

func (r *Relay) failure(payloadType string, status int, reason string) Result {
	slog.Error("webhook delivery failed",
		slog.String("type", payloadType),
		slog.Int("status", status),
		slog.String("reason", reason))
	return Result{Success: false, StatusCode: status, Reason: reason}
}

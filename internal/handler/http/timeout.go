package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout caps how long a request may run. Relay endpoints block on an
// upstream fetch plus a webhook delivery, so the cap must sit above
// both of those timeouts combined. On expiry the client receives a 504
// and any late writes from the handler are discarded.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			tw := &timeoutWriter{ResponseWriter: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				tw.expire()
			}
		})
	}
}

// timeoutWriter drops handler writes that arrive after the deadline.
// The handler goroutine and the expiry path race for the first write,
// so every state transition happens under the mutex.
type timeoutWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	expired bool
	wrote   bool
}

// expire writes the 504 response unless the handler already responded.
func (tw *timeoutWriter) expire() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.expired = true
	if tw.wrote {
		return
	}
	tw.wrote = true
	tw.Header().Set("Content-Type", "application/json")
	tw.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	_, _ = tw.ResponseWriter.Write([]byte(`{"error":"request timed out"}`))
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.expired || tw.wrote {
		return
	}
	tw.wrote = true
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wrote {
		tw.wrote = true
		tw.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return tw.ResponseWriter.Write(b)
}

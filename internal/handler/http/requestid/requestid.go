// Package requestid assigns every request an ID so one relay run can
// be followed across the access log, the usecase log lines, and the
// webhook delivery log.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the request and response header carrying the ID.
const Header = "X-Request-ID"

// ctxKey is unexported so only this package can place the ID.
type ctxKey struct{}

// FromContext returns the request ID, or "" when none was assigned.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID stores id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware adopts the caller's X-Request-ID when present, so an
// upstream gateway can correlate its own logs with ours, and generates
// a UUID otherwise.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}

		// 응답 헤더에도 반영해 클라이언트가 추적할 수 있게 한다
		w.Header().Set(Header, id)

		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}

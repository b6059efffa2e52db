// Package tracing integrates OpenTelemetry tracing: a shared tracer and
// HTTP middleware that propagates W3C Trace Context.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer for this service.
var tracer = otel.Tracer("bizeyes")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}

// Package responsewriter wraps http.ResponseWriter so the logging and
// metrics middleware can observe what a handler actually sent: the
// status code and the response size.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records the status code and body size of a response.
type ResponseWriter struct {
	http.ResponseWriter
	status    int
	bytes     int
	committed bool
}

// Wrap returns a recording wrapper around w. The status defaults to
// 200 until the handler says otherwise.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records code and forwards it. Repeat calls are dropped,
// matching net/http's superfluous-WriteHeader behavior without the log
// noise.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.committed {
		return
	}
	w.status = code
	w.committed = true
	w.ResponseWriter.WriteHeader(code)
}

// Write forwards the body bytes and accumulates the written size. A
// write before any WriteHeader commits the implicit 200.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.committed {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// StatusCode returns the committed status code.
func (w *ResponseWriter) StatusCode() int {
	return w.status
}

// BytesWritten returns the total body size written so far.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytes
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

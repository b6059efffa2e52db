package g2b

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// APIError is the single failure type raised by the G2B client. It covers
// application-level failures (resultCode != "00"), HTTP-level failures
// (non-2xx status), and network failures, carrying whichever diagnostic
// detail is available.
type APIError struct {
	// ResultCode is the upstream application result code, empty when the
	// failure happened before an envelope was obtained.
	ResultCode string

	// StatusCode is the HTTP status, zero on network failures.
	StatusCode int

	// Message is a human-readable categorized cause.
	Message string

	// Err is the underlying transport error, if any.
	Err error
}

func (e *APIError) Error() string {
	switch {
	case e.ResultCode != "":
		return fmt.Sprintf("g2b api error: resultCode=%s %s", e.ResultCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("g2b api error: status=%d %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("g2b api error: %s", e.Message)
	}
}

// Unwrap returns the underlying transport error, implementing errors.Unwrap.
func (e *APIError) Unwrap() error {
	return e.Err
}

// statusMessages maps common upstream HTTP statuses to readable causes.
var statusMessages = map[int]string{
	400: "bad request (check query parameters)",
	401: "unauthorized (service key rejected)",
	403: "forbidden (service key not permitted for this operation)",
	404: "operation not found (check endpoint path)",
	429: "too many requests (upstream rate limit)",
	500: "upstream internal error",
	502: "bad gateway",
	503: "upstream unavailable",
}

// newStatusError builds an APIError for a non-2xx HTTP response.
func newStatusError(status int, body string) *APIError {
	msg, ok := statusMessages[status]
	if !ok {
		msg = "unexpected HTTP status"
	}
	if body != "" {
		msg = fmt.Sprintf("%s: %s", msg, body)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// newNetworkError builds an APIError for a transport-level failure,
// categorizing common socket error causes.
func newNetworkError(err error) *APIError {
	return &APIError{Message: categorize(err), Err: err}
}

// categorize maps transport errors to human-readable causes.
func categorize(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("host not found: %s", dnsErr.Name)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return "connection refused"
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return "connection reset by peer"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "request timed out"
	}
	if os.IsTimeout(err) {
		return "request timed out"
	}

	return fmt.Sprintf("network error: %v", err)
}

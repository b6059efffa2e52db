package respond

import (
	"regexp"
)

var (
	// serviceKey query parameters leak into url.Error messages verbatim.
	serviceKeyPattern = regexp.MustCompile(`serviceKey=[^&\s"]+`)

	// Bearer tokens for the webhook endpoint.
	bearerPattern = regexp.MustCompile(`Bearer\s+[a-zA-Z0-9._\-]+`)

	// Database passwords inside a DSN.
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError masks credentials before an error message reaches a log.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = serviceKeyPattern.ReplaceAllString(msg, "serviceKey=****")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}

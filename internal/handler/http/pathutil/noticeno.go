// Package pathutil provides URL path helpers: extracting notice numbers
// from paths and normalizing dynamic paths for metrics labels.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidNoticeNo is returned when the notice number in the URL path
// is missing or malformed.
var ErrInvalidNoticeNo = errors.New("invalid notice number")

// ExtractNoticeNo extracts a bid notice number from a URL path.
//
// Notice numbers are opaque strings assigned upstream (e.g.
// "20240115-00042"), so the only validation is that the segment is
// non-empty and contains no further path separators.
func ExtractNoticeNo(path, prefix string) (string, error) {
	no := strings.TrimPrefix(path, prefix)
	if no == "" || strings.Contains(no, "/") {
		return "", ErrInvalidNoticeNo
	}
	return no, nil
}

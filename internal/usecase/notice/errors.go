package notice

import "errors"

// Sentinel errors for notice use case operations.
var (
	// ErrNoticeNotFound indicates that the requested bid notice is not in
	// the store.
	ErrNoticeNotFound = errors.New("bid notice not found")

	// ErrInvalidNoticeNo indicates a blank or malformed notice number.
	ErrInvalidNoticeNo = errors.New("invalid bid notice number")

	// ErrEmptyKeyword indicates that a search was requested without a
	// keyword.
	ErrEmptyKeyword = errors.New("search keyword must not be empty")
)

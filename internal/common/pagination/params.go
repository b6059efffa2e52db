package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	PageNo    int // 1-based page number
	NumOfRows int // Items per page
}

// ParseQueryParams parses pagination parameters from an HTTP request query
// string. Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - pageNo: Page number (must be a positive integer)
//   - numOfRows: Items per page (must be between 1 and config.MaxNumOfRows)
//
// Returns an error if parameters are present but invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		PageNo:    config.DefaultPageNo,
		NumOfRows: config.DefaultNumOfRows,
	}

	if pageStr := r.URL.Query().Get("pageNo"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: pageNo must be a positive integer")
		}
		params.PageNo = page
	}

	if rowsStr := r.URL.Query().Get("numOfRows"); rowsStr != "" {
		rows, err := strconv.Atoi(rowsStr)
		if err != nil || rows < 1 || rows > config.MaxNumOfRows {
			return params, fmt.Errorf("invalid query parameter: numOfRows must be between 1 and %d", config.MaxNumOfRows)
		}
		params.NumOfRows = rows
	}

	return params, nil
}

// Normalize clamps zero or negative values to the configured defaults.
// Useful for callers constructing Params programmatically rather than from
// an HTTP request.
func (p Params) Normalize(config Config) Params {
	if p.PageNo < 1 {
		p.PageNo = config.DefaultPageNo
	}
	if p.NumOfRows < 1 {
		p.NumOfRows = config.DefaultNumOfRows
	}
	if p.NumOfRows > config.MaxNumOfRows {
		p.NumOfRows = config.MaxNumOfRows
	}
	return p
}

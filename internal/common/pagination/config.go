// Package pagination provides paging parameters and metadata in the
// pageNo/numOfRows convention used by the G2B OpenAPI and mirrored by this
// service's own endpoints.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPageNo    int // Default page number (typically 1)
	DefaultNumOfRows int // Default items per page (typically 10)
	MaxNumOfRows     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
// Default values: pageNo=1, numOfRows=10, max=100, matching the upstream API.
func DefaultConfig() Config {
	return Config{
		DefaultPageNo:    1,
		DefaultNumOfRows: 10,
		MaxNumOfRows:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE_NO: Default page number
//   - PAGINATION_DEFAULT_NUM_OF_ROWS: Default items per page
//   - PAGINATION_MAX_NUM_OF_ROWS: Maximum items per page
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPageNo:    getEnvAsInt("PAGINATION_DEFAULT_PAGE_NO", 1),
		DefaultNumOfRows: getEnvAsInt("PAGINATION_DEFAULT_NUM_OF_ROWS", 10),
		MaxNumOfRows:     getEnvAsInt("PAGINATION_MAX_NUM_OF_ROWS", 100),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}

package webhook

import (
	"os"
	"time"

	"bizeyes/pkg/config"
)

// Config contains configuration for the outbound webhook relay.
type Config struct {
	// URL is the downstream endpoint all payloads are POSTed to.
	URL string

	// APIKey is sent as a bearer token on every request, even when
	// empty: receivers that do not check auth ignore the header.
	APIKey string

	// SendTimeout bounds a data delivery request.
	SendTimeout time.Duration

	// TestTimeout bounds the connectivity probe.
	TestTimeout time.Duration

	// RequestsPerSecond and Burst shape the outbound token bucket.
	RequestsPerSecond float64
	Burst             int
}

// LoadConfigFromEnv reads relay configuration from environment variables:
//
//   - WEBHOOK_URL: destination endpoint (required at construction)
//   - WEBHOOK_API_KEY: bearer token, optional
//   - WEBHOOK_SEND_TIMEOUT / WEBHOOK_TEST_TIMEOUT: request timeouts
//   - WEBHOOK_RATE_LIMIT / WEBHOOK_RATE_BURST: outbound rate shaping
func LoadConfigFromEnv() Config {
	return Config{
		URL:               os.Getenv("WEBHOOK_URL"),
		APIKey:            os.Getenv("WEBHOOK_API_KEY"),
		SendTimeout:       config.GetEnvDuration("WEBHOOK_SEND_TIMEOUT", 30*time.Second),
		TestTimeout:       config.GetEnvDuration("WEBHOOK_TEST_TIMEOUT", 10*time.Second),
		RequestsPerSecond: config.GetEnvFloat("WEBHOOK_RATE_LIMIT", 2.0),
		Burst:             config.GetEnvInt("WEBHOOK_RATE_BURST", 5),
	}
}

package g2b

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"bizeyes/pkg/config"
)

// DataSource selects where the client obtains its data.
// The selection is made once by bootstrap code, not re-derived per call.
type DataSource int

const (
	// SourceMock serves generated placeholder data without network I/O.
	SourceMock DataSource = iota
	// SourceLive calls the G2B OpenAPI.
	SourceLive
)

// String returns the data source name for logging.
func (s DataSource) String() string {
	if s == SourceLive {
		return "live"
	}
	return "mock"
}

// Endpoints maps client operations to upstream paths. The production endpoint
// base and paths vary between G2B API generations, so they are configuration,
// not hard-coded fact.
type Endpoints struct {
	BidList        string `yaml:"bid_list"`
	BidDetail      string `yaml:"bid_detail"`
	PreNoticeList  string `yaml:"pre_notice_list"`
	ContractList   string `yaml:"contract_list"`
	ContractDetail string `yaml:"contract_detail"`
}

// DefaultEndpoints returns the operation paths for the current public API
// generation.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		BidList:        "getBidPblancListInfoServcPPSSrch",
		BidDetail:      "getBidPblancListInfoServc",
		PreNoticeList:  "getPublicPrcureThngInfoThngPPSSrch",
		ContractList:   "getCntrctInfoListServcPPSSrch",
		ContractDetail: "getCntrctInfoListServc",
	}
}

// endpointsFile is the YAML shape for an endpoint override file.
type endpointsFile struct {
	BaseURL   string    `yaml:"base_url"`
	Endpoints Endpoints `yaml:"endpoints"`
}

// Config holds the G2B client configuration, read once at construction.
type Config struct {
	// BaseURL is the API base, e.g. "https://apis.data.go.kr/1230000/BidPublicInfoService".
	BaseURL string

	// ServiceKey is the OpenAPI authentication key. Empty key forces SourceMock.
	ServiceKey string

	// Source selects live or mock data.
	Source DataSource

	// Endpoints maps operations to upstream paths.
	Endpoints Endpoints

	// ListTimeout is the per-request timeout for list operations.
	ListTimeout time.Duration

	// DetailTimeout is the per-request timeout for detail operations.
	DetailTimeout time.Duration
}

// LoadConfigFromEnv reads client configuration from environment variables:
//
//   - G2B_API_BASE_URL: upstream base URL
//   - G2B_SERVICE_KEY: OpenAPI service key (absent -> mock data source)
//   - G2B_ENDPOINTS_FILE: optional YAML file overriding base URL and paths
//   - G2B_LIST_TIMEOUT / G2B_DETAIL_TIMEOUT: per-request timeouts
//
// The mock/live decision is made here, once: a configured key selects
// SourceLive unless G2B_FORCE_MOCK is set.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:       config.GetEnvString("G2B_API_BASE_URL", "https://apis.data.go.kr/1230000/BidPublicInfoService"),
		ServiceKey:    os.Getenv("G2B_SERVICE_KEY"),
		Endpoints:     DefaultEndpoints(),
		ListTimeout:   config.GetEnvDuration("G2B_LIST_TIMEOUT", 10*time.Second),
		DetailTimeout: config.GetEnvDuration("G2B_DETAIL_TIMEOUT", 15*time.Second),
	}

	if path := os.Getenv("G2B_ENDPOINTS_FILE"); path != "" {
		if err := cfg.applyEndpointsFile(path); err != nil {
			return cfg, fmt.Errorf("load endpoints file: %w", err)
		}
	}

	if cfg.ServiceKey != "" && !config.GetEnvBool("G2B_FORCE_MOCK", false) {
		cfg.Source = SourceLive
	} else {
		cfg.Source = SourceMock
	}

	return cfg, nil
}

// applyEndpointsFile overrides the base URL and operation paths from a YAML
// file. Empty fields in the file leave the current values untouched.
func (c *Config) applyEndpointsFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var f endpointsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.Endpoints.BidList != "" {
		c.Endpoints.BidList = f.Endpoints.BidList
	}
	if f.Endpoints.BidDetail != "" {
		c.Endpoints.BidDetail = f.Endpoints.BidDetail
	}
	if f.Endpoints.PreNoticeList != "" {
		c.Endpoints.PreNoticeList = f.Endpoints.PreNoticeList
	}
	if f.Endpoints.ContractList != "" {
		c.Endpoints.ContractList = f.Endpoints.ContractList
	}
	if f.Endpoints.ContractDetail != "" {
		c.Endpoints.ContractDetail = f.Endpoints.ContractDetail
	}
	return nil
}

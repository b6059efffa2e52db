// Package g2b implements the client for the G2B (나라장터) procurement
// OpenAPI. The client serves either live data from the upstream API or
// generated mock data, selected once at construction. All live failures
// surface as a single *APIError so callers can fall back uniformly.
package g2b

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bizeyes/internal/common/pagination"
	"bizeyes/internal/domain/entity"
	"bizeyes/internal/infra/mockdata"
	"bizeyes/internal/resilience/circuitbreaker"
)

// maxErrorBodyBytes caps how much of an upstream error body is kept for
// diagnostics.
const maxErrorBodyBytes = 512

// ListParams are the query parameters accepted by list operations.
// Zero PageNo/NumOfRows fall back to 1 and 10. Date filters are passed
// through unvalidated; the upstream API is authoritative for their format.
type ListParams struct {
	PageNo    int
	NumOfRows int
	BidNtceNm string // notice name filter
	DminsttNm string // institution name filter
	FromDt    string // inquiry begin date (yyyyMMddHHmm)
	ToDt      string // inquiry end date (yyyyMMddHHmm)
}

// normalize applies the upstream defaults for missing paging values.
func (p ListParams) normalize() ListParams {
	if p.PageNo < 1 {
		p.PageNo = 1
	}
	if p.NumOfRows < 1 {
		p.NumOfRows = 10
	}
	return p
}

// Client fetches bid, pre-notice, and contract pages from the G2B OpenAPI,
// or serves mock data when no live key is configured. Safe for concurrent use.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	breaker     *circuitbreaker.CircuitBreaker
	useMockData bool
}

// NewClient creates a client from the given configuration.
// The mock/live decision is cached here and never re-derived per call.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
		breaker:     circuitbreaker.New(circuitbreaker.G2BAPIConfig()),
		useMockData: cfg.Source == SourceMock,
	}
}

// UsesMockData reports whether the client serves generated data.
func (c *Client) UsesMockData() bool {
	return c.useMockData
}

// Breaker exposes the upstream circuit breaker for health reporting.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// GetBidList returns one page of bid notices.
func (c *Client) GetBidList(ctx context.Context, p ListParams) (entity.Envelope[entity.BidNotice], error) {
	p = p.normalize()
	if c.useMockData {
		return mockEnvelope(mockdata.Bids, p), nil
	}

	q := c.baseQuery(p)
	if p.BidNtceNm != "" {
		q.Set("bidNtceNm", p.BidNtceNm)
	}
	if p.DminsttNm != "" {
		q.Set("dminsttNm", p.DminsttNm)
	}
	return fetchList[entity.BidNotice](ctx, c, c.cfg.Endpoints.BidList, q, c.cfg.ListTimeout)
}

// GetBidDetail returns the notice identified by bidNtceNo.
func (c *Client) GetBidDetail(ctx context.Context, bidNtceNo string) (entity.Envelope[entity.BidNotice], error) {
	if bidNtceNo == "" {
		return entity.Envelope[entity.BidNotice]{}, &APIError{Message: "bidNtceNo is required"}
	}
	if c.useMockData {
		bids := mockdata.Bids(1)
		bids[0].BidNtceNo = bidNtceNo
		return entity.NewEnvelope(bids, 1, 1, 1), nil
	}

	q := c.baseQuery(ListParams{PageNo: 1, NumOfRows: 1})
	q.Set("inqryDiv", "2")
	q.Set("bidNtceNo", bidNtceNo)
	return fetchList[entity.BidNotice](ctx, c, c.cfg.Endpoints.BidDetail, q, c.cfg.DetailTimeout)
}

// GetPreNoticeList returns one page of pre-notices.
func (c *Client) GetPreNoticeList(ctx context.Context, p ListParams) (entity.Envelope[entity.PreNotice], error) {
	p = p.normalize()
	if c.useMockData {
		return mockEnvelope(mockdata.PreNotices, p), nil
	}

	q := c.baseQuery(p)
	if p.DminsttNm != "" {
		q.Set("rlDminsttNm", p.DminsttNm)
	}
	return fetchList[entity.PreNotice](ctx, c, c.cfg.Endpoints.PreNoticeList, q, c.cfg.ListTimeout)
}

// GetContractList returns one page of contract records.
func (c *Client) GetContractList(ctx context.Context, p ListParams) (entity.Envelope[entity.Contract], error) {
	p = p.normalize()
	if c.useMockData {
		return mockEnvelope(mockdata.Contracts, p), nil
	}

	q := c.baseQuery(p)
	if p.DminsttNm != "" {
		q.Set("cntrctInsttNm", p.DminsttNm)
	}
	return fetchList[entity.Contract](ctx, c, c.cfg.Endpoints.ContractList, q, c.cfg.ListTimeout)
}

// GetContractDetail returns the contract identified by cntrctNo.
func (c *Client) GetContractDetail(ctx context.Context, cntrctNo string) (entity.Envelope[entity.Contract], error) {
	if cntrctNo == "" {
		return entity.Envelope[entity.Contract]{}, &APIError{Message: "cntrctNo is required"}
	}
	if c.useMockData {
		contracts := mockdata.Contracts(1)
		contracts[0].CntrctNo = cntrctNo
		return entity.NewEnvelope(contracts, 1, 1, 1), nil
	}

	q := c.baseQuery(ListParams{PageNo: 1, NumOfRows: 1})
	q.Set("cntrctNo", cntrctNo)
	return fetchList[entity.Contract](ctx, c, c.cfg.Endpoints.ContractDetail, q, c.cfg.DetailTimeout)
}

// CheckStatus performs a minimal one-row query and reports whether it
// succeeded. Errors never escape; this is only a health indicator.
func (c *Client) CheckStatus(ctx context.Context) bool {
	_, err := c.GetBidList(ctx, ListParams{PageNo: 1, NumOfRows: 1})
	if err != nil {
		slog.Debug("g2b status check failed", slog.Any("error", err))
		return false
	}
	return true
}

// baseQuery builds the query parameters shared by all live operations.
func (c *Client) baseQuery(p ListParams) url.Values {
	q := url.Values{}

	// Keys issued by data.go.kr are often distributed pre-URL-encoded.
	// Decode first so url.Values does not double-encode the key.
	key := c.cfg.ServiceKey
	if dec, err := url.QueryUnescape(key); err == nil {
		key = dec
	}
	q.Set("serviceKey", key)

	q.Set("type", "json")
	q.Set("pageNo", strconv.Itoa(p.PageNo))
	q.Set("numOfRows", strconv.Itoa(p.NumOfRows))
	if p.FromDt != "" {
		q.Set("inqryBgnDt", p.FromDt)
	}
	if p.ToDt != "" {
		q.Set("inqryEndDt", p.ToDt)
	}
	return q
}

// mockEnvelope slices the full mock set down to the requested page.
// totalCount is fixed at mockdata.TotalCount, a deliberate stand-in.
func mockEnvelope[T any](gen func(int) []T, p ListParams) entity.Envelope[T] {
	full := gen(mockdata.TotalCount)
	items := pagination.Slice(full, p.PageNo, p.NumOfRows)
	return entity.NewEnvelope(items, p.PageNo, p.NumOfRows, mockdata.TotalCount)
}

// fetchList executes a live list request through the circuit breaker and
// validates the response envelope. Every failure path returns *APIError.
func fetchList[T any](ctx context.Context, c *Client, op string, q url.Values, timeout time.Duration) (entity.Envelope[T], error) {
	var zero entity.Envelope[T]

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqURL := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + op + "?" + q.Encode()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, reqURL)
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return zero, apiErr
		}
		// Breaker rejections (open state, half-open saturation) surface as
		// the same error type so callers fall back uniformly.
		return zero, &APIError{Message: fmt.Sprintf("circuit breaker: %v", err), Err: err}
	}

	var env entity.Envelope[T]
	if err := json.Unmarshal(result.([]byte), &env); err != nil {
		return zero, &APIError{Message: fmt.Sprintf("malformed response envelope: %v", err), Err: err}
	}

	if !env.Response.Header.OK() {
		return zero, &APIError{
			ResultCode: env.Response.Header.ResultCode,
			StatusCode: http.StatusOK,
			Message:    env.Response.Header.ResultMsg,
		}
	}

	return env, nil
}

// do performs the HTTP GET and maps transport and status failures.
func (c *Client) do(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("create request: %v", err), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := string(body)
		if len(detail) > maxErrorBodyBytes {
			detail = detail[:maxErrorBodyBytes]
		}
		return nil, newStatusError(resp.StatusCode, detail)
	}

	return body, nil
}

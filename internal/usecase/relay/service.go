// Package relay coordinates the fetch → fallback → deliver pipeline: it
// pulls a page of procurement data from the G2B client, substitutes mock
// data when the live call fails, pushes the result to the webhook relay,
// and shapes a summary for the HTTP caller.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"bizeyes/internal/common/pagination"
	"bizeyes/internal/domain/entity"
	"bizeyes/internal/infra/g2b"
	"bizeyes/internal/infra/mockdata"
	"bizeyes/internal/infra/webhook"
	"bizeyes/internal/repository"
)

// Kind identifies one of the three procurement datasets.
type Kind string

const (
	KindBidNotice Kind = "bid_notice"
	KindPreNotice Kind = "pre_notice"
	KindContract  Kind = "contract"
)

// Fetcher is the slice of the G2B client the relay pipeline needs.
type Fetcher interface {
	GetBidList(ctx context.Context, p g2b.ListParams) (entity.Envelope[entity.BidNotice], error)
	GetPreNoticeList(ctx context.Context, p g2b.ListParams) (entity.Envelope[entity.PreNotice], error)
	GetContractList(ctx context.Context, p g2b.ListParams) (entity.Envelope[entity.Contract], error)
	UsesMockData() bool
}

// Sender delivers payloads downstream. Satisfied by *webhook.Relay.
type Sender interface {
	Send(ctx context.Context, data any, meta webhook.Metadata) webhook.Result
	TestConnection(ctx context.Context) webhook.Result
}

// DataSummary carries the pagination facts of the relayed dataset.
type DataSummary struct {
	TotalCount int `json:"totalCount"`
	PageNo     int `json:"pageNo"`
	NumOfRows  int `json:"numOfRows"`
	Items      any `json:"items"`
}

// Summary is the per-kind pipeline outcome returned to the HTTP caller.
// Success reports whether data was obtained; a failed webhook delivery
// alone does not make the request unsuccessful.
type Summary struct {
	Success        bool         `json:"success"`
	Message        string       `json:"message"`
	Data           *DataSummary `json:"data,omitempty"`
	WebhookSuccess bool         `json:"webhookSuccess"`
	Timestamp      string       `json:"timestamp"`
}

// TestSummary is the webhook connectivity probe outcome.
type TestSummary struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// AllSummary is the outcome of relaying all three datasets.
type AllSummary struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Results   map[string]bool `json:"results"`
	Timestamp string          `json:"timestamp"`
}

// Service runs the relay pipeline.
type Service struct {
	fetcher Fetcher
	sender  Sender

	// store receives fetched bid notices for the read API. Optional:
	// nil disables persistence without affecting the pipeline.
	store repository.NoticeRepository
}

func NewService(fetcher Fetcher, sender Sender, store repository.NoticeRepository) *Service {
	return &Service{fetcher: fetcher, sender: sender, store: store}
}

// RelayBidNotices fetches one page of bid notices (mock on live failure),
// persists them when a store is configured, and relays them downstream.
func (s *Service) RelayBidNotices(ctx context.Context, p g2b.ListParams) Summary {
	env, live := fetchOrMock(ctx, s.fetcher.GetBidList, mockdata.Bids, KindBidNotice, p)

	if s.store != nil && len(env.Response.Body.Items) > 0 {
		if err := s.store.Upsert(ctx, env.Response.Body.Items); err != nil {
			slog.Error("bid notice upsert failed", slog.Any("error", err))
		}
	}

	return deliver(ctx, s.sender, KindBidNotice, env, live)
}

// RelayPreNotices fetches and relays one page of pre-notices.
func (s *Service) RelayPreNotices(ctx context.Context, p g2b.ListParams) Summary {
	env, live := fetchOrMock(ctx, s.fetcher.GetPreNoticeList, mockdata.PreNotices, KindPreNotice, p)
	return deliver(ctx, s.sender, KindPreNotice, env, live)
}

// RelayContracts fetches and relays one page of contract records.
func (s *Service) RelayContracts(ctx context.Context, p g2b.ListParams) Summary {
	env, live := fetchOrMock(ctx, s.fetcher.GetContractList, mockdata.Contracts, KindContract, p)
	return deliver(ctx, s.sender, KindContract, env, live)
}

// TestWebhook probes downstream connectivity with a diagnostic payload.
func (s *Service) TestWebhook(ctx context.Context) TestSummary {
	res := s.sender.TestConnection(ctx)
	msg := "webhook connection ok"
	if !res.Success {
		msg = "webhook connection failed"
	}
	return TestSummary{
		Success:   res.Success,
		Message:   msg,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// SendAll relays all three datasets using mock data, concurrently and
// independently. A panic or failed delivery in one sequence never
// affects the other two; overall success means at least one delivery
// succeeded.
func (s *Service) SendAll(ctx context.Context) AllSummary {
	p := g2b.ListParams{PageNo: 1, NumOfRows: 10}

	var mu sync.Mutex
	results := map[string]bool{"bidNotice": false, "preNotice": false, "contract": false}

	record := func(key string, ok bool) {
		mu.Lock()
		results[key] = ok
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(isolated(KindBidNotice, func() {
		record("bidNotice", deliver(ctx, s.sender, KindBidNotice, mockEnvelope(mockdata.Bids, p), false).WebhookSuccess)
	}))
	g.Go(isolated(KindPreNotice, func() {
		record("preNotice", deliver(ctx, s.sender, KindPreNotice, mockEnvelope(mockdata.PreNotices, p), false).WebhookSuccess)
	}))
	g.Go(isolated(KindContract, func() {
		record("contract", deliver(ctx, s.sender, KindContract, mockEnvelope(mockdata.Contracts, p), false).WebhookSuccess)
	}))
	_ = g.Wait() // isolated never returns an error

	relayed := 0
	for _, ok := range results {
		if ok {
			relayed++
		}
	}

	return AllSummary{
		Success:   relayed > 0,
		Message:   fmt.Sprintf("%d/3 datasets relayed", relayed),
		Results:   results,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// isolated wraps a sequence so a panic is logged instead of taking down
// the sibling sequences.
func isolated(kind Kind, fn func()) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("relay sequence panicked",
					slog.String("kind", string(kind)),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())))
			}
		}()
		fn()
		return nil
	}
}

// fetchOrMock attempts the live fetch and substitutes a mock envelope on
// any error. Hard fallback: the live call is never retried within one
// invocation. The second return reports whether the data is live.
func fetchOrMock[T any](
	ctx context.Context,
	fetch func(context.Context, g2b.ListParams) (entity.Envelope[T], error),
	gen func(int) []T,
	kind Kind,
	p g2b.ListParams,
) (entity.Envelope[T], bool) {
	p = normalize(p)

	env, err := fetch(ctx, p)
	if err == nil {
		return env, true
	}

	slog.Warn("live fetch failed, falling back to mock data",
		slog.String("kind", string(kind)),
		slog.Any("error", err))
	fetchFallbacksTotal.WithLabelValues(string(kind)).Inc()

	return mockEnvelope(gen, p), false
}

func mockEnvelope[T any](gen func(int) []T, p g2b.ListParams) entity.Envelope[T] {
	p = normalize(p)
	items := pagination.Slice(gen(mockdata.TotalCount), p.PageNo, p.NumOfRows)
	return entity.NewEnvelope(items, p.PageNo, p.NumOfRows, mockdata.TotalCount)
}

func normalize(p g2b.ListParams) g2b.ListParams {
	if p.PageNo < 1 {
		p.PageNo = 1
	}
	if p.NumOfRows < 1 {
		p.NumOfRows = 10
	}
	return p
}

// deliver sends the envelope body downstream and shapes the summary.
func deliver[T any](ctx context.Context, sender Sender, kind Kind, env entity.Envelope[T], live bool) Summary {
	body := env.Response.Body

	source := "mock"
	if live {
		source = "live"
	}
	relayRequestsTotal.WithLabelValues(string(kind), source).Inc()

	start := time.Now()
	res := sender.Send(ctx, body.Items, webhook.Metadata{
		Type:       string(kind),
		TotalCount: body.TotalCount,
		PageNo:     body.PageNo,
		NumOfRows:  body.NumOfRows,
	})
	webhookDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	status := "success"
	msg := fmt.Sprintf("%s data relayed successfully", kind)
	if !res.Success {
		status = "failure"
		msg = fmt.Sprintf("%s data processed but relay failed", kind)
	}
	webhookSendsTotal.WithLabelValues(string(kind), status).Inc()

	return Summary{
		Success: true,
		Message: msg,
		Data: &DataSummary{
			TotalCount: body.TotalCount,
			PageNo:     body.PageNo,
			NumOfRows:  body.NumOfRows,
			Items:      body.Items,
		},
		WebhookSuccess: res.Success,
		Timestamp:      time.Now().Format(time.RFC3339),
	}
}

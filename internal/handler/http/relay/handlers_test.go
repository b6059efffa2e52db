package relay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizeyes/internal/domain/entity"
	handler "bizeyes/internal/handler/http/relay"
	"bizeyes/internal/infra/g2b"
	"bizeyes/internal/infra/webhook"
	relayUC "bizeyes/internal/usecase/relay"
)

type okFetcher struct{}

func (okFetcher) GetBidList(_ context.Context, p g2b.ListParams) (entity.Envelope[entity.BidNotice], error) {
	return entity.NewEnvelope([]entity.BidNotice{{BidNtceNo: "N-1"}}, p.PageNo, p.NumOfRows, 50), nil
}
func (okFetcher) GetPreNoticeList(_ context.Context, p g2b.ListParams) (entity.Envelope[entity.PreNotice], error) {
	return entity.NewEnvelope([]entity.PreNotice{{BfSpecRgstNo: "P-1"}}, p.PageNo, p.NumOfRows, 5), nil
}
func (okFetcher) GetContractList(_ context.Context, p g2b.ListParams) (entity.Envelope[entity.Contract], error) {
	return entity.NewEnvelope([]entity.Contract{{CntrctNo: "C-1"}}, p.PageNo, p.NumOfRows, 9), nil
}
func (okFetcher) UsesMockData() bool { return false }

type okSender struct{ fail bool }

func (s okSender) Send(context.Context, any, webhook.Metadata) webhook.Result {
	return webhook.Result{Success: !s.fail, StatusCode: 200}
}
func (s okSender) TestConnection(context.Context) webhook.Result {
	return webhook.Result{Success: !s.fail, StatusCode: 200}
}

func newMux(sender relayUC.Sender) *http.ServeMux {
	mux := http.NewServeMux()
	handler.Register(mux, relayUC.NewService(okFetcher{}, sender, nil))
	return mux
}

func TestSendHandler_BidNotice(t *testing.T) {
	mux := newMux(okSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/webhook/bid-notice?pageNo=2&numOfRows=5", nil))

	if rec.Code != 200 {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var sum relayUC.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	if !sum.Success || !sum.WebhookSuccess {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Data.PageNo != 2 || sum.Data.NumOfRows != 5 || sum.Data.TotalCount != 50 {
		t.Errorf("data = %+v", sum.Data)
	}
}

func TestSendHandler_InvalidParams(t *testing.T) {
	mux := newMux(okSender{})

	for _, target := range []string{
		"/webhook/bid-notice?pageNo=abc",
		"/webhook/contract?numOfRows=0",
		"/webhook/pre-notice?pageNo=-3",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("POST", target, nil))
		if rec.Code != 400 {
			t.Errorf("%s: code = %d, want 400", target, rec.Code)
		}
	}
}

func TestSendHandler_WebhookFailureStill200(t *testing.T) {
	mux := newMux(okSender{fail: true})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/webhook/contract", nil))

	if rec.Code != 200 {
		t.Fatalf("code = %d", rec.Code)
	}
	var sum relayUC.Summary
	_ = json.Unmarshal(rec.Body.Bytes(), &sum)
	if !sum.Success || sum.WebhookSuccess {
		t.Errorf("summary = %+v", sum)
	}
	if !strings.Contains(sum.Message, "relay failed") {
		t.Errorf("message = %q", sum.Message)
	}
}

func TestTestHandler(t *testing.T) {
	mux := newMux(okSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/webhook/test", nil))

	if rec.Code != 200 {
		t.Fatalf("code = %d", rec.Code)
	}
	var sum relayUC.TestSummary
	_ = json.Unmarshal(rec.Body.Bytes(), &sum)
	if !sum.Success || sum.Timestamp == "" {
		t.Errorf("summary = %+v", sum)
	}
}

func TestSendAllHandler(t *testing.T) {
	mux := newMux(okSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/webhook/all", nil))

	if rec.Code != 200 {
		t.Fatalf("code = %d", rec.Code)
	}
	var sum relayUC.AllSummary
	_ = json.Unmarshal(rec.Body.Bytes(), &sum)
	if !sum.Success || sum.Message != "3/3 datasets relayed" {
		t.Errorf("summary = %+v", sum)
	}
	if len(sum.Results) != 3 {
		t.Errorf("results = %+v", sum.Results)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newMux(okSender{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/webhook/bid-notice", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("code = %d, want 405", rec.Code)
	}
}

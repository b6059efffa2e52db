package webhook_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizeyes/internal/infra/webhook"
)

func testConfig(url string) webhook.Config {
	return webhook.Config{
		URL:               url,
		APIKey:            "secret-key",
		SendTimeout:       5 * time.Second,
		TestTimeout:       2 * time.Second,
		RequestsPerSecond: 100,
		Burst:             100,
	}
}

func TestNewRelay_MissingURL(t *testing.T) {
	if _, err := webhook.NewRelay(webhook.Config{}); err == nil {
		t.Fatal("expected construction error for missing URL")
	}
}

func TestSend_Success(t *testing.T) {
	var (
		gotAuth      string
		gotUserAgent string
		gotContent   string
		gotPayload   webhook.Payload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUserAgent = r.Header.Get("User-Agent")
		gotContent = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay, err := webhook.NewRelay(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRelay err=%v", err)
	}

	meta := webhook.Metadata{Type: "bid_notice", TotalCount: 100, PageNo: 1, NumOfRows: 10}
	res := relay.Send(context.Background(), []string{"a", "b"}, meta)

	if !res.Success {
		t.Fatalf("Send failed: %+v", res)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotUserAgent == "" {
		t.Error("User-Agent header missing")
	}
	if gotContent != "application/json" {
		t.Errorf("Content-Type = %q", gotContent)
	}
	if gotPayload.Metadata != meta {
		t.Errorf("metadata = %+v, want %+v", gotPayload.Metadata, meta)
	}
	if gotPayload.Source == "" {
		t.Error("payload source missing")
	}
	if _, err := time.Parse(time.RFC3339, gotPayload.Timestamp); err != nil {
		t.Errorf("timestamp %q not RFC3339: %v", gotPayload.Timestamp, err)
	}
}

func TestSend_EmptyAPIKeyStillSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = ""
	relay, err := webhook.NewRelay(cfg)
	if err != nil {
		t.Fatalf("NewRelay err=%v", err)
	}

	if res := relay.Send(context.Background(), nil, webhook.Metadata{Type: "test"}); !res.Success {
		t.Fatalf("Send failed: %+v", res)
	}
	// 키가 없어도 Authorization 헤더는 항상 나간다
	if gotAuth != "Bearer " {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer ")
	}
}

func TestSend_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	relay, err := webhook.NewRelay(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRelay err=%v", err)
	}

	res := relay.Send(context.Background(), nil, webhook.Metadata{Type: "bid_notice"})
	if res.Success {
		t.Fatal("Send succeeded against 403 endpoint")
	}
	if res.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", res.StatusCode)
	}
	if res.Reason == "" {
		t.Error("Reason missing for failed send")
	}
}

func TestSend_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	relay, err := webhook.NewRelay(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRelay err=%v", err)
	}

	if res := relay.Send(context.Background(), nil, webhook.Metadata{Type: "contract"}); res.Success {
		t.Fatal("Send succeeded against closed endpoint")
	}
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.SendTimeout = 50 * time.Millisecond
	relay, err := webhook.NewRelay(cfg)
	if err != nil {
		t.Fatalf("NewRelay err=%v", err)
	}

	if res := relay.Send(context.Background(), nil, webhook.Metadata{Type: "bid_notice"}); res.Success {
		t.Fatal("Send succeeded past timeout")
	}
}

func TestSend_CircuitBreakerOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	relay, err := webhook.NewRelay(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRelay err=%v", err)
	}

	// 연속 실패가 쌓이면 브레이커가 열린다
	for i := 0; i < 5; i++ {
		if res := relay.Send(context.Background(), nil, webhook.Metadata{Type: "bid_notice"}); res.Success {
			t.Fatalf("send %d unexpectedly succeeded", i)
		}
	}
	if !relay.Breaker().IsOpen() {
		t.Fatalf("breaker state = %s, want open", relay.Breaker().State())
	}

	res := relay.Send(context.Background(), nil, webhook.Metadata{Type: "bid_notice"})
	if res.Success {
		t.Fatal("send through open breaker unexpectedly succeeded")
	}
	if !strings.Contains(res.Reason, "circuit breaker") {
		t.Errorf("reason = %q, want circuit breaker rejection", res.Reason)
	}
}

func TestTestConnection(t *testing.T) {
	var gotPayload webhook.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
	}))
	defer srv.Close()

	relay, err := webhook.NewRelay(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewRelay err=%v", err)
	}

	if res := relay.TestConnection(context.Background()); !res.Success {
		t.Fatalf("TestConnection failed: %+v", res)
	}
	if gotPayload.Metadata.Type != "test" {
		t.Errorf("metadata type = %q, want test", gotPayload.Metadata.Type)
	}
}

package http_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	handler "bizeyes/internal/handler/http"
)

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	h := handler.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/webhook/bid-notice", nil))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("code = %d, want 202", rec.Code)
	}
	if got := rec.Body.String(); got != `{"success":true}` {
		t.Errorf("body = %q", got)
	}
}

func TestTimeout_SlowHandlerGets504(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	h := handler.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/webhook/all", nil))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("code = %d, want 504", rec.Code)
	}
	if got := rec.Body.String(); got != `{"error":"request timed out"}` {
		t.Errorf("body = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	var (
		mu          sync.Mutex
		hasDeadline bool
	)
	h := handler.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		mu.Lock()
		hasDeadline = ok
		mu.Unlock()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/notices", nil))

	mu.Lock()
	defer mu.Unlock()
	if !hasDeadline {
		t.Error("handler context has no deadline")
	}
}

func TestTimeout_LateWritesDiscarded(t *testing.T) {
	started := make(chan struct{})
	finished := make(chan error, 1)

	h := handler.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
		// 타임아웃 이후의 쓰기는 버려져야 한다
		time.Sleep(20 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
		_, err := w.Write([]byte("late"))
		finished <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/webhook/contract", nil))
	<-started

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("code = %d, want 504", rec.Code)
	}

	select {
	case err := <-finished:
		if err != http.ErrHandlerTimeout {
			t.Errorf("late write err = %v, want ErrHandlerTimeout", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler goroutine did not finish")
	}
	if got := rec.Body.String(); got != `{"error":"request timed out"}` {
		t.Errorf("body = %q, late write leaked through", got)
	}
}

func TestTimeout_MultipleWritesSingleHeader(t *testing.T) {
	h := handler.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("first "))
		_, _ = w.Write([]byte("second"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/notices", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want implicit 200", rec.Code)
	}
	if got := rec.Body.String(); got != "first second" {
		t.Errorf("body = %q", got)
	}
}

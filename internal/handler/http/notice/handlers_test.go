package notice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizeyes/internal/common/pagination"
	"bizeyes/internal/domain/entity"
	handler "bizeyes/internal/handler/http/notice"
	"bizeyes/internal/infra/adapter/persistence/memory"
	noticeUC "bizeyes/internal/usecase/notice"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	repo := memory.NewNoticeRepo()
	err := repo.Upsert(context.Background(), []entity.BidNotice{
		{BidNtceNo: "N-001", BidNtceNm: "도로 유지보수 공사", DminsttNm: "조달청", BidNtceDt: "202401010900"},
		{BidNtceNo: "N-002", BidNtceNm: "청사 전산장비 구매", DminsttNm: "행정안전부", BidNtceDt: "202401020900"},
	})
	if err != nil {
		t.Fatalf("seed err=%v", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux, &noticeUC.Service{Repo: repo}, pagination.DefaultConfig(), nil)
	return mux
}

func TestListHandler(t *testing.T) {
	mux := newMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/notices?pageNo=1&numOfRows=1", nil))

	if rec.Code != 200 {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp pagination.Response[entity.BidNotice]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	if resp.Pagination.TotalCount != 2 || resp.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
	if len(resp.Data) != 1 || resp.Data[0].BidNtceNo != "N-002" {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestListHandler_InvalidParams(t *testing.T) {
	mux := newMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/notices?pageNo=zero", nil))
	if rec.Code != 400 {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}

func TestSearchHandler(t *testing.T) {
	mux := newMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/notices/search?q=도로", nil))

	if rec.Code != 200 {
		t.Fatalf("code = %d", rec.Code)
	}
	var resp pagination.Response[entity.BidNotice]
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Pagination.TotalCount != 1 || resp.Data[0].BidNtceNo != "N-001" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSearchHandler_EmptyKeyword(t *testing.T) {
	mux := newMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/notices/search", nil))
	if rec.Code != 400 {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}

func TestGetHandler(t *testing.T) {
	mux := newMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/notices/N-001", nil))

	if rec.Code != 200 {
		t.Fatalf("code = %d", rec.Code)
	}
	var n entity.BidNotice
	_ = json.Unmarshal(rec.Body.Bytes(), &n)
	if n.BidNtceNm != "도로 유지보수 공사" {
		t.Errorf("notice = %+v", n)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	mux := newMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/notices/N-999", nil))
	if rec.Code != 404 {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}

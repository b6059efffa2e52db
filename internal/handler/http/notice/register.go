// Package notice exposes the read endpoints over stored bid notices:
// paginated listing, keyword search, and single-notice lookup.
package notice

import (
	"log/slog"
	"net/http"

	"bizeyes/internal/common/pagination"
	noticeUC "bizeyes/internal/usecase/notice"
)

// Register wires the notice read endpoints onto the mux.
func Register(mux *http.ServeMux, svc *noticeUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /notices", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET /notices/search", SearchHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET /notices/", GetHandler{Svc: svc})
}

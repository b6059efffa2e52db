package notice

import (
	"log/slog"
	"net/http"

	"bizeyes/internal/common/pagination"
	"bizeyes/internal/handler/http/requestid"
	"bizeyes/internal/handler/http/respond"
	noticeUC "bizeyes/internal/usecase/notice"
)

type ListHandler struct {
	Svc           *noticeUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestid.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("invalid pagination parameters",
				slog.String("error", err.Error()),
				slog.String("request_id", reqID))
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(result.Data, result.Pagination))
}

package notice

import (
	"errors"
	"net/http"

	"bizeyes/internal/common/pagination"
	"bizeyes/internal/handler/http/respond"
	noticeUC "bizeyes/internal/usecase/notice"
)

type SearchHandler struct {
	Svc           *noticeUC.Service
	PaginationCfg pagination.Config
}

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Search(r.Context(), r.URL.Query().Get("q"), params)
	if err != nil {
		if errors.Is(err, noticeUC.ErrEmptyKeyword) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(result.Data, result.Pagination))
}

package notice

import (
	"errors"
	"net/http"

	"bizeyes/internal/handler/http/pathutil"
	"bizeyes/internal/handler/http/respond"
	noticeUC "bizeyes/internal/usecase/notice"
)

type GetHandler struct {
	Svc *noticeUC.Service
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	no, err := pathutil.ExtractNoticeNo(r.URL.Path, "/notices/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	n, err := h.Svc.Get(r.Context(), no)
	if err != nil {
		switch {
		case errors.Is(err, noticeUC.ErrNoticeNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, noticeUC.ErrInvalidNoticeNo):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, n)
}

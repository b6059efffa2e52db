package relay

import (
	"net/http"
	"strconv"

	"bizeyes/internal/handler/http/respond"
	"bizeyes/internal/infra/g2b"
	relayUC "bizeyes/internal/usecase/relay"
)

// SendHandler runs the fetch-and-relay pipeline for one dataset kind.
//
// Query parameters: pageNo, numOfRows, bidNtceNm, dminsttNm, fromDt,
// toDt. Invalid numeric parameters are a 400; pipeline outcomes,
// including a failed webhook delivery, are reported inside a 200
// response body.
type SendHandler struct {
	Svc  *relayUC.Service
	Kind relayUC.Kind
}

func (h SendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var summary relayUC.Summary
	switch h.Kind {
	case relayUC.KindPreNotice:
		summary = h.Svc.RelayPreNotices(r.Context(), params)
	case relayUC.KindContract:
		summary = h.Svc.RelayContracts(r.Context(), params)
	default:
		summary = h.Svc.RelayBidNotices(r.Context(), params)
	}

	respond.JSON(w, http.StatusOK, summary)
}

// parseListParams reads the fetch parameters from the query string.
// Date filters pass through unvalidated: the upstream API is
// authoritative for their format.
func parseListParams(r *http.Request) (g2b.ListParams, error) {
	q := r.URL.Query()
	p := g2b.ListParams{
		BidNtceNm: q.Get("bidNtceNm"),
		DminsttNm: q.Get("dminsttNm"),
		FromDt:    q.Get("fromDt"),
		ToDt:      q.Get("toDt"),
	}

	var err error
	if p.PageNo, err = intParam(q.Get("pageNo")); err != nil {
		return p, err
	}
	p.NumOfRows, err = intParam(q.Get("numOfRows"))
	return p, err
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, &paramError{raw: raw}
	}
	return v, nil
}

type paramError struct{ raw string }

func (e *paramError) Error() string {
	return "invalid query parameter: " + e.raw + " must be a positive integer"
}

package relay

import (
	"net/http"

	"bizeyes/internal/handler/http/respond"
	relayUC "bizeyes/internal/usecase/relay"
)

// TestHandler probes webhook connectivity without fetching any data.
type TestHandler struct {
	Svc *relayUC.Service
}

func (h TestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Svc.TestWebhook(r.Context()))
}

package relay

import (
	"net/http"

	"bizeyes/internal/handler/http/respond"
	relayUC "bizeyes/internal/usecase/relay"
)

// SendAllHandler relays all three datasets with mock data. Partial
// failures show up in the results map, never as an HTTP error.
type SendAllHandler struct {
	Svc *relayUC.Service
}

func (h SendAllHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Svc.SendAll(r.Context()))
}

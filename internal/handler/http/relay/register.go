// Package relay exposes the fetch-and-relay HTTP endpoints: a webhook
// connectivity probe, one endpoint per dataset kind, and a send-all
// endpoint covering all three.
package relay

import (
	"net/http"

	relayUC "bizeyes/internal/usecase/relay"
)

// Register wires the relay endpoints onto the mux.
func Register(mux *http.ServeMux, svc *relayUC.Service) {
	mux.Handle("GET /webhook/test", TestHandler{Svc: svc})
	mux.Handle("POST /webhook/bid-notice", SendHandler{Svc: svc, Kind: relayUC.KindBidNotice})
	mux.Handle("POST /webhook/pre-notice", SendHandler{Svc: svc, Kind: relayUC.KindPreNotice})
	mux.Handle("POST /webhook/contract", SendHandler{Svc: svc, Kind: relayUC.KindContract})
	mux.Handle("POST /webhook/all", SendAllHandler{Svc: svc})
}

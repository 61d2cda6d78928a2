package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexapay/crypto-desk/internal/facades"
	"github.com/nexapay/crypto-desk/internal/logger"
)

// AccountInfoGetter defines the interface that the facade must implement.
type AccountInfoGetter interface {
	GetAccountInfo(ctx context.Context) (*facades.AccountInfo, error)
}

// ExchangeHealthResponse represents the exchange connectivity probe result
// swagger:model ExchangeHealthResponse
type ExchangeHealthResponse struct {
	// default: ok
	Status string `json:"status"`

	// Exchange-side account status
	AccountStatus string `json:"account_status,omitempty"`
}

// ExchangeHealthErrorResponse represents a failed exchange probe
// swagger:model ExchangeHealthErrorResponse
type ExchangeHealthErrorResponse struct {
	// default: unavailable
	Status string `json:"status"`
}

// NewExchangeHealthHandler returns an HTTP handler probing exchange
// connectivity and credential validity via the account-info endpoint.
// @Summary Probe exchange connectivity
// @Description Calls the exchange account-info endpoint to verify reachability and API credentials.
// @Tags exchange
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.ExchangeHealthResponse "Exchange reachable"
// @Failure 502 {object} handlers.ExchangeHealthErrorResponse "Exchange unreachable or credentials rejected"
// @Router /exchange/health [get]
func NewExchangeHealthHandler(facade AccountInfoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := facade.GetAccountInfo(r.Context())
		if err != nil {
			logger.Log.Errorw("exchange health probe failed", "err", err)
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(ExchangeHealthErrorResponse{Status: "unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExchangeHealthResponse{
			Status:        "ok",
			AccountStatus: info.Status,
		})
	}
}

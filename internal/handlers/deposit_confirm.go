package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/services"
)

// DepositConfirmer defines the interface that the service must implement.
type DepositConfirmer interface {
	Confirm(ctx context.Context, coin, claimedSize, claimedTxid string, window services.ReconcileWindow) (services.ReconcileResult, error)
}

// ConfirmDepositRequest represents the JSON body for a deposit confirmation
// swagger:model ConfirmDepositRequest
type ConfirmDepositRequest struct {
	// Coin ticker, matched case-insensitively
	// required: true
	// default: USDT
	Coin string `json:"coin"`

	// Claimed deposit size as a decimal string
	// required: true
	// default: 100.5
	Size string `json:"size"`

	// Claimed transaction reference, matched against tradeId or orderId
	// required: true
	Txid string `json:"txid"`

	// Optional window start, unix milliseconds. Zero means end minus seven days.
	StartTime int64 `json:"start_time,omitempty"`

	// Optional window end, unix milliseconds. Zero means now.
	EndTime int64 `json:"end_time,omitempty"`
}

// ConfirmDepositErrorResponse represents an error response for deposit confirmation
// swagger:model ConfirmDepositErrorResponse
type ConfirmDepositErrorResponse struct {
	// Error message
	// default: Exchange unavailable
	Error string `json:"error"`
}

// NewConfirmDepositHandler returns an HTTP handler for corroborating a
// claimed deposit against the exchange ledger. A clean miss is a 200 with
// confirmed=false, not an error.
// @Summary Confirm a claimed deposit
// @Description Searches the exchange deposit ledger for a record matching the claimed coin, size and reference within the window.
// @Tags deposits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param confirmDepositRequest body handlers.ConfirmDepositRequest true "Deposit confirmation request"
// @Success 200 {object} services.ReconcileResult "Search outcome"
// @Failure 400 {object} handlers.ConfirmDepositErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ConfirmDepositErrorResponse "Missing or invalid token"
// @Failure 502 {object} handlers.ConfirmDepositErrorResponse "Exchange unavailable"
// @Router /deposits/confirm [post]
func NewConfirmDepositHandler(svc DepositConfirmer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConfirmDepositErrorResponse{Error: "Missing or invalid token"})
			return
		}
		if _, err := tokener.GetClaims(r.Context(), token); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConfirmDepositErrorResponse{Error: "Missing or invalid token"})
			return
		}

		var req ConfirmDepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmDepositErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Coin == "" || req.Size == "" || req.Txid == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmDepositErrorResponse{Error: "coin, size and txid are required"})
			return
		}

		var window services.ReconcileWindow
		if req.StartTime > 0 {
			window.Start = time.UnixMilli(req.StartTime)
		}
		if req.EndTime > 0 {
			window.End = time.UnixMilli(req.EndTime)
		}

		result, err := svc.Confirm(r.Context(), req.Coin, req.Size, req.Txid, window)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConfirmDepositErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrExchangeUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ConfirmDepositErrorResponse{Error: "Exchange unavailable"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConfirmDepositErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/nexapay/crypto-desk/internal/services"
)

// StatusSetter defines the interface that the service must implement.
type StatusSetter interface {
	SetStatus(ctx context.Context, txid, newStatus string) (*models.TransactionDB, error)
}

// SetStatusRequest represents the JSON body for a status transition
// swagger:model SetStatusRequest
type SetStatusRequest struct {
	// Target status, confirmed or failed
	// required: true
	// default: confirmed
	Status string `json:"status"`
}

// SetStatusResponse represents a successful status transition
// swagger:model SetStatusResponse
type SetStatusResponse struct {
	// Success message
	// default: Transaction status updated
	Message string `json:"message"`

	// The updated transaction
	Transaction models.TransactionDB `json:"transaction"`
}

// SetStatusErrorResponse represents an error response for status transitions
// swagger:model SetStatusErrorResponse
type SetStatusErrorResponse struct {
	// Error message
	// default: Transaction not found
	Error string `json:"error"`
}

// NewSetStatusHandler returns an HTTP handler for transitioning a pending
// transaction to confirmed or failed.
// @Summary Update a transaction's status
// @Description Moves a pending transaction to confirmed or failed. Confirming triggers notification, email and event side effects; none of them can fail the transition.
// @Tags transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param txid path string true "User-claimed transaction id"
// @Param setStatusRequest body handlers.SetStatusRequest true "Status transition request"
// @Success 200 {object} handlers.SetStatusResponse "Transaction updated"
// @Failure 400 {object} handlers.SetStatusErrorResponse "Invalid target status"
// @Failure 401 {object} handlers.SetStatusErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.SetStatusErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.SetStatusErrorResponse "Transaction is not pending"
// @Router /transactions/{txid}/status [patch]
func NewSetStatusHandler(svc StatusSetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SetStatusErrorResponse{Error: "Missing or invalid token"})
			return
		}
		if _, err := tokener.GetClaims(r.Context(), token); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SetStatusErrorResponse{Error: "Missing or invalid token"})
			return
		}

		var req SetStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SetStatusErrorResponse{Error: "Invalid request body"})
			return
		}

		txid := chi.URLParam(r, "txid")

		txn, err := svc.SetStatus(r.Context(), txid, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SetStatusErrorResponse{Error: "Status must be confirmed or failed"})
			case errors.Is(err, services.ErrTransactionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SetStatusErrorResponse{Error: "Transaction not found"})
			case errors.Is(err, services.ErrTransactionNotPending):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SetStatusErrorResponse{Error: "Transaction is not pending"})
			default:
				logger.Log.Errorw("internal server error", "txid", txid, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SetStatusErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetStatusResponse{
			Message:     "Transaction status updated",
			Transaction: *txn,
		})
	}
}

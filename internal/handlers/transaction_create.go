package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/nexapay/crypto-desk/internal/services"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, submitter models.Submitter, req models.CreateTransactionRequest) (*models.TransactionDB, error)
}

// CreateTransactionResponse represents a successfully created transaction
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	// Success message
	// default: Transaction submitted
	Message string `json:"message"`

	// The persisted pending transaction
	Transaction models.TransactionDB `json:"transaction"`
}

// CreateTransactionErrorResponse represents an error response for transaction creation
// swagger:model CreateTransactionErrorResponse
type CreateTransactionErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`
}

// NewCreateTransactionHandler returns an HTTP handler for submitting a
// buy/sell transaction. The caller's identity snapshot is taken from the
// bearer token, never from the body.
// @Summary Submit a buy or sell transaction
// @Description Validates the request, resolves the desk deposit address for the coin and persists a pending transaction.
// @Tags transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param createTransactionRequest body models.CreateTransactionRequest true "Transaction create request"
// @Success 201 {object} handlers.CreateTransactionResponse "Transaction persisted as pending"
// @Failure 400 {object} handlers.CreateTransactionErrorResponse "Validation failure"
// @Failure 401 {object} handlers.CreateTransactionErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.CreateTransactionErrorResponse "No deposit address for coin"
// @Failure 409 {object} handlers.CreateTransactionErrorResponse "Duplicate txid"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Missing or invalid token"})
			return
		}
		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Missing or invalid token"})
			return
		}

		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Invalid request body"})
			return
		}

		submitter := models.Submitter{
			UserID:   claims.UserID,
			Fullname: claims.Fullname,
			Username: claims.Username,
			Email:    claims.Email,
		}

		txn, err := svc.Create(r.Context(), submitter, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrTxidAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Transaction with this txid already exists"})
			case errors.Is(err, services.ErrWalletAddressNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "No deposit address configured for this coin"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateTransactionResponse{
			Message:     "Transaction submitted",
			Transaction: *txn,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error)
	ListForUser(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]models.TransactionDB, error)
}

// ListTransactionsResponse represents a transaction listing
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	Transactions []models.TransactionDB `json:"transactions"`
}

// ListTransactionsErrorResponse represents an error response for transaction listings
// swagger:model ListTransactionsErrorResponse
type ListTransactionsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// filterFromQuery builds a listing filter from the request query string.
// Unknown sort values fall back to newest-first.
func filterFromQuery(r *http.Request) models.TransactionFilter {
	return models.TransactionFilter{
		Coin:    r.URL.Query().Get("coin"),
		Type:    r.URL.Query().Get("type"),
		SortAsc: r.URL.Query().Get("sort") == "asc",
	}
}

// NewListTransactionsHandler returns an HTTP handler for the operator-wide
// transaction listing.
// @Summary List all transactions
// @Description Returns every transaction, optionally filtered by coin and type. Sorted by creation time, newest first unless sort=asc.
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param coin query string false "Filter by coin ticker"
// @Param type query string false "Filter by transaction type (buy or sell)"
// @Param sort query string false "asc for oldest first"
// @Success 200 {object} handlers.ListTransactionsResponse "Transactions"
// @Failure 401 {object} handlers.ListTransactionsErrorResponse "Missing or invalid token"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Missing or invalid token"})
			return
		}
		if _, err := tokener.GetClaims(r.Context(), token); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Missing or invalid token"})
			return
		}

		txns, err := svc.List(r.Context(), filterFromQuery(r))
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListTransactionsResponse{Transactions: txns})
	}
}

// NewListMyTransactionsHandler returns an HTTP handler for the caller's own
// transaction listing.
// @Summary List the caller's transactions
// @Description Returns the authenticated user's transactions, optionally filtered by coin and type.
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param coin query string false "Filter by coin ticker"
// @Param type query string false "Filter by transaction type (buy or sell)"
// @Param sort query string false "asc for oldest first"
// @Success 200 {object} handlers.ListTransactionsResponse "Transactions"
// @Failure 401 {object} handlers.ListTransactionsErrorResponse "Missing or invalid token"
// @Router /transactions/my [get]
func NewListMyTransactionsHandler(svc TransactionLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Missing or invalid token"})
			return
		}
		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Missing or invalid token"})
			return
		}

		txns, err := svc.ListForUser(r.Context(), claims.UserID, filterFromQuery(r))
		if err != nil {
			logger.Log.Errorw("failed to list user transactions", "user_id", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListTransactionsResponse{Transactions: txns})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
)

// WalletAddressManager defines the interface that the service must implement.
type WalletAddressManager interface {
	SetOverride(ctx context.Context, coin, address string) error
	Catalog() []models.WalletAddress
}

// SetWalletAddressRequest represents the JSON body for an address override
// swagger:model SetWalletAddressRequest
type SetWalletAddressRequest struct {
	// Deposit address
	// required: true
	Address string `json:"address"`
}

// SetWalletAddressResponse represents a successful override write
// swagger:model SetWalletAddressResponse
type SetWalletAddressResponse struct {
	// Success message
	// default: Wallet address updated
	Message string `json:"message"`
}

// WalletAddressErrorResponse represents an error response for wallet address operations
// swagger:model WalletAddressErrorResponse
type WalletAddressErrorResponse struct {
	// Error message
	// default: coin and address are required
	Error string `json:"error"`
}

// WalletCatalogResponse represents the shipped address catalog
// swagger:model WalletCatalogResponse
type WalletCatalogResponse struct {
	Addresses []models.WalletAddress `json:"addresses"`
}

// NewSetWalletAddressHandler returns an HTTP handler for storing an
// operator-managed deposit-address override.
// @Summary Override a coin's deposit address
// @Description Stores a runtime override that wins over the shipped catalog. The override key is matched exactly on resolve.
// @Tags wallets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param coin path string true "Coin key the override is stored under, matched exactly on resolve"
// @Param setWalletAddressRequest body handlers.SetWalletAddressRequest true "Address override request"
// @Success 200 {object} handlers.SetWalletAddressResponse "Override stored"
// @Failure 400 {object} handlers.WalletAddressErrorResponse "Missing coin or address"
// @Failure 401 {object} handlers.WalletAddressErrorResponse "Missing or invalid token"
// @Router /wallets/addresses/{coin} [put]
func NewSetWalletAddressHandler(svc WalletAddressManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletAddressErrorResponse{Error: "Missing or invalid token"})
			return
		}
		if _, err := tokener.GetClaims(r.Context(), token); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletAddressErrorResponse{Error: "Missing or invalid token"})
			return
		}

		var req SetWalletAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WalletAddressErrorResponse{Error: "Invalid request body"})
			return
		}

		coin := chi.URLParam(r, "coin")
		if coin == "" || req.Address == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WalletAddressErrorResponse{Error: "coin and address are required"})
			return
		}

		if err := svc.SetOverride(r.Context(), coin, req.Address); err != nil {
			logger.Log.Errorw("failed to store wallet address override", "coin", coin, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WalletAddressErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetWalletAddressResponse{Message: "Wallet address updated"})
	}
}

// NewWalletCatalogHandler returns an HTTP handler listing the shipped
// deposit-address catalog. Overrides are not reflected here.
// @Summary List the deposit-address catalog
// @Description Returns the shipped per-coin deposit addresses used as the resolve fallback.
// @Tags wallets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.WalletCatalogResponse "Catalog"
// @Failure 401 {object} handlers.WalletAddressErrorResponse "Missing or invalid token"
// @Router /wallets/addresses [get]
func NewWalletCatalogHandler(svc WalletAddressManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletAddressErrorResponse{Error: "Missing or invalid token"})
			return
		}
		if _, err := tokener.GetClaims(r.Context(), token); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WalletAddressErrorResponse{Error: "Missing or invalid token"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WalletCatalogResponse{Addresses: svc.Catalog()})
	}
}

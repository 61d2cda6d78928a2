package services

import (
	"context"
	"errors"
	"strings"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
)

// ErrWalletAddressNotFound is returned when neither an override nor a catalog
// entry exists for a coin.
var ErrWalletAddressNotFound = errors.New("no deposit address configured for coin")

// WalletAddressOverrideStore reads and writes operator-managed address overrides.
type WalletAddressOverrideStore interface {
	Get(ctx context.Context, coin string) (string, error) // Returns "" when no override is set
	Set(ctx context.Context, coin, address string) error  // Stores an override
}

// WalletAddressService resolves a coin ticker to the desk deposit address.
// Overrides win; the injected read-only catalog is the fallback.
type WalletAddressService struct {
	overrides WalletAddressOverrideStore
	catalog   []models.WalletAddress
}

// NewWalletAddressService creates a new WalletAddressService.
func NewWalletAddressService(overrides WalletAddressOverrideStore, catalog []models.WalletAddress) *WalletAddressService {
	return &WalletAddressService{
		overrides: overrides,
		catalog:   catalog,
	}
}

// Resolve returns the deposit address for a coin: the override under the
// exact coin key first, then the catalog matched case-insensitively.
// An override-store failure only loses the override tier; the catalog still
// guarantees a safe default.
func (s *WalletAddressService) Resolve(ctx context.Context, coin string) (string, error) {
	override, err := s.overrides.Get(ctx, coin)
	if err != nil {
		logger.Log.Errorw("failed to read wallet address override", "coin", coin, "error", err)
	} else if override != "" {
		return override, nil
	}

	for _, entry := range s.catalog {
		if strings.EqualFold(entry.Coin, coin) {
			return entry.Address, nil
		}
	}

	return "", ErrWalletAddressNotFound
}

// SetOverride stores an operator-managed address for a coin.
func (s *WalletAddressService) SetOverride(ctx context.Context, coin, address string) error {
	if coin == "" || address == "" {
		return errors.New("coin and address are required")
	}
	return s.overrides.Set(ctx, coin, address)
}

// Catalog returns a copy of the shipped address catalog.
func (s *WalletAddressService) Catalog() []models.WalletAddress {
	out := make([]models.WalletAddress, len(s.catalog))
	copy(out, s.catalog)
	return out
}

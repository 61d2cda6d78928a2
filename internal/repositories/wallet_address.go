package repositories

import (
	"context"
	"fmt"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/redis/go-redis/v9"
)

// WalletAddressOverrideRepository stores operator-managed deposit-address
// overrides in Redis. Overrides shadow the shipped catalog so addresses can
// be rotated without a redeploy.
type WalletAddressOverrideRepository struct {
	client *redis.Client
}

func NewWalletAddressOverrideRepository(client *redis.Client) *WalletAddressOverrideRepository {
	return &WalletAddressOverrideRepository{client: client}
}

// walletAddressKey builds the redis key for a coin. The coin is used as-is:
// overrides match on the exact key, only the catalog is case-insensitive.
func walletAddressKey(coin string) string {
	return fmt.Sprintf("wallet_address:%s", coin)
}

// Get returns the override address for a coin, or "" when none is set.
func (r *WalletAddressOverrideRepository) Get(ctx context.Context, coin string) (string, error) {
	key := walletAddressKey(coin)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores an override address for a coin. Overrides have no expiration;
// they stand until replaced.
func (r *WalletAddressOverrideRepository) Set(ctx context.Context, coin, address string) error {
	key := walletAddressKey(coin)
	err := r.client.Set(ctx, key, address, 0).Err()

	logger.Log.Infow(
		"key", key,
		"address", address,
		"result", "ok",
		"error", err,
	)

	return err
}

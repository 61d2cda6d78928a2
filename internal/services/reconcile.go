package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/shopspring/decimal"
)

// ErrExchangeUnavailable marks an upstream transport/API failure, as opposed
// to "searched the ledger, nothing matched yet".
var ErrExchangeUnavailable = errors.New("exchange deposit ledger unavailable")

const (
	// defaultReconcileWindow is used when the caller supplies no window.
	defaultReconcileWindow = 7 * 24 * time.Hour
	// reconcileFetchLimit caps one ledger page; deposits land newest first.
	reconcileFetchLimit = 100
)

// sizeTolerance absorbs string/float rounding in the exchange API: 1e-6.
var sizeTolerance = decimal.New(1, -6)

// DepositFetcher reads the exchange's deposit ledger.
type DepositFetcher interface {
	FetchDeposits(ctx context.Context, coin string, startMs, endMs int64, limit int) ([]models.DepositRecord, error)
}

// ReconcileWindow is the time range searched on the exchange ledger.
// Zero fields fall back to the rolling default of the last seven days.
type ReconcileWindow struct {
	Start time.Time
	End   time.Time
}

// ReconcileResult is the outcome of a deposit confirmation attempt.
// Confirmed=false with a nil error means "not found yet", not a failure.
type ReconcileResult struct {
	Confirmed bool                  `json:"confirmed"`
	Matched   *models.DepositRecord `json:"data,omitempty"`
}

// ReconcileService corroborates a user's claimed deposit against the
// custodial exchange's authoritative ledger.
type ReconcileService struct {
	fetcher DepositFetcher
}

// NewReconcileService creates a new ReconcileService.
func NewReconcileService(fetcher DepositFetcher) *ReconcileService {
	return &ReconcileService{fetcher: fetcher}
}

// Confirm searches the ledger window for a record matching the claim on all
// four predicates: coin (case-insensitive), size within 1e-6, claimed txid
// equal to the record's tradeId or orderId, and terminal success status.
func (s *ReconcileService) Confirm(ctx context.Context, coin, claimedSize, claimedTxid string, window ReconcileWindow) (ReconcileResult, error) {
	claimed, err := decimal.NewFromString(claimedSize)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("%w: size must be a decimal number", ErrValidation)
	}

	if window.End.IsZero() {
		window.End = time.Now()
	}
	if window.Start.IsZero() {
		window.Start = window.End.Add(-defaultReconcileWindow)
	}

	records, err := s.fetcher.FetchDeposits(ctx, coin, window.Start.UnixMilli(), window.End.UnixMilli(), reconcileFetchLimit)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange deposits", "coin", coin, "error", err)
		return ReconcileResult{}, fmt.Errorf("%w: %v", ErrExchangeUnavailable, err)
	}

	for i := range records {
		record := records[i]

		if !strings.EqualFold(record.Coin, coin) {
			continue
		}
		size, err := decimal.NewFromString(record.Size)
		if err != nil {
			logger.Log.Warnw("skipping deposit with malformed size",
				"coin", record.Coin, "size", record.Size)
			continue
		}
		if claimed.Sub(size).Abs().GreaterThan(sizeTolerance) {
			continue
		}
		if !record.MatchesReference(claimedTxid) {
			continue
		}
		if record.Status != models.DepositStatusSuccess {
			continue
		}

		logger.Log.Infow("deposit claim corroborated",
			"coin", coin, "txid", claimedTxid, "size", record.Size)
		return ReconcileResult{Confirmed: true, Matched: &record}, nil
	}

	return ReconcileResult{Confirmed: false}, nil
}

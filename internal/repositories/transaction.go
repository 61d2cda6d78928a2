package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
)

// ErrUniqueTxidViolation is returned when an insert hits the unique index on
// txid. The index is the actual at-most-once guarantee; any pre-check in the
// service layer is only a friendlier fast path.
var ErrUniqueTxidViolation = errors.New("txid already exists")

const pgUniqueViolation = "23505"

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db *sqlx.DB
}

func NewTransactionWriteRepository(db *sqlx.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

// Save inserts a new transaction. A duplicate txid maps to
// ErrUniqueTxidViolation regardless of which caller lost the race.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, fullname, username, email,
			coin, amount, coin_amount, txid, tx_type, country, status,
			wallet_address_used, bank_name, account_name, account_number,
			wallet_address_sent_to, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{
		txn.TransactionID, txn.UserID, txn.Fullname, txn.Username, txn.Email,
		txn.Coin, txn.Amount, txn.CoinAmount, txn.Txid, txn.Type, txn.Country, txn.Status,
		txn.WalletAddressUsed, txn.BankName, txn.AccountName, txn.AccountNumber,
		txn.WalletAddressSentTo,
	}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&txn.CreatedAt, &txn.UpdatedAt)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.Txid, txn.Coin, txn.Type},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrUniqueTxidViolation
	}
	return err
}

// UpdateStatus transitions the transaction with the given txid out of
// pending and returns the updated row. The status predicate is the terminal
// guard: racing transitions on one row commit at most once. Returns nil when
// the txid is unknown or the row has already settled.
func (r *TransactionWriteRepository) UpdateStatus(ctx context.Context, txid, status string) (*models.TransactionDB, error) {
	query := `
		UPDATE transactions
		SET status = $2, updated_at = NOW()
		WHERE txid = $1 AND status = $3
		RETURNING *
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, txid, status, models.TxStatusPending)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txid, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByTxid returns the transaction with the given txid, or nil when absent.
func (r *TransactionReadRepository) GetByTxid(ctx context.Context, txid string) (*models.TransactionDB, error) {
	const query = `
		SELECT * FROM transactions WHERE txid = $1 LIMIT 1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, txid)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txid},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// List returns all transactions matching the filter.
func (r *TransactionReadRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error) {
	query := `
		SELECT * FROM transactions
		WHERE ($1::VARCHAR IS NULL OR coin = $1)
		  AND ($2::VARCHAR IS NULL OR tx_type = $2)
		ORDER BY created_at DESC
	`
	if filter.SortAsc {
		query = strings.Replace(query, "DESC", "ASC", 1)
	}

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, nullable(filter.Coin), nullable(filter.Type))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filter.Coin, filter.Type},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// ListByUser returns a user's transactions matching the filter.
func (r *TransactionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]models.TransactionDB, error) {
	query := `
		SELECT * FROM transactions
		WHERE user_id = $1
		  AND ($2::VARCHAR IS NULL OR coin = $2)
		  AND ($3::VARCHAR IS NULL OR tx_type = $3)
		ORDER BY created_at DESC
	`
	if filter.SortAsc {
		query = strings.Replace(query, "DESC", "ASC", 1)
	}

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID, nullable(filter.Coin), nullable(filter.Type))

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, filter.Coin, filter.Type},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// nullable turns an empty string into a NULL query argument.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
)

// NotificationWriteRepository handles notification write operations
type NotificationWriteRepository struct {
	db *sqlx.DB
}

func NewNotificationWriteRepository(db *sqlx.DB) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db}
}

// Save inserts a new notification row.
func (r *NotificationWriteRepository) Save(ctx context.Context, n *models.NotificationDB) error {
	query := `
		INSERT INTO notifications (
			notification_id, user_id, n_type, message,
			transaction_id, txid, amount, coin, is_read, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW())
		RETURNING created_at
	`
	args := []any{
		n.NotificationID, n.UserID, n.Type, n.Message,
		n.TransactionID, n.Txid, n.Amount, n.Coin,
	}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&n.CreatedAt)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{n.NotificationID, n.UserID, n.TransactionID},
		"error", err,
	)

	return err
}

// MarkRead flips is_read for the given notification owned by the given user.
// Returns false when no matching row exists.
func (r *NotificationWriteRepository) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE notification_id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, notificationID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{notificationID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// NotificationReadRepository handles notification read operations
type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// ListByUser returns a user's notifications, newest first.
func (r *NotificationReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	const query = `
		SELECT * FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}

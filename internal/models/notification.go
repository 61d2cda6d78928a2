package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTypeTransactionConfirmed is the only notification type emitted
// by this service.
const NotificationTypeTransactionConfirmed = "transaction_confirmed"

// NotificationDB represents a user notification row in the database.
// Rows are created as a side effect of a confirm transition and only ever
// mutated by mark-read.
type NotificationDB struct {
	NotificationID uuid.UUID `json:"notification_id" db:"notification_id"` // Primary key
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	Type           string    `json:"type" db:"n_type"`
	Message        string    `json:"message" db:"message"`
	TransactionID  uuid.UUID `json:"transaction_id" db:"transaction_id"`
	Txid           string    `json:"txid" db:"txid"`
	Amount         float64   `json:"amount" db:"amount"`
	Coin           string    `json:"coin" db:"coin"`
	IsRead         bool      `json:"is_read" db:"is_read"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrTransactionNotPending = errors.New("transaction is not pending")
	ErrInvalidStatus         = errors.New("status must be confirmed or failed")
)

// StatusTransactionReader looks transactions up by txid.
type StatusTransactionReader interface {
	GetByTxid(ctx context.Context, txid string) (*models.TransactionDB, error)
}

// StatusTransactionWriter persists status transitions.
type StatusTransactionWriter interface {
	UpdateStatus(ctx context.Context, txid, status string) (*models.TransactionDB, error)
}

// NotificationCreator persists user notifications.
type NotificationCreator interface {
	Save(ctx context.Context, n *models.NotificationDB) error
}

// EmailSender dispatches HTML emails.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// StatusService drives the pending -> confirmed/failed transition.
// The status write is the durable business fact; notification, email and the
// Kafka event are advisory and must never undo or block it.
type StatusService struct {
	reader        StatusTransactionReader
	writer        StatusTransactionWriter
	notifications NotificationCreator
	mailer        EmailSender
	kafkaWriter   KafkaWriter
}

// NewStatusService creates a new StatusService.
func NewStatusService(
	reader StatusTransactionReader,
	writer StatusTransactionWriter,
	notifications NotificationCreator,
	mailer EmailSender,
	kafkaWriter KafkaWriter,
) *StatusService {
	return &StatusService{
		reader:        reader,
		writer:        writer,
		notifications: notifications,
		mailer:        mailer,
		kafkaWriter:   kafkaWriter,
	}
}

// SetStatus transitions the transaction with the given txid out of pending.
// Confirmed and failed are both terminal. The store only transitions pending
// rows, so concurrent calls on one txid commit at most one transition. On
// confirm, the side effects run strictly after the status write and are
// isolated from one another; the updated transaction is returned regardless
// of their outcome.
func (s *StatusService) SetStatus(ctx context.Context, txid, newStatus string) (*models.TransactionDB, error) {
	if newStatus != models.TxStatusConfirmed && newStatus != models.TxStatusFailed {
		return nil, ErrInvalidStatus
	}

	updated, err := s.writer.UpdateStatus(ctx, txid, newStatus)
	if err != nil {
		logger.Log.Errorw("failed to update transaction status", "txid", txid, "status", newStatus, "error", err)
		return nil, err
	}
	if updated == nil {
		// No pending row transitioned: the txid is either unknown or already
		// settled. A follow-up lookup tells the two apart.
		txn, err := s.reader.GetByTxid(ctx, txid)
		if err != nil {
			logger.Log.Errorw("failed to look up transaction", "txid", txid, "error", err)
			return nil, err
		}
		if txn == nil {
			return nil, ErrTransactionNotFound
		}
		return nil, ErrTransactionNotPending
	}

	if newStatus == models.TxStatusConfirmed {
		s.createNotification(ctx, updated)
		s.sendConfirmationEmail(ctx, updated)
		s.publishConfirmedEvent(ctx, updated)
	}

	return updated, nil
}

// createNotification writes the confirmation notification; failures are
// logged and swallowed.
func (s *StatusService) createNotification(ctx context.Context, txn *models.TransactionDB) {
	n := &models.NotificationDB{
		NotificationID: uuid.New(),
		UserID:         txn.UserID,
		Type:           models.NotificationTypeTransactionConfirmed,
		Message: fmt.Sprintf("Your %s transaction of %v %s (%s) has been confirmed.",
			txn.Type, txn.CoinAmount, txn.Coin, txn.Txid),
		TransactionID: txn.TransactionID,
		Txid:          txn.Txid,
		Amount:        txn.Amount,
		Coin:          txn.Coin,
	}

	if err := s.notifications.Save(ctx, n); err != nil {
		logger.Log.Errorw("failed to create confirmation notification",
			"txid", txn.Txid, "user_id", txn.UserID, "error", err)
	}
}

// sendConfirmationEmail emails the snapshot address; failures are logged and
// swallowed.
func (s *StatusService) sendConfirmationEmail(ctx context.Context, txn *models.TransactionDB) {
	subject := "Your transaction has been confirmed"
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your %s transaction of <b>%v %s</b> (txid %s) has been confirmed.</p>",
		txn.Fullname, txn.Type, txn.CoinAmount, txn.Coin, txn.Txid,
	)

	if err := s.mailer.Send(ctx, txn.Email, subject, html); err != nil {
		logger.Log.Errorw("failed to send confirmation email",
			"txid", txn.Txid, "email", txn.Email, "error", err)
	}
}

// confirmedEvent is the Kafka payload for downstream consumers.
type confirmedEvent struct {
	TransactionID string  `json:"transaction_id"`
	Txid          string  `json:"txid"`
	UserID        string  `json:"user_id"`
	Coin          string  `json:"coin"`
	CoinAmount    float64 `json:"coin_amount"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	Timestamp     int64   `json:"timestamp"`
}

// publishConfirmedEvent publishes the confirmation to Kafka; failures are
// logged and swallowed.
func (s *StatusService) publishConfirmedEvent(ctx context.Context, txn *models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "txid", txn.Txid)
		return
	}

	event := confirmedEvent{
		TransactionID: txn.TransactionID.String(),
		Txid:          txn.Txid,
		UserID:        txn.UserID.String(),
		Coin:          txn.Coin,
		CoinAmount:    txn.CoinAmount,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal confirmed event", "txid", txn.Txid, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.Txid),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish confirmed event", "txid", txn.Txid, "error", err)
	} else {
		logger.Log.Infow("confirmed event published", "txid", txn.Txid)
	}
}

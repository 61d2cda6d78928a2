package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
)

// ErrNotificationNotFound is returned when mark-read targets an unknown or
// foreign notification.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
}

// NotificationMarker flips the read flag on a notification.
type NotificationMarker interface {
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (bool, error)
}

// NotificationService exposes a user's notification feed.
type NotificationService struct {
	reader NotificationReader
	marker NotificationMarker
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(reader NotificationReader, marker NotificationMarker) *NotificationService {
	return &NotificationService{
		reader: reader,
		marker: marker,
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	return s.reader.ListByUser(ctx, userID)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	ok, err := s.marker.MarkRead(ctx, notificationID, userID)
	if err != nil {
		logger.Log.Errorw("failed to mark notification read",
			"notification_id", notificationID, "user_id", userID, "error", err)
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

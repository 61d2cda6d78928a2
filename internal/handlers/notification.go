package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/nexapay/crypto-desk/internal/services"
)

// NotificationFeeder defines the interface that the service must implement.
type NotificationFeeder interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}

// ListNotificationsResponse represents a user's notification feed
// swagger:model ListNotificationsResponse
type ListNotificationsResponse struct {
	Notifications []models.NotificationDB `json:"notifications"`
}

// MarkNotificationReadResponse represents a successful mark-read
// swagger:model MarkNotificationReadResponse
type MarkNotificationReadResponse struct {
	// Success message
	// default: Notification marked as read
	Message string `json:"message"`
}

// NotificationErrorResponse represents an error response for notification operations
// swagger:model NotificationErrorResponse
type NotificationErrorResponse struct {
	// Error message
	// default: Notification not found
	Error string `json:"error"`
}

// NewListNotificationsHandler returns an HTTP handler for the caller's
// notification feed.
// @Summary List the caller's notifications
// @Description Returns the authenticated user's notifications, newest first.
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} handlers.ListNotificationsResponse "Notifications"
// @Failure 401 {object} handlers.NotificationErrorResponse "Missing or invalid token"
// @Router /notifications [get]
func NewListNotificationsHandler(svc NotificationFeeder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Missing or invalid token"})
			return
		}
		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Missing or invalid token"})
			return
		}

		notifications, err := svc.ListForUser(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "user_id", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListNotificationsResponse{Notifications: notifications})
	}
}

// NewMarkNotificationReadHandler returns an HTTP handler for marking one of
// the caller's notifications as read. Foreign notifications read as not found.
// @Summary Mark a notification as read
// @Description Flips the read flag on one of the caller's notifications.
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} handlers.MarkNotificationReadResponse "Marked"
// @Failure 400 {object} handlers.NotificationErrorResponse "Malformed id"
// @Failure 401 {object} handlers.NotificationErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.NotificationErrorResponse "Notification not found"
// @Router /notifications/{id}/read [post]
func NewMarkNotificationReadHandler(svc NotificationFeeder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokener.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Missing or invalid token"})
			return
		}
		claims, err := tokener.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Missing or invalid token"})
			return
		}

		notificationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Malformed notification id"})
			return
		}

		if err := svc.MarkRead(r.Context(), notificationID, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotificationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Notification not found"})
			default:
				logger.Log.Errorw("internal server error", "notification_id", notificationID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MarkNotificationReadResponse{Message: "Notification marked as read"})
	}
}

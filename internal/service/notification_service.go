package service

import (
	"context"
	"log/slog"

	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/observability"
	"focal/internal/repository"
)

type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Create inserts an unread notification record.
func (s *NotificationService) Create(ctx context.Context, userID uint, typ models.NotificationType, referenceID uint) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:      userID,
		Type:        typ,
		ReferenceID: referenceID,
		Read:        false,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	observability.NotificationsCreated.WithLabelValues(string(typ)).Inc()
	return notification, nil
}

// Notify is the best-effort fan-out used by like/comment/follow actions.
// A failed insert is logged and never fails the triggering action.
func (s *NotificationService) Notify(ctx context.Context, userID uint, typ models.NotificationType, referenceID uint) {
	if _, err := s.Create(ctx, userID, typ, referenceID); err != nil {
		middleware.Logger.WarnContext(ctx, "notification fan-out failed",
			slog.String("type", string(typ)),
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}

// MarkRead marks one of the user's notifications read. Unknown ids are a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id uint) error {
	return s.notificationRepo.MarkRead(ctx, userID, id)
}

// MarkAllRead marks all of the user's notifications read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

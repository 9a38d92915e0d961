package services

import (
	"context"
	"time"

	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/pkg/apperrors"
)

type NotificationService struct {
	notifications *repositories.NotificationRepository
}

func NewNotificationService(notifications *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	all, err := s.notifications.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "notification", "Failed to fetch notifications")
	}
	sortNewestFirst(all, func(n *models.Notification) time.Time { return n.CreatedAt })
	return all, nil
}

func (s *NotificationService) ListAdmin(ctx context.Context) ([]models.Notification, error) {
	all, err := s.notifications.ListAdmin(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "notification", "Failed to fetch notifications")
	}
	sortNewestFirst(all, func(n *models.Notification) time.Time { return n.CreatedAt })
	return all, nil
}

// PurgeOlderThan drops notifications created before now-age.
func (s *NotificationService) PurgeOlderThan(ctx context.Context, age time.Duration) (int, error) {
	return s.notifications.DeleteOlderThan(ctx, time.Now().Add(-age))
}

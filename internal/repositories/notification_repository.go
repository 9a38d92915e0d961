package repositories

import (
	"context"
	"time"

	"letify_backend/internal/kvstore"
	"letify_backend/internal/models"
)

// NotificationRepository keeps admin notifications under admin_notification_
// and user notifications under notification_<userId>_.
type NotificationRepository struct {
	admin *Repository[models.Notification]
	user  *Repository[models.Notification]
}

func NewNotificationRepository(store kvstore.Store) *NotificationRepository {
	return &NotificationRepository{
		admin: NewRepository[models.Notification](store, models.PrefixAdminNotification),
		user:  NewRepository[models.Notification](store, models.PrefixUserNotification),
	}
}

func (r *NotificationRepository) CreateAdmin(ctx context.Context, title, body string) (*models.Notification, error) {
	now := models.Now()
	n := &models.Notification{
		ID:        models.NewID(models.PrefixAdminNotification, now),
		Title:     title,
		Body:      body,
		CreatedAt: now,
	}
	if err := r.admin.Put(ctx, n.ID, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NotificationRepository) CreateForUser(ctx context.Context, userID, title, body string) (*models.Notification, error) {
	now := models.Now()
	n := &models.Notification{
		ID:        models.NewID(models.UserNotificationPrefix(userID), now),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: now,
	}
	if err := r.user.Put(ctx, n.ID, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NotificationRepository) ListAdmin(ctx context.Context) ([]models.Notification, error) {
	return r.admin.List(ctx)
}

// ListForUser scans the user's key prefix and keeps only records owned by
// userID. The prefix of "u" also covers keys of "u_1".
func (r *NotificationRepository) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	all, err := r.user.ListPrefix(ctx, models.UserNotificationPrefix(userID))
	if err != nil {
		return nil, err
	}
	mine := all[:0]
	for _, n := range all {
		if n.UserID == userID {
			mine = append(mine, n)
		}
	}
	return mine, nil
}

// DeleteOlderThan removes admin and user notifications created before cutoff
// and returns how many were removed.
func (r *NotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0
	for _, repo := range []*Repository[models.Notification]{r.admin, r.user} {
		all, err := repo.List(ctx)
		if err != nil {
			return removed, err
		}
		for _, n := range all {
			if !n.CreatedAt.Before(cutoff) {
				continue
			}
			if err := repo.Delete(ctx, n.ID); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"letify_backend/internal/auth"
	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

// MessageService keeps one thread per user between the user and the office.
type MessageService struct {
	messages *repositories.Repository[models.Message]
	profiles *repositories.Repository[models.Profile]
	notifier *Notifier
}

func NewMessageService(
	messages *repositories.Repository[models.Message],
	profiles *repositories.Repository[models.Profile],
	notifier *Notifier,
) *MessageService {
	return &MessageService{messages: messages, profiles: profiles, notifier: notifier}
}

func (s *MessageService) SendFromUser(ctx context.Context, caller *auth.Identity, req *dto.UserMessageRequest) (*models.Message, error) {
	now := models.Now()
	m := &models.Message{
		ID:        models.NewID(models.MessageThreadPrefix(caller.ID), now),
		UserID:    caller.ID,
		Email:     caller.Email,
		From:      models.MessageFromUser,
		Content:   req.Content,
		CreatedAt: now,
	}

	if err := s.messages.Put(ctx, m.ID, m); err != nil {
		return nil, apperrors.OperationFailed(err, "message", "Failed to send message")
	}

	body := fmt.Sprintf("%s: %s", m.Email, excerpt(m.Content, 120))
	if err := s.notifier.NotifyAdmin(ctx, "New Message", body); err != nil {
		return nil, apperrors.OperationFailed(err, "message", "Failed to send message")
	}

	s.notifier.EmailOffice(ctx, "New message from "+m.Email, "user_message", m)
	return m, nil
}

// SendFromAdmin writes to the user's thread. The email goes to req.Email,
// or to the address on the user's profile when none is given.
func (s *MessageService) SendFromAdmin(ctx context.Context, req *dto.AdminMessageRequest) (*models.Message, error) {
	to := req.Email
	if to == "" {
		if p, err := s.profiles.Get(ctx, models.ProfileKey(req.UserID)); err == nil {
			to = p.Email
		}
	}

	now := models.Now()
	m := &models.Message{
		ID:        models.NewID(models.MessageThreadPrefix(req.UserID), now),
		UserID:    req.UserID,
		Email:     to,
		From:      models.MessageFromAdmin,
		Content:   req.Content,
		CreatedAt: now,
	}

	if err := s.messages.Put(ctx, m.ID, m); err != nil {
		return nil, apperrors.OperationFailed(err, "message", "Failed to send message")
	}

	if err := s.notifier.NotifyUser(ctx, m.UserID, "New message from Letify Realty", excerpt(m.Content, 120)); err != nil {
		return nil, apperrors.OperationFailed(err, "message", "Failed to send message")
	}

	s.notifier.EmailTo(ctx, []string{to}, "New message from Letify Realty", "admin_message", m)
	return m, nil
}

// ListThread returns one user's thread, oldest first.
func (s *MessageService) ListThread(ctx context.Context, userID string) ([]models.Message, error) {
	all, err := s.messages.ListPrefix(ctx, models.MessageThreadPrefix(userID))
	if err != nil {
		return nil, apperrors.OperationFailed(err, "message", "Failed to fetch messages")
	}
	// the prefix of "u" also covers the thread of "u_1"
	msgs := make([]models.Message, 0, len(all))
	for _, m := range all {
		if m.UserID == userID {
			msgs = append(msgs, m)
		}
	}
	sortOldestFirst(msgs)
	return msgs, nil
}

// ListAll returns every thread's messages, newest first.
func (s *MessageService) ListAll(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "message", "Failed to fetch messages")
	}
	sortNewestFirst(msgs, func(m *models.Message) time.Time { return m.CreatedAt })
	return msgs, nil
}

func sortOldestFirst(msgs []models.Message) {
	sortNewestFirst(msgs, func(m *models.Message) time.Time { return m.CreatedAt })
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}

package services

import (
	"context"
	"time"

	"letify_backend/internal/email"
	"letify_backend/internal/logger"
	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

// MailingService manages interest-based mailing lists and broadcasts to them.
type MailingService struct {
	lists    *repositories.Repository[models.MailingList]
	profiles *repositories.Repository[models.Profile]
	notifier *Notifier
}

func NewMailingService(
	lists *repositories.Repository[models.MailingList],
	profiles *repositories.Repository[models.Profile],
	notifier *Notifier,
) *MailingService {
	return &MailingService{lists: lists, profiles: profiles, notifier: notifier}
}

func (s *MailingService) Create(ctx context.Context, req *dto.CreateMailingListRequest) (*models.MailingList, error) {
	now := models.Now()
	list := &models.MailingList{
		ID:        models.NewID(models.PrefixMailingList, now),
		Name:      req.Name,
		Category:  models.MailingCategory(req.Category),
		Interests: req.Interests,
		CreatedAt: now,
	}
	if err := s.lists.Put(ctx, list.ID, list); err != nil {
		return nil, apperrors.OperationFailed(err, "mailing", "Failed to create mailing list")
	}
	return list, nil
}

func (s *MailingService) List(ctx context.Context) ([]models.MailingList, error) {
	all, err := s.lists.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "mailing", "Failed to fetch mailing lists")
	}
	sortNewestFirst(all, func(l *models.MailingList) time.Time { return l.CreatedAt })
	return all, nil
}

// Recipients scans every profile and keeps those sharing an interest with the list.
func (s *MailingService) Recipients(ctx context.Context, list *models.MailingList) ([]models.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Profile, 0)
	for i := range profiles {
		if list.Matches(&profiles[i]) {
			matched = append(matched, profiles[i])
		}
	}
	return matched, nil
}

// Send writes one notification per matching profile and emails all of them.
// Nothing records that a send happened, so sending twice mails everyone twice.
func (s *MailingService) Send(ctx context.Context, listID string, req *dto.SendMailingRequest) (int, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return 0, notFoundOr(err, apperrors.ErrMailingListNotFound, "mailing", "Failed to send mailing")
	}

	recipients, err := s.Recipients(ctx, list)
	if err != nil {
		return 0, apperrors.OperationFailed(err, "mailing", "Failed to send mailing")
	}
	if len(recipients) == 0 {
		return 0, apperrors.ErrNoMatchingRecipients
	}

	addresses := make([]string, 0, len(recipients))
	for _, p := range recipients {
		if err := s.notifier.NotifyUser(ctx, p.UserID, req.Subject, req.Body); err != nil {
			return 0, apperrors.OperationFailed(err, "mailing", "Failed to send mailing")
		}
		addresses = append(addresses, p.Email)
	}

	s.notifier.EmailBroadcast(ctx, addresses, req.Subject, "mailing_broadcast", email.TemplateData{
		"Subject": req.Subject,
		"Body":    req.Body,
	})

	logger.CtxInfo(ctx, "mailing list sent", "list_id", list.ID, "recipients", len(recipients))
	return len(recipients), nil
}

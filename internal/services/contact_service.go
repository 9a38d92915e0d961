package services

import (
	"context"
	"fmt"
	"time"

	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

type ContactService struct {
	contacts *repositories.Repository[models.ContactInquiry]
	notifier *Notifier
}

func NewContactService(contacts *repositories.Repository[models.ContactInquiry], notifier *Notifier) *ContactService {
	return &ContactService{contacts: contacts, notifier: notifier}
}

func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.ContactInquiry, error) {
	now := models.Now()
	inquiry := &models.ContactInquiry{
		ID:        models.NewID(models.PrefixContactInquiry, now),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Status:    models.StatusNew,
		CreatedAt: now,
	}

	if err := s.contacts.Put(ctx, inquiry.ID, inquiry); err != nil {
		return nil, apperrors.OperationFailed(err, "contact", "Failed to submit inquiry")
	}

	body := fmt.Sprintf("%s (%s) sent a message: %s", inquiry.Name, inquiry.Email, excerpt(inquiry.Message, 120))
	if err := s.notifier.NotifyAdmin(ctx, "New Contact Inquiry", body); err != nil {
		return nil, apperrors.OperationFailed(err, "contact", "Failed to submit inquiry")
	}

	s.notifier.EmailOffice(ctx, "New Contact Inquiry from "+inquiry.Name, "contact_inquiry", inquiry)
	return inquiry, nil
}

func (s *ContactService) ListAll(ctx context.Context) ([]models.ContactInquiry, error) {
	all, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "contact", "Failed to fetch inquiries")
	}
	sortNewestFirst(all, func(i *models.ContactInquiry) time.Time { return i.CreatedAt })
	return all, nil
}

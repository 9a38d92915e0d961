package services

import (
	"context"
	"fmt"
	"time"

	"letify_backend/internal/email"
	"letify_backend/internal/logger"
	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

// InquiryService handles inquiries about a specific property.
type InquiryService struct {
	inquiries  *repositories.Repository[models.PropertyInquiry]
	properties *repositories.Repository[models.Property]
	notifier   *Notifier
}

func NewInquiryService(
	inquiries *repositories.Repository[models.PropertyInquiry],
	properties *repositories.Repository[models.Property],
	notifier *Notifier,
) *InquiryService {
	return &InquiryService{inquiries: inquiries, properties: properties, notifier: notifier}
}

func (s *InquiryService) Submit(ctx context.Context, req *dto.PropertyInquiryRequest) (*models.PropertyInquiry, error) {
	now := models.Now()
	inquiry := &models.PropertyInquiry{
		ID:         models.NewID(models.PrefixPropertyInquiry, now),
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Status:     models.StatusNew,
		CreatedAt:  now,
	}

	if err := s.inquiries.Put(ctx, inquiry.ID, inquiry); err != nil {
		return nil, apperrors.OperationFailed(err, "inquiry", "Failed to submit inquiry")
	}

	title, location, price := "Unknown Property", "N/A", "N/A"
	if p, err := s.properties.Get(ctx, inquiry.PropertyID); err == nil {
		title, location, price = p.Title, p.Location, p.Price
	} else {
		logger.CtxDebug(ctx, "inquiry references unknown property", "property_id", inquiry.PropertyID)
	}

	body := fmt.Sprintf("%s (%s) asked about %s", inquiry.Name, inquiry.Email, title)
	if err := s.notifier.NotifyAdmin(ctx, "New Property Inquiry", body); err != nil {
		return nil, apperrors.OperationFailed(err, "inquiry", "Failed to submit inquiry")
	}

	s.notifier.EmailOffice(ctx, "Property Inquiry: "+title, "property_inquiry", email.TemplateData{
		"ID":               inquiry.ID,
		"PropertyTitle":    title,
		"PropertyLocation": location,
		"PropertyPrice":    price,
		"Name":             inquiry.Name,
		"Email":            inquiry.Email,
		"Phone":            inquiry.Phone,
		"Message":          inquiry.Message,
	})
	return inquiry, nil
}

func (s *InquiryService) ListAll(ctx context.Context) ([]models.PropertyInquiry, error) {
	all, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "inquiry", "Failed to fetch inquiries")
	}
	sortNewestFirst(all, func(i *models.PropertyInquiry) time.Time { return i.CreatedAt })
	return all, nil
}

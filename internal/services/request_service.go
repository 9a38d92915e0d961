package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"letify_backend/internal/auth"
	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

// RequestService handles service and purchase requests from signed-in users.
type RequestService struct {
	requests *repositories.Repository[models.ServiceRequest]
	notifier *Notifier
}

func NewRequestService(requests *repositories.Repository[models.ServiceRequest], notifier *Notifier) *RequestService {
	return &RequestService{requests: requests, notifier: notifier}
}

func (s *RequestService) Create(ctx context.Context, caller *auth.Identity, req *dto.ServiceRequestRequest) (*models.ServiceRequest, error) {
	now := models.Now()
	r := &models.ServiceRequest{
		ID:           models.NewID(models.PrefixRequest, now),
		UserID:       caller.ID,
		Email:        caller.Email,
		PropertyID:   req.PropertyID,
		RequestType:  models.RequestType(req.RequestType),
		ServiceType:  req.ServiceType,
		PropertyType: req.PropertyType,
		Budget:       req.Budget,
		Message:      req.Message,
		Status:       models.StatusPending,
		CreatedAt:    now,
	}

	if err := s.requests.Put(ctx, r.ID, r); err != nil {
		return nil, apperrors.OperationFailed(err, "request", "Failed to submit request")
	}

	kind := capitalize(string(r.RequestType))
	adminBody := fmt.Sprintf("%s submitted a %s request (%s)", r.Email, r.RequestType, r.ServiceType)
	if err := s.notifier.NotifyAdmin(ctx, fmt.Sprintf("New %s Request", kind), adminBody); err != nil {
		return nil, apperrors.OperationFailed(err, "request", "Failed to submit request")
	}
	userBody := fmt.Sprintf("We received your %s request for %s and will get back to you shortly.", r.RequestType, r.ServiceType)
	if err := s.notifier.NotifyUser(ctx, r.UserID, "Request received", userBody); err != nil {
		return nil, apperrors.OperationFailed(err, "request", "Failed to submit request")
	}

	s.notifier.EmailOffice(ctx, fmt.Sprintf("New %s request from %s", r.RequestType, r.Email), "service_request", r)
	return r, nil
}

// ListMine returns the caller's requests, newest first.
func (s *RequestService) ListMine(ctx context.Context, userID string) ([]models.ServiceRequest, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "request", "Failed to fetch requests")
	}

	mine := make([]models.ServiceRequest, 0)
	for _, r := range all {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	sortNewestFirst(mine, func(r *models.ServiceRequest) time.Time { return r.CreatedAt })
	return mine, nil
}

func (s *RequestService) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "request", "Failed to fetch requests")
	}
	sortNewestFirst(all, func(r *models.ServiceRequest) time.Time { return r.CreatedAt })
	return all, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

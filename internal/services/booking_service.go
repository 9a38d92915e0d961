package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"letify_backend/internal/email"
	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

const (
	defaultLeaseTerm     = "12 months"
	defaultPaymentMethod = "Card"
	defaultTopic         = "Property Consultation"
)

// BookingService covers reservations, inspections and consultations.
type BookingService struct {
	reservations  *repositories.Repository[models.Reservation]
	inspections   *repositories.Repository[models.InspectionBooking]
	consultations *repositories.Repository[models.ConsultationRequest]
	properties    *repositories.Repository[models.Property]
	notifier      *Notifier
}

func NewBookingService(repos *repositories.Container, notifier *Notifier) *BookingService {
	return &BookingService{
		reservations:  repos.Reservations,
		inspections:   repos.Inspections,
		consultations: repos.Consultations,
		properties:    repos.Properties,
		notifier:      notifier,
	}
}

// snapshot fills title and type from the stored property when the caller
// did not send them. The copy is never refreshed afterwards.
func (s *BookingService) snapshot(ctx context.Context, propertyID, title, propType string) (string, string) {
	if propertyID == "" || (title != "" && propType != "") {
		return title, propType
	}
	p, err := s.properties.Get(ctx, propertyID)
	if err != nil {
		return title, propType
	}
	return orDefault(title, p.Title), orDefault(propType, string(p.Type))
}

// CreateReservation stores the request as sent. Dates are not checked
// against each other.
func (s *BookingService) CreateReservation(ctx context.Context, req *dto.ReservationRequest) (*models.Reservation, error) {
	now := models.Now()
	title, propType := s.snapshot(ctx, req.PropertyID, req.PropertyTitle, req.PropertyType)
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	r := &models.Reservation{
		ID:            models.NewID(models.PrefixReservation, now),
		PropertyID:    req.PropertyID,
		PropertyTitle: title,
		PropertyType:  propType,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		MoveIn:        req.MoveIn,
		Guests:        guests,
		LeaseTerm:     orDefault(req.LeaseTerm, defaultLeaseTerm),
		Notes:         req.Notes,
		PaymentMethod: orDefault(req.PaymentMethod, defaultPaymentMethod),
		Status:        models.StatusPending,
		CreatedAt:     now,
	}

	if err := s.reservations.Put(ctx, r.ID, r); err != nil {
		return nil, apperrors.OperationFailed(err, "reservation", "Failed to create reservation")
	}

	body := fmt.Sprintf("%s requested a reservation for %s", r.Name, orDefault(r.PropertyTitle, r.PropertyID))
	if err := s.notifier.NotifyAdmin(ctx, "New Reservation", body); err != nil {
		return nil, apperrors.OperationFailed(err, "reservation", "Failed to create reservation")
	}

	s.notifier.EmailOffice(ctx, "New Reservation: "+orDefault(r.PropertyTitle, "Unknown Property"), "reservation", r)
	return r, nil
}

func (s *BookingService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	all, err := s.reservations.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "reservation", "Failed to fetch reservations")
	}
	sortNewestFirst(all, func(r *models.Reservation) time.Time { return r.CreatedAt })
	return all, nil
}

func (s *BookingService) CreateInspection(ctx context.Context, req *dto.InspectionRequest) (*models.InspectionBooking, error) {
	now := models.Now()
	title, propType := s.snapshot(ctx, req.PropertyID, req.PropertyTitle, req.PropertyType)

	b := &models.InspectionBooking{
		ID:            models.NewID(models.PrefixInspection, now),
		PropertyID:    req.PropertyID,
		PropertyTitle: title,
		PropertyType:  propType,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.inspections.Put(ctx, b.ID, b); err != nil {
		return nil, apperrors.OperationFailed(err, "inspection", "Failed to book inspection")
	}

	body := fmt.Sprintf("%s wants to inspect %s on %s", b.Name, orDefault(b.PropertyTitle, b.PropertyID), b.PreferredDate)
	if err := s.notifier.NotifyAdmin(ctx, "New Inspection Booking", body); err != nil {
		return nil, apperrors.OperationFailed(err, "inspection", "Failed to book inspection")
	}

	s.notifier.EmailOffice(ctx, "New Inspection Booking: "+orDefault(b.PropertyTitle, "Unknown Property"), "inspection", b)
	return b, nil
}

func (s *BookingService) ListInspections(ctx context.Context) ([]models.InspectionBooking, error) {
	all, err := s.inspections.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "inspection", "Failed to fetch inspections")
	}
	sortNewestFirst(all, func(b *models.InspectionBooking) time.Time { return b.CreatedAt })
	return all, nil
}

// UpdateInspection merges status and confirmed slot, then emails the requester.
// No in-app notification is written for this transition.
func (s *BookingService) UpdateInspection(ctx context.Context, id string, req *dto.BookingUpdateRequest) (*models.InspectionBooking, error) {
	b, err := s.inspections.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrInspectionNotFound, "inspection", "Failed to update inspection")
	}

	mergeBookingUpdate(req, &b.Status, &b.ConfirmedDate, &b.ConfirmedTime)
	b.UpdatedAt = models.Now()

	if err := s.inspections.Put(ctx, b.ID, b); err != nil {
		return nil, apperrors.OperationFailed(err, "inspection", "Failed to update inspection")
	}

	s.emailStatus(ctx, "inspection", b.Email, b.Name, b.PropertyTitle, b.Status, b.ConfirmedDate, b.ConfirmedTime)
	return b, nil
}

func (s *BookingService) CreateConsultation(ctx context.Context, req *dto.ConsultationRequest) (*models.ConsultationRequest, error) {
	now := models.Now()
	title, propType := s.snapshot(ctx, req.PropertyID, req.PropertyTitle, req.PropertyType)

	c := &models.ConsultationRequest{
		ID:            models.NewID(models.PrefixConsultation, now),
		PropertyID:    req.PropertyID,
		PropertyTitle: title,
		PropertyType:  propType,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Date:          req.Date,
		Time:          req.Time,
		Topic:         orDefault(req.Topic, defaultTopic),
		Notes:         req.Notes,
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.consultations.Put(ctx, c.ID, c); err != nil {
		return nil, apperrors.OperationFailed(err, "consultation", "Failed to request consultation")
	}

	body := fmt.Sprintf("%s requested a consultation (%s) on %s", c.Name, c.Topic, c.Date)
	if err := s.notifier.NotifyAdmin(ctx, "New Consultation Request", body); err != nil {
		return nil, apperrors.OperationFailed(err, "consultation", "Failed to request consultation")
	}

	s.notifier.EmailOffice(ctx, "New Consultation Request from "+c.Name, "consultation", c)
	return c, nil
}

func (s *BookingService) ListConsultations(ctx context.Context) ([]models.ConsultationRequest, error) {
	all, err := s.consultations.List(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "consultation", "Failed to fetch consultations")
	}
	sortNewestFirst(all, func(c *models.ConsultationRequest) time.Time { return c.CreatedAt })
	return all, nil
}

func (s *BookingService) UpdateConsultation(ctx context.Context, id string, req *dto.BookingUpdateRequest) (*models.ConsultationRequest, error) {
	c, err := s.consultations.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrConsultationNotFound, "consultation", "Failed to update consultation")
	}

	mergeBookingUpdate(req, &c.Status, &c.ConfirmedDate, &c.ConfirmedTime)
	c.UpdatedAt = models.Now()

	if err := s.consultations.Put(ctx, c.ID, c); err != nil {
		return nil, apperrors.OperationFailed(err, "consultation", "Failed to update consultation")
	}

	s.emailStatus(ctx, "consultation", c.Email, c.Name, c.PropertyTitle, c.Status, c.ConfirmedDate, c.ConfirmedTime)
	return c, nil
}

// mergeBookingUpdate keeps the stored value of every omitted field.
// An empty string counts as omitted.
func mergeBookingUpdate(req *dto.BookingUpdateRequest, status *models.RecordStatus, date, tm *string) {
	if v := nonBlank(req.Status); v != "" {
		*status = models.RecordStatus(v)
	}
	if v := nonBlank(req.ConfirmedDate); v != "" {
		*date = v
	}
	if v := nonBlank(req.ConfirmedTime); v != "" {
		*tm = v
	}
}

func nonBlank(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func (s *BookingService) emailStatus(ctx context.Context, kind, to, name, propertyTitle string, status models.RecordStatus, date, tm string) {
	s.notifier.EmailTo(ctx, []string{to}, fmt.Sprintf("Your %s request is %s", kind, status), "booking_status", email.TemplateData{
		"Kind":          kind,
		"Name":          name,
		"PropertyTitle": propertyTitle,
		"Status":        string(status),
		"ConfirmedDate": date,
		"ConfirmedTime": tm,
	})
}

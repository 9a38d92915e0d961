package services

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"letify_backend/internal/repositories"
	"letify_backend/pkg/apperrors"
)

// ClientRow is one line of the client export.
type ClientRow struct {
	Source    string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

var clientCSVHeader = []string{"Source", "Name", "Email", "Phone", "Message", "Created At"}

// ExportService flattens every inbound contact record into one client list.
type ExportService struct {
	repos *repositories.Container
}

func NewExportService(repos *repositories.Container) *ExportService {
	return &ExportService{repos: repos}
}

// ClientRows lists contact inquiries, property inquiries, service requests,
// inspection bookings and consultation requests, newest first.
func (s *ExportService) ClientRows(ctx context.Context) ([]ClientRow, error) {
	var rows []ClientRow

	contacts, err := s.repos.Contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range contacts {
		rows = append(rows, ClientRow{"Contact", c.Name, c.Email, c.Phone, c.Message, c.CreatedAt})
	}

	inquiries, err := s.repos.PropertyInquiries.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, i := range inquiries {
		rows = append(rows, ClientRow{"Property Inquiry", i.Name, i.Email, i.Phone, i.Message, i.CreatedAt})
	}

	requests, err := s.repos.Requests.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range requests {
		msg := joinFields(string(r.RequestType), r.ServiceType, r.PropertyType, r.Message)
		rows = append(rows, ClientRow{"Service Request", "", r.Email, "", msg, r.CreatedAt})
	}

	inspections, err := s.repos.Inspections.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range inspections {
		msg := joinFields(orDefault(b.PropertyTitle, b.PropertyID), slot(b.PreferredDate, b.PreferredTime), string(b.Status))
		rows = append(rows, ClientRow{"Inspection Booking", b.Name, b.Email, b.Phone, msg, b.CreatedAt})
	}

	consultations, err := s.repos.Consultations.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range consultations {
		msg := joinFields(orDefault(c.Topic, "Consultation"), slot(c.Date, c.Time), string(c.Status))
		rows = append(rows, ClientRow{"Consultation Request", c.Name, c.Email, c.Phone, msg, c.CreatedAt})
	}

	sortNewestFirst(rows, func(r *ClientRow) time.Time { return r.CreatedAt })
	return rows, nil
}

// WriteClientsCSV writes the header and every client row to w.
func (s *ExportService) WriteClientsCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.ClientRows(ctx)
	if err != nil {
		return apperrors.OperationFailed(err, "export", "Failed to export clients")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(clientCSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Source, r.Name, r.Email, r.Phone, r.Message, r.CreatedAt.Format(time.RFC3339)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinFields(parts ...string) string {
	return strings.Join(parts, " | ")
}

func slot(date, tm string) string {
	return strings.TrimSpace(date + " " + tm)
}

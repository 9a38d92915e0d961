package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"testing"
	"time"

	"letify_backend/internal/auth"
	"letify_backend/internal/email"
	"letify_backend/internal/kvstore"
	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const office = "info@letifyrealty.com"

type fixture struct {
	store    *kvstore.MemoryStore
	repos    *repositories.Container
	mail     *email.MockProvider
	services *ServiceContainer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repos := repositories.NewContainer(store)
	mail := email.NewMockProvider()
	templates, err := email.NewDefaultTemplateManager()
	require.NoError(t, err)

	notifier := NewNotifier(repos.Notifications, NewMailDispatcher(mail, false, 1, time.Second), templates, office)
	return &fixture{
		store:    store,
		repos:    repos,
		mail:     mail,
		services: NewServiceContainer(repos, notifier, NewProfileDirectory(repos.Profiles)),
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func saveProfile(t *testing.T, f *fixture, id, addr string, propertyTypes ...string) {
	t.Helper()
	_, err := f.services.ProfileService.Save(context.Background(), &auth.Identity{ID: id, Email: addr}, &dto.ProfileRequest{
		FullName:  "User " + id,
		Age:       intPtr(30),
		Interests: dto.InterestsPayload{PropertyTypes: propertyTypes},
	})
	require.NoError(t, err)
}

func TestContactService_Submit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.services.ContactService.Submit(ctx, &dto.ContactRequest{
		Name: "Ada", Email: "ada@example.com", Phone: "0800", Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, c.Status)
	assert.Contains(t, c.ID, models.PrefixContactInquiry)

	admin, err := f.services.NotificationService.ListAdmin(ctx)
	require.NoError(t, err)
	assert.Len(t, admin, 1)

	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{office}, sent[0].To)
}

func TestContactService_EmailFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture(t)
	f.mail.Err = errors.New("provider down")

	_, err := f.services.ContactService.Submit(context.Background(), &dto.ContactRequest{
		Name: "Ada", Email: "ada@example.com", Phone: "0800", Message: "Hello",
	})
	require.NoError(t, err)

	all, err := f.services.ContactService.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPropertyService_FilterByType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.services.PropertyService.Create(ctx, &dto.CreatePropertyRequest{
		Title: "Test Villa", Location: "Lekki", Price: "₦50,000,000", Type: "Sale",
	})
	require.NoError(t, err)

	sale, err := f.services.PropertyService.List(ctx, dto.PropertyFilter{Type: "sale"})
	require.NoError(t, err)
	assert.Len(t, sale, 1)

	rent, err := f.services.PropertyService.List(ctx, dto.PropertyFilter{Type: "rent"})
	require.NoError(t, err)
	assert.Empty(t, rent)

	min := 60000000.0
	expensive, err := f.services.PropertyService.List(ctx, dto.PropertyFilter{MinPrice: &min})
	require.NoError(t, err)
	assert.Empty(t, expensive)
}

func TestPropertyService_UpdateMergesAndDelete404(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.services.PropertyService.Create(ctx, &dto.CreatePropertyRequest{
		Title: "Test Villa", Location: "Lekki", Price: "₦50,000,000", Type: "Sale", Bedrooms: 4,
	})
	require.NoError(t, err)

	updated, err := f.services.PropertyService.Update(ctx, p.ID, &dto.UpdatePropertyRequest{Title: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Lekki", updated.Location)
	assert.Equal(t, 4, updated.Bedrooms)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)

	require.NoError(t, f.services.PropertyService.Delete(ctx, p.ID))

	err = f.services.PropertyService.Delete(ctx, p.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	_, err = f.services.PropertyService.Get(ctx, p.ID)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestBookingService_UpdateInspectionMergesAndEmailsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.services.BookingService.CreateInspection(ctx, &dto.InspectionRequest{
		PropertyID: "property_1", PropertyTitle: "Test Villa", Name: "Ada",
		Email: "ada@example.com", Phone: "0800", PreferredDate: "2026-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)

	f.mail.Reset()
	before, err := f.services.NotificationService.ListAdmin(ctx)
	require.NoError(t, err)

	updated, err := f.services.BookingService.UpdateInspection(ctx, b.ID, &dto.BookingUpdateRequest{
		Status:        strPtr("confirmed"),
		ConfirmedDate: strPtr("2026-01-12"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "2026-01-12", updated.ConfirmedDate)
	assert.Equal(t, "Test Villa", updated.PropertyTitle)
	assert.Equal(t, "2026-01-10", updated.PreferredDate)

	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ada@example.com"}, sent[0].To)

	after, err := f.services.NotificationService.ListAdmin(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	_, err = f.services.BookingService.UpdateInspection(ctx, "inspection_missing", &dto.BookingUpdateRequest{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestBookingService_ReservationDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.services.PropertyService.Create(ctx, &dto.CreatePropertyRequest{
		Title: "Luxury Apartment", Location: "Victoria Island", Price: "₦3,500,000/yr", Type: "Rent",
	})
	require.NoError(t, err)

	r, err := f.services.BookingService.CreateReservation(ctx, &dto.ReservationRequest{
		PropertyID: p.ID, Name: "Ada", Email: "ada@example.com", Phone: "0800",
		CheckIn: "2026-02-10", CheckOut: "2026-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Guests)
	assert.Equal(t, "Luxury Apartment", r.PropertyTitle)
	assert.Equal(t, "Rent", r.PropertyType)
	assert.Equal(t, models.StatusPending, r.Status)
}

func TestMailingService_SendFansOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saveProfile(t, f, "u1", "u1@example.com", "Rent")
	saveProfile(t, f, "u2", "u2@example.com", "rent", "Sale")
	saveProfile(t, f, "u3", "u3@example.com", "Sale")

	list, err := f.services.MailingService.Create(ctx, &dto.CreateMailingListRequest{
		Name: "Renters", Category: "property", Interests: []string{"Rent"},
	})
	require.NoError(t, err)

	f.mail.Reset()
	n, err := f.services.MailingService.Send(ctx, list.ID, &dto.SendMailingRequest{Subject: "New rentals", Body: "See them"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{"u1", "u2"} {
		notes, err := f.services.NotificationService.ListForUser(ctx, id)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "New rentals", notes[0].Title)
	}
	notes, err := f.services.NotificationService.ListForUser(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, notes)

	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{office}, sent[0].To)
	assert.ElementsMatch(t, []string{"u1@example.com", "u2@example.com"}, sent[0].Bcc)
}

func TestMailingService_NoRecipients(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saveProfile(t, f, "u1", "u1@example.com", "Sale")
	list, err := f.services.MailingService.Create(ctx, &dto.CreateMailingListRequest{
		Name: "Airbnb", Category: "property", Interests: []string{"Airbnb"},
	})
	require.NoError(t, err)

	f.mail.Reset()
	n, err := f.services.MailingService.Send(ctx, list.ID, &dto.SendMailingRequest{Subject: "s", Body: "b"})
	assert.Equal(t, 0, n)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNoRecipients))
	assert.Empty(t, f.mail.Sent())

	notes, err := f.services.NotificationService.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, notes)

	_, err = f.services.MailingService.Send(ctx, "mailing_list_missing", &dto.SendMailingRequest{Subject: "s", Body: "b"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestMailingService_BatchesLargeSends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 120; i++ {
		id := fmt.Sprintf("u%03d", i)
		saveProfile(t, f, id, id+"@example.com", "Sale")
	}
	list, err := f.services.MailingService.Create(ctx, &dto.CreateMailingListRequest{
		Name: "Buyers", Category: "property", Interests: []string{"Sale"},
	})
	require.NoError(t, err)

	f.mail.Reset()
	n, err := f.services.MailingService.Send(ctx, list.ID, &dto.SendMailingRequest{Subject: "s", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, 120, n)

	sent := f.mail.Sent()
	require.Len(t, sent, 3)
	for _, e := range sent {
		assert.Equal(t, []string{office}, e.To)
		assert.LessOrEqual(t, len(e.To)+len(e.Bcc), 50)
	}
	assert.Len(t, sent[0].Bcc, 49)
	assert.Len(t, sent[1].Bcc, 49)
	assert.Len(t, sent[2].Bcc, 22)
}

func TestProfileService_SaveAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.services.ProfileService.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p)

	saveProfile(t, f, "u1", "u1@example.com", "Rent")
	saveProfile(t, f, "u1", "u1@example.com")

	p, err = f.services.ProfileService.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "u1@example.com", p.Email)
	assert.Empty(t, p.Interests.PropertyTypes)

	users, err := f.services.UserService.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []auth.Identity{{ID: "u1", Email: "u1@example.com"}}, users)
}

func TestRequestService_CreateNotifiesBothSides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	caller := &auth.Identity{ID: "u1", Email: "u1@example.com"}

	r, err := f.services.RequestService.Create(ctx, caller, &dto.ServiceRequestRequest{
		RequestType: "service", ServiceType: "Property Management", PropertyType: "Rent", Message: "Help",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", r.UserID)
	assert.Equal(t, models.StatusPending, r.Status)

	mine, err := f.services.RequestService.ListMine(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := f.services.RequestService.ListMine(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, others)

	notes, err := f.services.NotificationService.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Request received", notes[0].Title)
}

func TestMessageService_ThreadOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	caller := &auth.Identity{ID: "u1", Email: "u1@example.com"}

	_, err := f.services.MessageService.SendFromUser(ctx, caller, &dto.UserMessageRequest{Content: "first"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = f.services.MessageService.SendFromAdmin(ctx, &dto.AdminMessageRequest{UserID: "u1", Email: "u1@example.com", Content: "second"})
	require.NoError(t, err)

	thread, err := f.services.MessageService.ListThread(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "first", thread[0].Content)
	assert.Equal(t, models.MessageFromAdmin, thread[1].From)

	other, err := f.services.MessageService.ListThread(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestNotificationService_Purge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, kvstore.SetJSON(ctx, f.store, "admin_notification_old", &models.Notification{
		ID: "admin_notification_old", Title: "old", CreatedAt: time.Now().Add(-48 * time.Hour),
	}))
	_, err := f.repos.Notifications.CreateAdmin(ctx, "fresh", "body")
	require.NoError(t, err)

	n, err := f.services.NotificationService.PurgeOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	left, err := f.services.NotificationService.ListAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh", left[0].Title)
}

func TestExportService_WriteClientsCSV(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.services.ContactService.Submit(ctx, &dto.ContactRequest{
		Name: "Ada", Email: "ada@example.com", Phone: "0800", Message: "Hello, world",
	})
	require.NoError(t, err)
	_, err = f.services.RequestService.Create(ctx, &auth.Identity{ID: "u1", Email: "u1@example.com"}, &dto.ServiceRequestRequest{
		RequestType: "service", ServiceType: "Property Management", PropertyType: "Rent", Message: "Manage my flat",
	})
	require.NoError(t, err)
	_, err = f.services.BookingService.CreateInspection(ctx, &dto.InspectionRequest{
		PropertyID: "property_1", PropertyTitle: "Test Villa", Name: "Cy", Email: "cy@example.com", Phone: "0802",
		PreferredDate: "2026-02-10", PreferredTime: "10:00",
	})
	require.NoError(t, err)
	_, err = f.services.BookingService.CreateConsultation(ctx, &dto.ConsultationRequest{
		Name: "Bo", Email: "bo@example.com", Phone: "0801", Date: "2026-03-01",
	})
	require.NoError(t, err)
	_, err = f.services.BookingService.CreateReservation(ctx, &dto.ReservationRequest{
		PropertyID: "property_1", Name: "Di", Email: "di@example.com", Phone: "0803",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.services.ExportService.WriteClientsCSV(ctx, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5, "reservations are not part of the client list")
	assert.Equal(t, clientCSVHeader, records[0])

	bySource := map[string][]string{}
	for _, r := range records[1:] {
		bySource[r[0]] = r
	}
	require.Len(t, bySource, 4)

	assert.Equal(t, "Hello, world", bySource["Contact"][4])

	req := bySource["Service Request"]
	require.NotNil(t, req)
	assert.Empty(t, req[1])
	assert.Equal(t, "u1@example.com", req[2])
	assert.Empty(t, req[3])
	assert.Equal(t, "service | Property Management | Rent | Manage my flat", req[4])

	assert.Equal(t, "Test Villa | 2026-02-10 10:00 | pending", bySource["Inspection Booking"][4])
	assert.Equal(t, "Property Consultation | 2026-03-01 | pending", bySource["Consultation Request"][4])
}

func TestPropertyService_SeedSkipsExistingTitles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.services.PropertyService.Create(ctx, &dto.CreatePropertyRequest{
		Title: "Harbour Loft", Location: "Victoria Island", Price: "₦2,000,000", Type: "Rent",
	})
	require.NoError(t, err)

	catalogue := []dto.CreatePropertyRequest{
		{Title: "harbour loft", Location: "Victoria Island", Price: "₦2,000,000", Type: "Rent"},
		{Title: "Garden Duplex", Location: "Ikoyi", Price: "₦90,000,000", Type: "Sale"},
	}
	created, err := f.services.PropertyService.Seed(ctx, catalogue)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = f.services.PropertyService.Seed(ctx, catalogue)
	require.NoError(t, err)
	assert.Zero(t, created)

	all, err := f.services.PropertyService.List(ctx, dto.PropertyFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMessageService_ThreadsDoNotLeakAcrossPrefixedIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.services.MessageService.SendFromUser(ctx, &auth.Identity{ID: "u_1", Email: "u1@example.com"}, &dto.UserMessageRequest{Content: "mine"})
	require.NoError(t, err)
	_, err = f.services.MessageService.SendFromAdmin(ctx, &dto.AdminMessageRequest{UserID: "u_1", Email: "u1@example.com", Content: "reply"})
	require.NoError(t, err)

	thread, err := f.services.MessageService.ListThread(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, thread)

	notes, err := f.services.NotificationService.ListForUser(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, notes)

	thread, err = f.services.MessageService.ListThread(ctx, "u_1")
	require.NoError(t, err)
	assert.Len(t, thread, 2)
}

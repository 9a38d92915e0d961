package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendProvider_Send(t *testing.T) {
	var got resendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer srv.Close()

	p := NewResendProvider(srv.URL, "re_test", "Letify Realty <onboarding@resend.dev>", time.Second)
	err := p.Send(context.Background(), &Email{
		To:       []string{"info@letifyrealty.com"},
		Bcc:      []string{"ada@example.com", "bo@example.com"},
		Subject:  "New Contact Inquiry from Ada",
		HTMLBody: "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Letify Realty <onboarding@resend.dev>", got.From)
	assert.Equal(t, []string{"info@letifyrealty.com"}, got.To)
	assert.Equal(t, []string{"ada@example.com", "bo@example.com"}, got.Bcc)
	assert.Equal(t, "New Contact Inquiry from Ada", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.HTML)
}

func TestResendProvider_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid to"}`))
	}))
	defer srv.Close()

	err := NewResendProvider(srv.URL, "", "x", time.Second).Send(context.Background(), &Email{To: []string{"a@b.c"}})
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = NewResendProvider(srv.URL, "key", "x", time.Second).Send(context.Background(), &Email{To: []string{"a@b.c"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSMTPProvider_NotConfigured(t *testing.T) {
	err := NewSMTPProvider(SMTPConfig{}).Send(context.Background(), &Email{To: []string{"a@b.c"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBuildMessage(t *testing.T) {
	m := buildMessage(&Email{To: []string{"a@b.c", "d@e.f"}, Subject: "Hello", HTMLBody: "<p>x</p>"}, "office@letifyrealty.com")
	assert.Equal(t, []string{"office@letifyrealty.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"a@b.c", "d@e.f"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, m.GetHeader("Subject"))
	assert.Empty(t, m.GetHeader("Bcc"))

	m = buildMessage(&Email{To: []string{"office@letifyrealty.com"}, Bcc: []string{"a@b.c", "d@e.f"}, Subject: "News"}, "office@letifyrealty.com")
	assert.Equal(t, []string{"office@letifyrealty.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"a@b.c", "d@e.f"}, m.GetHeader("Bcc"))
}

func TestMockProvider(t *testing.T) {
	m := NewMockProvider()
	require.NoError(t, m.Send(context.Background(), &Email{Subject: "one"}))

	m.Err = errors.New("down")
	assert.Error(t, m.Send(context.Background(), &Email{Subject: "two"}))
	assert.Len(t, m.Sent(), 2)

	m.Reset()
	assert.Empty(t, m.Sent())
}

func TestDefaultTemplates(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	for _, name := range []string{
		"contact_inquiry", "property_inquiry", "reservation", "inspection", "consultation",
		"service_request", "user_message", "admin_message", "booking_status", "mailing_broadcast",
	} {
		assert.Contains(t, tm.TemplateNames(), name)
	}

	html, err := tm.Render("property_inquiry", TemplateData{
		"ID":               "prop_inquiry_1",
		"PropertyTitle":    "Unknown Property",
		"PropertyLocation": "N/A",
		"PropertyPrice":    "N/A",
		"Name":             "<Ada>",
		"Email":            "ada@example.com",
		"Phone":            "123",
		"Message":          "",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Unknown Property")
	assert.Contains(t, html, "No message provided")
	assert.Contains(t, html, "&lt;Ada&gt;", "values are html-escaped")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

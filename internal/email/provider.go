package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the provider lacks credentials.
var ErrNotConfigured = errors.New("email service not configured")

// Provider delivers one Email.
type Provider interface {
	Name() string
	Send(ctx context.Context, email *Email) error
}

// TemplateRenderer renders a named template to HTML.
type TemplateRenderer interface {
	Render(templateName string, data interface{}) (string, error)
}

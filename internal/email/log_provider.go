package email

import (
	"context"

	"letify_backend/internal/logger"
)

// LogProvider only logs. For local development without mail credentials.
type LogProvider struct{}

func (LogProvider) Name() string { return "log" }

func (LogProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxInfo(ctx, "email (not sent)",
		"to", email.To,
		"bcc", len(email.Bcc),
		"subject", email.Subject,
		"html_bytes", len(email.HTMLBody),
	)
	return nil
}

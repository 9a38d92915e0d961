package services

import (
	"context"
	"strings"

	"letify_backend/internal/email"
	"letify_backend/internal/logger"
	"letify_backend/internal/repositories"
)

// Resend accepts at most this many recipients per message, To and Bcc combined.
const maxRecipientsPerEmail = 50

// Notifier does the two side effects of a write: an in-app notification,
// which callers must check, and an email, which is best-effort.
type Notifier struct {
	notifications *repositories.NotificationRepository
	mailer        *MailDispatcher
	templates     email.TemplateRenderer
	officeAddress string
}

func NewNotifier(
	notifications *repositories.NotificationRepository,
	mailer *MailDispatcher,
	templates email.TemplateRenderer,
	officeAddress string,
) *Notifier {
	return &Notifier{
		notifications: notifications,
		mailer:        mailer,
		templates:     templates,
		officeAddress: officeAddress,
	}
}

func (n *Notifier) NotifyAdmin(ctx context.Context, title, body string) error {
	_, err := n.notifications.CreateAdmin(ctx, title, body)
	return err
}

func (n *Notifier) NotifyUser(ctx context.Context, userID, title, body string) error {
	_, err := n.notifications.CreateForUser(ctx, userID, title, body)
	return err
}

// EmailOffice sends a rendered template to the office inbox.
func (n *Notifier) EmailOffice(ctx context.Context, subject, template string, data interface{}) {
	n.EmailTo(ctx, []string{n.officeAddress}, subject, template, data)
}

// EmailTo renders template once and sends it to every address in to,
// split into provider-sized batches.
func (n *Notifier) EmailTo(ctx context.Context, to []string, subject, template string, data interface{}) {
	to = compactAddresses(to)
	if len(to) == 0 {
		logger.CtxWarn(ctx, "email skipped: no recipient address", "subject", subject)
		return
	}

	html, err := n.templates.Render(template, data)
	if err != nil {
		logger.CtxWithError(ctx, "email template failed", err, "template", template)
		return
	}

	for start := 0; start < len(to); start += maxRecipientsPerEmail {
		end := start + maxRecipientsPerEmail
		if end > len(to) {
			end = len(to)
		}
		n.mailer.Dispatch(ctx, &email.Email{
			To:       append([]string(nil), to[start:end]...),
			Subject:  subject,
			HTMLBody: html,
		})
	}
}

// EmailBroadcast sends one message per batch addressed to the office, with the
// recipients in Bcc so subscribers never see each other's addresses.
func (n *Notifier) EmailBroadcast(ctx context.Context, bcc []string, subject, template string, data interface{}) {
	bcc = compactAddresses(bcc)
	if len(bcc) == 0 {
		logger.CtxWarn(ctx, "email skipped: no recipient address", "subject", subject)
		return
	}

	html, err := n.templates.Render(template, data)
	if err != nil {
		logger.CtxWithError(ctx, "email template failed", err, "template", template)
		return
	}

	batch := maxRecipientsPerEmail - 1
	for start := 0; start < len(bcc); start += batch {
		end := start + batch
		if end > len(bcc) {
			end = len(bcc)
		}
		n.mailer.Dispatch(ctx, &email.Email{
			To:       []string{n.officeAddress},
			Bcc:      append([]string(nil), bcc[start:end]...),
			Subject:  subject,
			HTMLBody: html,
		})
	}
}

func compactAddresses(to []string) []string {
	out := make([]string, 0, len(to))
	for _, a := range to {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

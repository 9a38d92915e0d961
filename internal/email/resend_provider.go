package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"letify_backend/internal/logger"

	"github.com/sony/gobreaker"
)

// ResendProvider posts messages to the Resend HTTP API (POST {base}/emails).
type ResendProvider struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker
}

func NewResendProvider(baseURL, apiKey, from string, timeout time.Duration) *ResendProvider {
	return &ResendProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: timeout},
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "resend",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

func (p *ResendProvider) Name() string { return "resend" }

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Bcc     []string `json:"bcc,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

func (p *ResendProvider) Send(ctx context.Context, email *Email) error {
	if p.apiKey == "" {
		return ErrNotConfigured
	}

	from := email.From
	if from == "" {
		from = p.from
	}
	payload, err := json.Marshal(resendRequest{
		From:    from,
		To:      email.To,
		Bcc:     email.Bcc,
		Subject: email.Subject,
		HTML:    email.HTMLBody,
		Text:    email.Body,
		ReplyTo: email.ReplyTo,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.post(ctx, payload)
	})
	return err
}

func (p *ResendProvider) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

package services

import (
	"context"
	"sync"
	"time"

	"letify_backend/internal/email"
	"letify_backend/internal/logger"

	"golang.org/x/sync/semaphore"
)

// MailDispatcher sends notification email on a best-effort basis.
// Dispatch never returns an error: failures are logged and dropped.
// In async mode sends run after the handler returns, at most maxInFlight at a time.
type MailDispatcher struct {
	provider email.Provider
	async    bool
	timeout  time.Duration
	sem      *semaphore.Weighted
	wg       sync.WaitGroup
}

func NewMailDispatcher(provider email.Provider, async bool, maxInFlight int64, timeout time.Duration) *MailDispatcher {
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &MailDispatcher{
		provider: provider,
		async:    async,
		timeout:  timeout,
		sem:      semaphore.NewWeighted(maxInFlight),
	}
}

func (d *MailDispatcher) Dispatch(ctx context.Context, msg *email.Email) {
	if len(msg.To) == 0 {
		logger.CtxWarn(ctx, "email skipped: no recipients", "subject", msg.Subject)
		return
	}

	if !d.async {
		d.send(ctx, msg)
		return
	}

	// the request context is cancelled once the handler returns
	detached := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.sem.Acquire(detached, 1); err != nil {
			logger.MailLog(d.provider.Name(), msg.Subject, len(msg.To)+len(msg.Bcc), err)
			return
		}
		defer d.sem.Release(1)
		d.send(detached, msg)
	}()
}

func (d *MailDispatcher) send(ctx context.Context, msg *email.Email) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.provider.Send(ctx, msg)
	logger.MailLog(d.provider.Name(), msg.Subject, len(msg.To)+len(msg.Bcc), err)
}

// Close waits for queued sends, up to ctx's deadline.
func (d *MailDispatcher) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package workers

import (
	"context"
	"sync"
	"time"

	"letify_backend/internal/logger"
)

const sweeperName = "notification_sweeper"

// Purger deletes notifications older than the given age and reports how many went.
type Purger interface {
	PurgeOlderThan(ctx context.Context, age time.Duration) (int, error)
}

// NotificationSweeper enforces the notification retention window.
type NotificationSweeper struct {
	purger    Purger
	retention time.Duration
	interval  time.Duration
	wg        sync.WaitGroup
}

func NewNotificationSweeper(purger Purger, retention, interval time.Duration) *NotificationSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &NotificationSweeper{purger: purger, retention: retention, interval: interval}
}

// Start sweeps once immediately and then every interval until ctx is done.
func (w *NotificationSweeper) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Wait blocks until the sweep loop has exited.
func (w *NotificationSweeper) Wait() {
	w.wg.Wait()
}

func (w *NotificationSweeper) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification sweeper stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

func (w *NotificationSweeper) Sweep(ctx context.Context) int {
	removed, err := w.purger.PurgeOlderThan(ctx, w.retention)
	logger.WorkerLog(sweeperName, "purge", err)
	if removed > 0 {
		logger.Info("Purged expired notifications", "count", removed, "retention", w.retention)
	}
	return removed
}

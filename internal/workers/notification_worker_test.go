package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePurger struct {
	mu    sync.Mutex
	calls int
	ages  []time.Duration
	err   error
}

func (p *fakePurger) PurgeOlderThan(_ context.Context, age time.Duration) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.ages = append(p.ages, age)
	return 2, p.err
}

func (p *fakePurger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestNotificationSweeper_SweepsUntilCancelled(t *testing.T) {
	purger := &fakePurger{}
	w := NewNotificationSweeper(purger, 24*time.Hour, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	assert.Eventually(t, func() bool { return purger.count() >= 3 }, time.Second, time.Millisecond)
	cancel()
	w.Wait()

	stopped := purger.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, purger.count())
	assert.Equal(t, 24*time.Hour, purger.ages[0])
}

func TestNotificationSweeper_ErrorDoesNotStopLoop(t *testing.T) {
	purger := &fakePurger{err: errors.New("store down")}
	w := NewNotificationSweeper(purger, time.Hour, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	assert.Eventually(t, func() bool { return purger.count() >= 2 }, time.Second, time.Millisecond)
}

func TestNotificationSweeper_Sweep(t *testing.T) {
	purger := &fakePurger{}
	w := NewNotificationSweeper(purger, time.Hour, 0)

	assert.Equal(t, 2, w.Sweep(context.Background()))
	assert.Equal(t, time.Hour, w.interval)
}

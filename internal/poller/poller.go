// Package poller runs the screens' fixed-interval refresh loops as explicit
// tasks with cancellation, so tearing a screen down stops its timers.
package poller

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Standard refresh intervals: collection lists every 5s, the waiter's
// orders-ready check every 10s.
const (
	ListInterval  = 5 * time.Second
	ReadyInterval = 10 * time.Second
)

type Task struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
	Log      *zap.Logger
}

// Run fires Fn immediately, then on every tick, until ctx is cancelled.
// An error is logged and the loop keeps going; the next tick is the only
// retry there is. Fn receives the task ctx; once cancelled, a late in-flight
// result must be dropped by Fn, never applied.
func (t *Task) Run(ctx context.Context) {
	interval := t.Interval
	if interval <= 0 {
		interval = ListInterval
	}

	t.tick(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

func (t *Task) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := t.Fn(ctx); err != nil && t.Log != nil {
		t.Log.Warn("poll failed", zap.String("task", t.Name), zap.Error(err))
	}
}

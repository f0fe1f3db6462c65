package dispatch

import (
	"context"
	"log/slog"
	"time"
)

// Ticker periodically reconciles parked connection requests and drains the
// outbound queue. A non-positive interval disables it.
type Ticker struct {
	dispatcher *Dispatcher
	interval   time.Duration
	limit      int
	logger     *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewTicker creates a background dispatch loop.
func NewTicker(d *Dispatcher, interval time.Duration, limit int, logger *slog.Logger) *Ticker {
	if d == nil {
		panic("dispatch.NewTicker: dispatcher must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ticker{dispatcher: d, interval: interval, limit: limit, logger: logger}
}

// Start launches the loop. The first tick runs immediately.
func (t *Ticker) Start(ctx context.Context) {
	if t.interval <= 0 || t.cancel != nil {
		return
	}
	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})

	go t.run(ctx)

	t.logger.Info("Dispatch ticker started", "interval", t.interval, "limit", t.limit)
}

// Stop signals the loop to exit and waits for it to finish.
func (t *Ticker) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.logger.Info("Dispatch ticker stopped")
}

func (t *Ticker) run(ctx context.Context) {
	defer close(t.done)

	t.tick(ctx)

	ticker := time.NewTicker(t.interval)
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

func (t *Ticker) tick(ctx context.Context) {
	if _, err := t.dispatcher.ReconcileConnections(ctx, t.limit); err != nil && ctx.Err() == nil {
		t.logger.Error("Connection reconcile failed", "error", err)
	}
	if _, err := t.dispatcher.Dispatch(ctx, t.limit); err != nil && ctx.Err() == nil {
		t.logger.Error("Dispatch tick failed", "error", err)
	}
}

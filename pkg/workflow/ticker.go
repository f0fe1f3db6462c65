package workflow

import (
	"context"
	"log/slog"
	"time"
)

// Ticker periodically runs the follow-up sweep and the inbound poller.
// Either interval can be non-positive to disable that loop.
type Ticker struct {
	engine           *Engine
	followupInterval time.Duration
	pollInterval     time.Duration
	limit            int
	logger           *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewTicker creates the background workflow loops.
func NewTicker(e *Engine, followupInterval, pollInterval time.Duration, limit int, logger *slog.Logger) *Ticker {
	if e == nil {
		panic("workflow.NewTicker: engine must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ticker{
		engine:           e,
		followupInterval: followupInterval,
		pollInterval:     pollInterval,
		limit:            limit,
		logger:           logger,
	}
}

// Start launches the loops. The first ticks run immediately.
func (t *Ticker) Start(ctx context.Context) {
	if (t.followupInterval <= 0 && t.pollInterval <= 0) || t.cancel != nil {
		return
	}
	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})

	go t.run(ctx)

	t.logger.Info("Workflow ticker started",
		"followup_interval", t.followupInterval,
		"poll_interval", t.pollInterval,
		"limit", t.limit)
}

// Stop signals the loops to exit and waits for them to finish.
func (t *Ticker) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.logger.Info("Workflow ticker stopped")
}

func (t *Ticker) run(ctx context.Context) {
	defer close(t.done)

	var followupC, pollC <-chan time.Time
	if t.followupInterval > 0 {
		t.followupTick(ctx)
		ticker := time.NewTicker(t.followupInterval)
		defer ticker.Stop()
		followupC = ticker.C
	}
	if t.pollInterval > 0 {
		t.pollTick(ctx)
		ticker := time.NewTicker(t.pollInterval)
		defer ticker.Stop()
		pollC = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-followupC:
			t.followupTick(ctx)
		case <-pollC:
			t.pollTick(ctx)
		}
	}
}

func (t *Ticker) followupTick(ctx context.Context) {
	if _, err := t.engine.FollowupTick(ctx, t.limit); err != nil && ctx.Err() == nil {
		t.logger.Error("Follow-up tick failed", "error", err)
	}
}

func (t *Ticker) pollTick(ctx context.Context) {
	if _, err := t.engine.PollInbound(ctx, t.limit); err != nil && ctx.Err() == nil {
		t.logger.Error("Poll tick failed", "error", err)
	}
}

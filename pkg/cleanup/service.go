// Package cleanup enforces data retention: expired idempotency records and
// old operation-log entries are pruned on a fixed interval.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/hireflow/scout/ent/idempotencyrecord"
	"github.com/hireflow/scout/ent/operationlog"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/store"
)

// Service periodically enforces retention policies:
//   - Deletes idempotency records past their replay window
//   - Deletes operation-log entries past the retention horizon
//
// The sweep runs the same predicate delete against both backends, so a
// dual-write deployment stays in parity. All operations are idempotent.
type Service struct {
	cfg   *config.RetentionConfig
	store *store.Switchboard
	now   func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service. Config nil means defaults.
func NewService(cfg *config.RetentionConfig, sb *store.Switchboard) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	if sb == nil {
		panic("cleanup.NewService: store must not be nil")
	}
	return &Service{cfg: cfg, store: sb, now: time.Now}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweep started",
		"idempotency_ttl", s.cfg.IdempotencyTTL.Std(),
		"operation_log_days", s.cfg.OperationLogDays,
		"interval", s.cfg.SweepInterval.Std())
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweep stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval.Std())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one retention pass. Exposed so operators can trigger it
// outside the loop.
func (s *Service) Sweep(ctx context.Context) {
	now := s.now().UTC()
	s.sweepIdempotency(ctx, now.Add(-s.cfg.IdempotencyTTL.Std()))
	s.sweepOperationLog(ctx, now.AddDate(0, 0, -s.cfg.OperationLogDays))
}

func (s *Service) sweepIdempotency(ctx context.Context, cutoff time.Time) {
	total := 0
	for _, b := range s.backends() {
		n, err := b.Client.IdempotencyRecord.Delete().
			Where(idempotencyrecord.CreatedAtLT(cutoff)).
			Exec(ctx)
		if err != nil {
			slog.Error("Retention: idempotency sweep failed", "backend", b.Name, "error", err)
			continue
		}
		total += n
	}
	if total > 0 {
		slog.Info("Retention: pruned idempotency records", "count", total, "cutoff", cutoff)
	}
}

func (s *Service) sweepOperationLog(ctx context.Context, cutoff time.Time) {
	total := 0
	for _, b := range s.backends() {
		n, err := b.Client.OperationLog.Delete().
			Where(operationlog.CreatedAtLT(cutoff)).
			Exec(ctx)
		if err != nil {
			slog.Error("Retention: operation log sweep failed", "backend", b.Name, "error", err)
			continue
		}
		total += n
	}
	if total > 0 {
		slog.Info("Retention: pruned operation logs", "count", total, "cutoff", cutoff)
	}
}

// backends returns the stores the sweep applies to. Deletes are not
// mirrored by the dual-write proxy, so the sweep visits each backend
// directly.
func (s *Service) backends() []*store.Backend {
	out := []*store.Backend{s.store.Primary()}
	if sec := s.store.Secondary(); sec != nil {
		out = append(out, sec)
	}
	return out
}

package signals

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/metrics"
	"github.com/hireflow/scout/pkg/services"
)

// Services bundles the stores the engine reads from and writes to.
type Services struct {
	Matches     *services.MatchService
	Assessments *services.AssessmentService
	Sessions    *services.SessionService
	Audit       *services.AuditService
	Signals     *services.SignalService
}

// Engine sweeps a job's assessments, conversation events, operation logs,
// and match rows into classified candidate signals. Re-ingesting is
// idempotent: the (job, candidate, source_type, source_id) tuple dedupes.
type Engine struct {
	cfg    *config.SignalsConfig
	rules  *Ruleset
	deps   Services
	logger *slog.Logger
}

// NewEngine creates a signal engine, loading the ruleset from
// cfg.RulesPath when set.
func NewEngine(cfg *config.SignalsConfig, deps Services, logger *slog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultSignalsConfig()
	}
	if deps.Matches == nil || deps.Assessments == nil || deps.Sessions == nil || deps.Audit == nil || deps.Signals == nil {
		panic("NewEngine: all services must be set")
	}
	if logger == nil {
		logger = slog.Default()
	}
	rules, err := LoadRuleset(cfg.RulesPath)
	if err != nil {
		return nil, err
	}
	if cfg.RulesVersion != "" {
		rules.Version = cfg.RulesVersion
	}
	return &Engine{cfg: cfg, rules: rules, deps: deps, logger: logger}, nil
}

// IngestReport summarizes one ingestion sweep.
type IngestReport struct {
	JobID   string         `json:"job_id"`
	Created int            `json:"created"`
	Total   int            `json:"total"`
	Sources map[string]int `json:"sources"`
}

// IngestJob derives signals from everything recorded for the job's matched
// candidates. Sources without a candidate attached are skipped.
func (e *Engine) IngestJob(ctx context.Context, jobID string) (*IngestReport, error) {
	if jobID == "" {
		return nil, services.NewValidationError("job_id", "job id is required")
	}

	matches, err := e.deps.Matches.ListByJob(ctx, jobID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for ingestion: %w", err)
	}
	candidates := make(map[string]bool, len(matches))
	for _, m := range matches {
		candidates[m.CandidateID] = true
	}

	report := &IngestReport{JobID: jobID, Sources: make(map[string]int, 4)}

	for _, m := range matches {
		in := fromMatch(m)
		if err := e.store(ctx, in, report); err != nil {
			return nil, err
		}
	}

	assessments, err := e.deps.Assessments.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessments for ingestion: %w", err)
	}
	for _, a := range assessments {
		if !candidates[a.CandidateID] {
			continue
		}
		in := fromAssessment(a)
		if err := e.store(ctx, in, report); err != nil {
			return nil, err
		}
	}

	events, err := e.deps.Sessions.ListEventsByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for ingestion: %w", err)
	}
	for _, ev := range events {
		if ev.CandidateID == "" || !candidates[ev.CandidateID] {
			continue
		}
		in := fromEvent(ev)
		if err := e.store(ctx, in, report); err != nil {
			return nil, err
		}
	}

	logs, err := e.deps.Audit.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load operation logs for ingestion: %w", err)
	}
	for _, l := range logs {
		if l.CandidateID == "" || !candidates[l.CandidateID] {
			continue
		}
		in, ok := fromOperationLog(l)
		if !ok {
			continue
		}
		if err := e.store(ctx, in, report); err != nil {
			return nil, err
		}
	}

	e.logger.Info("Signal ingestion complete",
		slog.String("job_id", jobID),
		slog.Int("created", report.Created),
		slog.Int("total", report.Total))
	return report, nil
}

func (e *Engine) store(ctx context.Context, in services.UpsertSignalInput, report *IngestReport) error {
	e.rules.Classify(&in)
	_, created, err := e.deps.Signals.UpsertSignal(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to store %s signal: %w", in.SourceType, err)
	}
	report.Total++
	report.Sources[in.SourceType]++
	if created {
		report.Created++
		metrics.SignalsIngested.WithLabelValues(in.SourceType).Inc()
	}
	return nil
}

// Package workflow runs the sourcing pipeline: source, enrich, verify, add,
// and outreach stages over a job, inbound routing between the pre-resume FSM
// and the FAQ composer, the follow-up scheduler, and the provider inbound
// poller. Every stage is idempotent against the repository: completed runs
// leave a step-progress row callers can replay against.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/dispatch"
	"github.com/hireflow/scout/pkg/matching"
	"github.com/hireflow/scout/pkg/metrics"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/services"
)

// Deps bundles the engine's collaborators. All services are required; the
// dispatcher is optional and only used when dispatch mode is inline, the
// interview client only by the interview operations.
type Deps struct {
	Provider   provider.Client
	Matcher    *matching.Engine
	Sessions   *preresume.Manager
	Outreach   *agents.OutreachComposer
	FAQ        *agents.FAQComposer
	Dispatcher *dispatch.Dispatcher
	Interview  provider.InterviewClient

	Jobs          *services.JobService
	Candidates    *services.CandidateService
	Matches       *services.MatchService
	Conversations *services.ConversationService
	Messages      *services.MessageService
	SessionStore  *services.SessionService
	Assessments   *services.AssessmentService
	Queue         *services.OutboundService
	Progress      *services.ProgressService
	Audit         *services.AuditService
}

// Engine orchestrates the recruiting pipeline for jobs.
type Engine struct {
	cfg          *config.WorkflowConfig
	dispatchMode string
	deps         Deps
	logger       *slog.Logger
	now          func() time.Time
}

// New creates an engine. A nil config uses the built-in defaults.
func New(cfg *config.WorkflowConfig, dispatchMode string, deps Deps, logger *slog.Logger) *Engine {
	if cfg == nil {
		cfg = config.DefaultWorkflowConfig()
	}
	if deps.Provider == nil {
		panic("workflow.New: provider must not be nil")
	}
	if deps.Matcher == nil {
		panic("workflow.New: matcher must not be nil")
	}
	if deps.Sessions == nil {
		panic("workflow.New: session manager must not be nil")
	}
	if deps.Outreach == nil {
		panic("workflow.New: outreach composer must not be nil")
	}
	if deps.FAQ == nil {
		panic("workflow.New: faq composer must not be nil")
	}
	for name, dep := range map[string]any{
		"jobs":          deps.Jobs,
		"candidates":    deps.Candidates,
		"matches":       deps.Matches,
		"conversations": deps.Conversations,
		"messages":      deps.Messages,
		"sessions":      deps.SessionStore,
		"assessments":   deps.Assessments,
		"queue":         deps.Queue,
		"progress":      deps.Progress,
		"audit":         deps.Audit,
	} {
		if dep == nil || isNilService(dep) {
			panic(fmt.Sprintf("workflow.New: %s service must not be nil", name))
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if dispatchMode == "" {
		dispatchMode = config.DispatchModeQueued
	}
	return &Engine{
		cfg:          cfg,
		dispatchMode: dispatchMode,
		deps:         deps,
		logger:       logger,
		now:          time.Now,
	}
}

func isNilService(dep any) bool {
	switch v := dep.(type) {
	case *services.JobService:
		return v == nil
	case *services.CandidateService:
		return v == nil
	case *services.MatchService:
		return v == nil
	case *services.ConversationService:
		return v == nil
	case *services.MessageService:
		return v == nil
	case *services.SessionService:
		return v == nil
	case *services.AssessmentService:
		return v == nil
	case *services.OutboundService:
		return v == nil
	case *services.ProgressService:
		return v == nil
	case *services.AuditService:
		return v == nil
	}
	return false
}

// RunStage executes one pipeline step for a job. The step-progress row is
// marked running before execution and completed with the summary output
// afterwards, so a replay of a finished step is observable and safe. Stage
// errors fail the progress row and surface to the caller.
func (e *Engine) RunStage(ctx context.Context, step, jobID string, req models.StageRequest) (*models.StageSummary, error) {
	if !validStep(step) {
		return nil, services.NewValidationError("step", fmt.Sprintf("unknown step %q", step))
	}

	job, err := e.deps.Jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if _, err := e.deps.Progress.StartStep(ctx, jobID, step); err != nil {
		return nil, err
	}

	log := e.logger.With("job_id", jobID, "step", step)
	start := e.now()

	var summary *models.StageSummary
	switch step {
	case models.StepSource:
		summary, err = e.source(ctx, job, req)
	case models.StepEnrich:
		summary, err = e.enrich(ctx, job, req)
	case models.StepVerify:
		summary, err = e.verify(ctx, job, req)
	case models.StepAdd:
		summary, err = e.add(ctx, job, req)
	case models.StepOutreach:
		summary, err = e.outreach(ctx, job, req)
	}
	elapsed := time.Since(start)

	if err != nil {
		metrics.StageDuration.WithLabelValues(step, "error").Observe(elapsed.Seconds())
		if _, ferr := e.deps.Progress.FailStep(ctx, jobID, step, err.Error()); ferr != nil {
			log.Error("Failed to record step failure", "error", ferr)
		}
		e.record(ctx, "agent."+step, "error", job.ID, "", map[string]any{"error": err.Error()})
		log.Error("Stage failed", "error", err, "duration", elapsed)
		return nil, err
	}

	output := map[string]any{
		"status": summary.Status,
		"counts": summary.Counts,
	}
	if len(req.Instructions) > 0 {
		output["instructions"] = req.Instructions
	}
	if _, err := e.deps.Progress.CompleteStep(ctx, jobID, step, output); err != nil {
		return nil, err
	}

	metrics.StageDuration.WithLabelValues(step, "ok").Observe(elapsed.Seconds())
	e.record(ctx, "agent."+step, "ok", job.ID, "", map[string]any{"counts": summary.Counts})
	log.Info("Stage complete", "counts", summary.Counts, "duration", elapsed)
	return summary, nil
}

func validStep(step string) bool {
	for _, s := range models.Steps {
		if s == step {
			return true
		}
	}
	return false
}

// record writes an audit row; failures are logged, never propagated, so
// observability cannot abort a stage.
func (e *Engine) record(ctx context.Context, operation, status, jobID, candidateID string, details map[string]any) {
	_, err := e.deps.Audit.Record(ctx, services.RecordOperationInput{
		Operation:   operation,
		Status:      status,
		EntityType:  "job",
		EntityID:    jobID,
		JobID:       jobID,
		CandidateID: candidateID,
		Details:     details,
	})
	if err != nil {
		e.logger.Error("Failed to record operation", "operation", operation, "error", err)
	}
}

// providerCtx bounds one provider call.
func (e *Engine) providerCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.ProviderTimeout.Std())
}

// profileOf rebuilds the provider profile for a stored candidate.
func profileOf(c *ent.Candidate) provider.Profile {
	return provider.Profile{
		ProviderID:      c.ProviderID,
		FullName:        c.FullName,
		Headline:        c.Headline,
		Location:        c.Location,
		Languages:       c.Languages,
		Skills:          c.Skills,
		YearsExperience: c.YearsExperience,
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/pkg/store"
)

// UpsertSignalInput contains one derived signal. The (job, candidate,
// source_type, source_id) tuple is unique, making re-ingestion idempotent.
type UpsertSignalInput struct {
	JobID       string
	CandidateID string
	SourceType  string
	SourceID    string
	SignalType  string
	Category    string
	Title       string
	Detail      string
	Impact      float64
	Confidence  float64
	Meta        map[string]any
	ObservedAt  time.Time
}

// SignalService persists candidate signals derived from assessments,
// events, operation logs, and match snapshots.
type SignalService struct {
	store *store.Switchboard
}

// NewSignalService creates a new SignalService.
func NewSignalService(sb *store.Switchboard) *SignalService {
	if sb == nil {
		panic("NewSignalService: store must not be nil")
	}
	return &SignalService{store: sb}
}

// UpsertSignal writes one signal. A repeat for the same source refreshes
// the derived fields and reports created=false.
func (s *SignalService) UpsertSignal(ctx context.Context, in UpsertSignalInput) (*ent.CandidateSignal, bool, error) {
	if in.JobID == "" {
		return nil, false, NewValidationError("job_id", "job id is required")
	}
	if in.CandidateID == "" {
		return nil, false, NewValidationError("candidate_id", "candidate id is required")
	}
	if in.SourceID == "" {
		return nil, false, NewValidationError("source_id", "source id is required")
	}
	sourceType := candidatesignal.SourceType(in.SourceType)
	if err := candidatesignal.SourceTypeValidator(sourceType); err != nil {
		return nil, false, NewValidationError("source_type", fmt.Sprintf("unknown source type %q", in.SourceType))
	}
	if in.SignalType == "" {
		return nil, false, NewValidationError("signal_type", "signal type is required")
	}
	observed := in.ObservedAt
	if observed.IsZero() {
		observed = time.Now()
	}
	observed = observed.UTC()

	existing, err := s.store.Writer().CandidateSignal.Query().
		Where(
			candidatesignal.JobID(in.JobID),
			candidatesignal.CandidateID(in.CandidateID),
			candidatesignal.SourceTypeEQ(sourceType),
			candidatesignal.SourceID(in.SourceID),
		).
		Only(ctx)
	switch {
	case err == nil:
		updated, uerr := s.refresh(ctx, existing, in, observed)
		return updated, false, uerr
	case ent.IsNotFound(err):
		// fall through to create
	default:
		return nil, false, fmt.Errorf("failed to query signal: %w", err)
	}

	builder := s.store.Writer().CandidateSignal.Create().
		SetJobID(in.JobID).
		SetCandidateID(in.CandidateID).
		SetSourceType(sourceType).
		SetSourceID(in.SourceID).
		SetSignalType(in.SignalType).
		SetCategory(in.Category).
		SetTitle(in.Title).
		SetImpact(in.Impact).
		SetConfidence(in.Confidence).
		SetObservedAt(observed)
	if in.Detail != "" {
		builder.SetDetail(in.Detail)
	}
	if len(in.Meta) > 0 {
		builder.SetSignalMeta(in.Meta)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, rerr := s.store.Writer().CandidateSignal.Query().
				Where(
					candidatesignal.JobID(in.JobID),
					candidatesignal.CandidateID(in.CandidateID),
					candidatesignal.SourceTypeEQ(sourceType),
					candidatesignal.SourceID(in.SourceID),
				).
				Only(ctx)
			if ent.IsNotFound(rerr) {
				// Not a unique-index race: the required job edge failed.
				return nil, false, fmt.Errorf("%w: job %s", ErrNotFound, in.JobID)
			}
			if rerr != nil {
				return nil, false, fmt.Errorf("failed to re-read signal after conflict: %w", rerr)
			}
			updated, uerr := s.refresh(ctx, existing, in, observed)
			return updated, false, uerr
		}
		return nil, false, fmt.Errorf("failed to create signal: %w", err)
	}

	if err := s.store.Mirror().Signal(ctx, row.ID); err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// ListByJob returns a job's signals in insertion order.
func (s *SignalService) ListByJob(ctx context.Context, jobID string) ([]*ent.CandidateSignal, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	rows, err := s.store.Reader().CandidateSignal.Query().
		Where(candidatesignal.JobID(jobID)).
		Order(ent.Asc(candidatesignal.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list signals: %w", err)
	}
	return rows, nil
}

// ListByJobCandidate returns a candidate's signals, newest observation
// first, bounded by limit.
func (s *SignalService) ListByJobCandidate(ctx context.Context, jobID, candidateID string, limit int) ([]*ent.CandidateSignal, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	if limit <= 0 {
		limit = 1000
	}
	rows, err := s.store.Reader().CandidateSignal.Query().
		Where(candidatesignal.JobID(jobID), candidatesignal.CandidateID(candidateID)).
		Order(ent.Desc(candidatesignal.FieldObservedAt), ent.Desc(candidatesignal.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate signals: %w", err)
	}
	return rows, nil
}

// refresh overwrites the derived fields of an existing signal.
func (s *SignalService) refresh(ctx context.Context, row *ent.CandidateSignal, in UpsertSignalInput, observed time.Time) (*ent.CandidateSignal, error) {
	update := s.store.Writer().CandidateSignal.UpdateOneID(row.ID).
		SetSignalType(in.SignalType).
		SetCategory(in.Category).
		SetTitle(in.Title).
		SetImpact(in.Impact).
		SetConfidence(in.Confidence).
		SetObservedAt(observed)
	if in.Detail != "" {
		update.SetDetail(in.Detail)
	}
	if len(in.Meta) > 0 {
		update.SetSignalMeta(in.Meta)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh signal: %w", err)
	}
	if err := s.store.Mirror().Signal(ctx, updated.ID); err != nil {
		return nil, err
	}
	return updated, nil
}

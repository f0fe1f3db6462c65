package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/match"
	"github.com/hireflow/scout/pkg/store"
)

// MatchService handles the (job, candidate) association carrying the
// screening verdict. One match per pair; notes merge additively so later
// stages never erase what earlier stages recorded.
type MatchService struct {
	store *store.Switchboard
}

// NewMatchService creates a new MatchService.
func NewMatchService(sb *store.Switchboard) *MatchService {
	if sb == nil {
		panic("NewMatchService: store must not be nil")
	}
	return &MatchService{store: sb}
}

// EnsureMatch creates or updates the match for a pair. Score is always
// refreshed; status is applied when non-empty; notes merge key-by-key into
// the existing map.
func (s *MatchService) EnsureMatch(ctx context.Context, jobID, candidateID string, score float64, status string, notes map[string]any) (*ent.Match, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	if status != "" {
		if err := match.StatusValidator(match.Status(status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown match status %q", status))
		}
	}

	row, err := s.store.Writer().Match.Query().
		Where(match.JobID(jobID), match.CandidateID(candidateID)).
		Only(ctx)
	switch {
	case err == nil:
		return s.applyUpdate(ctx, row, &score, status, notes)
	case ent.IsNotFound(err):
		// fall through to create
	default:
		return nil, fmt.Errorf("failed to query match: %w", err)
	}

	builder := s.store.Writer().Match.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetCandidateID(candidateID).
		SetScore(score)
	if status != "" {
		builder.SetStatus(match.Status(status))
	}
	if len(notes) > 0 {
		builder.SetVerificationNotes(notes)
	}

	row, err = builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the pair exists now, update it instead.
			row, err = s.store.Writer().Match.Query().
				Where(match.JobID(jobID), match.CandidateID(candidateID)).
				Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to re-read match after conflict: %w", err)
			}
			return s.applyUpdate(ctx, row, &score, status, notes)
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	if err := s.store.Mirror().Match(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateStatus moves the match of a pair to the given status.
func (s *MatchService) UpdateStatus(ctx context.Context, jobID, candidateID, status string) (*ent.Match, error) {
	if err := match.StatusValidator(match.Status(status)); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("unknown match status %q", status))
	}
	row, err := s.GetByJobCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, row, nil, status, nil)
}

// MergeNotes merges the given keys into the match's verification notes.
func (s *MatchService) MergeNotes(ctx context.Context, jobID, candidateID string, notes map[string]any) (*ent.Match, error) {
	row, err := s.GetByJobCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	return s.applyUpdate(ctx, row, nil, "", notes)
}

// GetByJobCandidate returns the match for a pair.
func (s *MatchService) GetByJobCandidate(ctx context.Context, jobID, candidateID string) (*ent.Match, error) {
	row, err := s.store.Reader().Match.Query().
		Where(match.JobID(jobID), match.CandidateID(candidateID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return row, nil
}

// ListByJob returns a job's matches, highest score first. Statuses filter
// when non-empty; minScore filters when non-nil.
func (s *MatchService) ListByJob(ctx context.Context, jobID string, statuses []string, minScore *float64) ([]*ent.Match, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	query := s.store.Reader().Match.Query().Where(match.JobID(jobID))
	if len(statuses) > 0 {
		converted := make([]match.Status, 0, len(statuses))
		for _, st := range statuses {
			if err := match.StatusValidator(match.Status(st)); err != nil {
				return nil, NewValidationError("status", fmt.Sprintf("unknown match status %q", st))
			}
			converted = append(converted, match.Status(st))
		}
		query = query.Where(match.StatusIn(converted...))
	}
	if minScore != nil {
		query = query.Where(match.ScoreGTE(*minScore))
	}
	rows, err := query.
		Order(ent.Desc(match.FieldScore), ent.Asc(match.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return rows, nil
}

// ListByCandidate returns a candidate's matches across jobs, highest score
// first. The profile builder walks these to assemble the per-job sections.
func (s *MatchService) ListByCandidate(ctx context.Context, candidateID string) ([]*ent.Match, error) {
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	rows, err := s.store.Reader().Match.Query().
		Where(match.CandidateID(candidateID)).
		Order(ent.Desc(match.FieldScore), ent.Asc(match.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return rows, nil
}

// applyUpdate writes the given changes onto an existing match and mirrors
// the result. Notes merge additively.
func (s *MatchService) applyUpdate(ctx context.Context, row *ent.Match, score *float64, status string, notes map[string]any) (*ent.Match, error) {
	update := s.store.Writer().Match.UpdateOneID(row.ID)
	changed := false
	if score != nil && *score != row.Score {
		update.SetScore(*score)
		changed = true
	}
	if status != "" && match.Status(status) != row.Status {
		update.SetStatus(match.Status(status))
		changed = true
	}
	if len(notes) > 0 {
		merged := make(map[string]any, len(row.VerificationNotes)+len(notes))
		for k, v := range row.VerificationNotes {
			merged[k] = v
		}
		for k, v := range notes {
			merged[k] = v
		}
		update.SetVerificationNotes(merged)
		changed = true
	}
	if !changed {
		return row, nil
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	if err := s.store.Mirror().Match(ctx, updated.ID); err != nil {
		return nil, err
	}
	return updated, nil
}

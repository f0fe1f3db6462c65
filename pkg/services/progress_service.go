package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/pkg/store"
)

// ProgressService tracks per-step pipeline progress on a job. One row per
// (job, step); re-running a step overwrites its row.
type ProgressService struct {
	store *store.Switchboard
}

// NewProgressService creates a new ProgressService.
func NewProgressService(sb *store.Switchboard) *ProgressService {
	if sb == nil {
		panic("NewProgressService: store must not be nil")
	}
	return &ProgressService{store: sb}
}

// StartStep marks a step running. The previous output survives until the
// run completes or fails.
func (s *ProgressService) StartStep(ctx context.Context, jobID, step string) (*ent.JobStepProgress, error) {
	row, err := s.ensureRow(ctx, jobID, step)
	if err != nil {
		return nil, err
	}
	updated, err := s.store.Writer().JobStepProgress.UpdateOneID(row.ID).
		SetStatus(jobstepprogress.StatusRunning).
		SetStartedAt(time.Now().UTC()).
		ClearCompletedAt().
		SetLastError("").
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start step: %w", err)
	}
	if err := s.store.Mirror().StepProgress(ctx, updated.ID); err != nil {
		return nil, err
	}
	return updated, nil
}

// CompleteStep marks a step completed with its output summary.
func (s *ProgressService) CompleteStep(ctx context.Context, jobID, step string, output map[string]any) (*ent.JobStepProgress, error) {
	row, err := s.ensureRow(ctx, jobID, step)
	if err != nil {
		return nil, err
	}
	update := s.store.Writer().JobStepProgress.UpdateOneID(row.ID).
		SetStatus(jobstepprogress.StatusCompleted).
		SetCompletedAt(time.Now().UTC()).
		SetLastError("")
	if output != nil {
		update.SetOutput(output)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete step: %w", err)
	}
	if err := s.store.Mirror().StepProgress(ctx, updated.ID); err != nil {
		return nil, err
	}
	return updated, nil
}

// FailStep marks a step failed with the error that stopped it.
func (s *ProgressService) FailStep(ctx context.Context, jobID, step, errMsg string) (*ent.JobStepProgress, error) {
	row, err := s.ensureRow(ctx, jobID, step)
	if err != nil {
		return nil, err
	}
	updated, err := s.store.Writer().JobStepProgress.UpdateOneID(row.ID).
		SetStatus(jobstepprogress.StatusFailed).
		SetCompletedAt(time.Now().UTC()).
		SetLastError(errMsg).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fail step: %w", err)
	}
	if err := s.store.Mirror().StepProgress(ctx, updated.ID); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListByJob returns a job's step rows in step-creation order.
func (s *ProgressService) ListByJob(ctx context.Context, jobID string) ([]*ent.JobStepProgress, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	rows, err := s.store.Reader().JobStepProgress.Query().
		Where(jobstepprogress.JobID(jobID)).
		Order(ent.Asc(jobstepprogress.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step progress: %w", err)
	}
	return rows, nil
}

// ensureRow finds or creates the (job, step) row.
func (s *ProgressService) ensureRow(ctx context.Context, jobID, step string) (*ent.JobStepProgress, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if step == "" {
		return nil, NewValidationError("step", "step is required")
	}

	row, err := s.store.Writer().JobStepProgress.Query().
		Where(jobstepprogress.JobID(jobID), jobstepprogress.Step(step)).
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query step progress: %w", err)
	}

	row, err = s.store.Writer().JobStepProgress.Create().
		SetJobID(jobID).
		SetStep(step).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race or the job is missing.
			row, rerr := s.store.Writer().JobStepProgress.Query().
				Where(jobstepprogress.JobID(jobID), jobstepprogress.Step(step)).
				Only(ctx)
			if rerr != nil {
				return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
			}
			return row, nil
		}
		return nil, fmt.Errorf("failed to create step progress: %w", err)
	}
	return row, nil
}

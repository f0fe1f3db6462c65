package services

import (
	"context"
	"fmt"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/operationlog"
	"github.com/hireflow/scout/pkg/store"
)

// RecordOperationInput contains one audit entry. Operations use dotted
// names (agent.*, scheduler.*, poll.*, interview.*) so the signal engine
// can bucket them by prefix.
type RecordOperationInput struct {
	Operation   string
	Status      string
	EntityType  string
	EntityID    string
	JobID       string
	CandidateID string
	Details     map[string]any
}

// AuditService appends to the operation log. The log doubles as a signal
// source, so entries carry job and candidate ids whenever known.
type AuditService struct {
	store *store.Switchboard
}

// NewAuditService creates a new AuditService.
func NewAuditService(sb *store.Switchboard) *AuditService {
	if sb == nil {
		panic("NewAuditService: store must not be nil")
	}
	return &AuditService{store: sb}
}

// Record appends one operation log entry.
func (s *AuditService) Record(ctx context.Context, in RecordOperationInput) (*ent.OperationLog, error) {
	if in.Operation == "" {
		return nil, NewValidationError("operation", "operation is required")
	}

	builder := s.store.Writer().OperationLog.Create().
		SetOperation(in.Operation)
	if in.Status != "" {
		builder.SetStatus(in.Status)
	}
	if in.EntityType != "" {
		builder.SetEntityType(in.EntityType)
	}
	if in.EntityID != "" {
		builder.SetEntityID(in.EntityID)
	}
	if in.JobID != "" {
		builder.SetJobID(in.JobID)
	}
	if in.CandidateID != "" {
		builder.SetCandidateID(in.CandidateID)
	}
	if len(in.Details) > 0 {
		builder.SetDetails(in.Details)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record operation: %w", err)
	}

	if err := s.store.Mirror().OperationLog(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// ListByJob returns a job's operation log in insertion order.
func (s *AuditService) ListByJob(ctx context.Context, jobID string) ([]*ent.OperationLog, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	rows, err := s.store.Reader().OperationLog.Query().
		Where(operationlog.JobID(jobID)).
		Order(ent.Asc(operationlog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operation logs: %w", err)
	}
	return rows, nil
}

// ListByJobCandidate returns the newest log entries touching a candidate on
// a job, newest first, bounded by limit.
func (s *AuditService) ListByJobCandidate(ctx context.Context, jobID, candidateID string, limit int) ([]*ent.OperationLog, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.store.Reader().OperationLog.Query().
		Where(operationlog.JobID(jobID), operationlog.CandidateID(candidateID)).
		Order(ent.Desc(operationlog.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operation logs: %w", err)
	}
	return rows, nil
}

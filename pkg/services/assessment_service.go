package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/agentassessment"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/store"
)

// UpsertAssessmentInput contains one agent verdict for a candidate at a
// stage. The (job, candidate, agent, stage) tuple is unique; a repeat
// upsert replaces the verdict.
type UpsertAssessmentInput struct {
	JobID       string
	CandidateID string
	AgentKey    string
	StageKey    string
	Score       *float64
	Status      string
	Reason      string
	Details     map[string]any
}

// AssessmentService persists per-agent verdicts and builds scorecards.
type AssessmentService struct {
	store *store.Switchboard
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(sb *store.Switchboard) *AssessmentService {
	if sb == nil {
		panic("NewAssessmentService: store must not be nil")
	}
	return &AssessmentService{store: sb}
}

// UpsertAssessment writes one verdict, replacing any prior verdict of the
// same agent at the same stage.
func (s *AssessmentService) UpsertAssessment(ctx context.Context, in UpsertAssessmentInput) (*ent.AgentAssessment, error) {
	if in.JobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if in.CandidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	if in.StageKey == "" {
		return nil, NewValidationError("stage_key", "stage key is required")
	}
	agentKey := agentassessment.AgentKey(in.AgentKey)
	if err := agentassessment.AgentKeyValidator(agentKey); err != nil {
		return nil, NewValidationError("agent_key", fmt.Sprintf("unknown agent %q", in.AgentKey))
	}
	if in.Score != nil && (*in.Score < 0 || *in.Score > 100) {
		return nil, NewValidationError("score", "score must be in [0,100]")
	}

	builder := s.store.Writer().AgentAssessment.Create().
		SetID(uuid.New().String()).
		SetJobID(in.JobID).
		SetCandidateID(in.CandidateID).
		SetAgentKey(agentKey).
		SetStageKey(in.StageKey).
		SetNillableScore(in.Score)
	if in.Status != "" {
		builder.SetStatus(in.Status)
	}
	if in.Reason != "" {
		builder.SetReason(in.Reason)
	}
	if len(in.Details) > 0 {
		builder.SetDetails(in.Details)
	}

	err := builder.
		OnConflictColumns(
			agentassessment.FieldJobID,
			agentassessment.FieldCandidateID,
			agentassessment.FieldAgentKey,
			agentassessment.FieldStageKey,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert assessment: %w", err)
	}

	row, err := s.store.Writer().AgentAssessment.Query().
		Where(
			agentassessment.JobID(in.JobID),
			agentassessment.CandidateID(in.CandidateID),
			agentassessment.AgentKeyEQ(agentKey),
			agentassessment.StageKey(in.StageKey),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read back assessment: %w", err)
	}

	// Replacing a scored verdict with a status-only one drops the score;
	// the conflict update cannot clear unset columns.
	if in.Score == nil && row.Score != nil {
		row, err = s.store.Writer().AgentAssessment.UpdateOneID(row.ID).
			ClearScore().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to clear assessment score: %w", err)
		}
	}

	if err := s.store.Mirror().Assessment(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// Scorecard returns each agent's latest verdict for a candidate on a job.
func (s *AssessmentService) Scorecard(ctx context.Context, jobID, candidateID string) ([]models.ScorecardEntry, error) {
	rows, err := s.ListByJobCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}

	seen := make(map[agentassessment.AgentKey]bool, len(rows))
	var entries []models.ScorecardEntry
	for _, row := range rows {
		if seen[row.AgentKey] {
			continue
		}
		seen[row.AgentKey] = true
		entries = append(entries, models.ScorecardEntry{
			AgentKey: string(row.AgentKey),
			StageKey: row.StageKey,
			Score:    row.Score,
			Status:   row.Status,
			Reason:   row.Reason,
		})
	}
	return entries, nil
}

// ListByJobCandidate returns a candidate's verdicts, newest first.
func (s *AssessmentService) ListByJobCandidate(ctx context.Context, jobID, candidateID string) ([]*ent.AgentAssessment, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	rows, err := s.store.Reader().AgentAssessment.Query().
		Where(agentassessment.JobID(jobID), agentassessment.CandidateID(candidateID)).
		Order(ent.Desc(agentassessment.FieldUpdatedAt), ent.Desc(agentassessment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return rows, nil
}

// ListByJob returns every verdict recorded for a job. The signal engine
// reads these.
func (s *AssessmentService) ListByJob(ctx context.Context, jobID string) ([]*ent.AgentAssessment, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	rows, err := s.store.Reader().AgentAssessment.Query().
		Where(agentassessment.JobID(jobID)).
		Order(ent.Asc(agentassessment.FieldCreatedAt), ent.Asc(agentassessment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job assessments: %w", err)
	}
	return rows, nil
}

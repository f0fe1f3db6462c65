package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/candidate"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/store"
)

// CandidateService handles provider-sourced candidate records. Candidates
// are keyed by provider id: a repeat upsert refreshes whatever fields the
// request carries and leaves the rest untouched.
type CandidateService struct {
	store *store.Switchboard
}

// NewCandidateService creates a new CandidateService.
func NewCandidateService(sb *store.Switchboard) *CandidateService {
	if sb == nil {
		panic("NewCandidateService: store must not be nil")
	}
	return &CandidateService{store: sb}
}

// UpsertCandidate creates or refreshes a candidate by provider id and
// returns the stored row.
func (s *CandidateService) UpsertCandidate(ctx context.Context, req models.UpsertCandidateRequest) (*ent.Candidate, error) {
	if req.ProviderID == "" {
		return nil, NewValidationError("provider_id", "provider id is required")
	}
	if req.FullName == "" {
		return nil, NewValidationError("full_name", "full name is required")
	}

	builder := s.store.Writer().Candidate.Create().
		SetID(uuid.New().String()).
		SetProviderID(req.ProviderID).
		SetFullName(req.FullName)
	if req.Headline != "" {
		builder.SetHeadline(req.Headline)
	}
	if req.Location != "" {
		builder.SetLocation(req.Location)
	}
	if len(req.Languages) > 0 {
		builder.SetLanguages(req.Languages)
	}
	if len(req.Skills) > 0 {
		builder.SetSkills(req.Skills)
	}
	if req.YearsExperience > 0 {
		builder.SetYearsExperience(req.YearsExperience)
	}

	// On conflict the existing id wins (immutable); only the fields set
	// above are refreshed.
	err := builder.
		OnConflictColumns(candidate.FieldProviderID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert candidate: %w", err)
	}

	row, err := s.store.Writer().Candidate.Query().
		Where(candidate.ProviderID(req.ProviderID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read back candidate: %w", err)
	}

	if err := s.store.Mirror().Candidate(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// GetCandidate returns a candidate by id.
func (s *CandidateService) GetCandidate(ctx context.Context, id string) (*ent.Candidate, error) {
	if id == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	row, err := s.store.Reader().Candidate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return row, nil
}

// GetByProviderID returns a candidate by its provider id.
func (s *CandidateService) GetByProviderID(ctx context.Context, providerID string) (*ent.Candidate, error) {
	if providerID == "" {
		return nil, NewValidationError("provider_id", "provider id is required")
	}
	row, err := s.store.Reader().Candidate.Query().
		Where(candidate.ProviderID(providerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate by provider id: %w", err)
	}
	return row, nil
}

// ListByIDs returns the candidates for the given ids, preserving input
// order. Missing ids are skipped.
func (s *CandidateService) ListByIDs(ctx context.Context, ids []string) ([]*ent.Candidate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.store.Reader().Candidate.Query().
		Where(candidate.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	byID := make(map[string]*ent.Candidate, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	out := make([]*ent.Candidate, 0, len(rows))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

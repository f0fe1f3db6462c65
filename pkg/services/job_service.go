package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/store"
)

// JobService handles job creation, lookup, and updates. Jobs are the root
// aggregate and are never deleted.
type JobService struct {
	store *store.Switchboard
}

// NewJobService creates a new JobService.
func NewJobService(sb *store.Switchboard) *JobService {
	if sb == nil {
		panic("NewJobService: store must not be nil")
	}
	return &JobService{store: sb}
}

// CreateJob persists a new job. The id is client-assigned when given,
// generated otherwise.
func (s *JobService) CreateJob(ctx context.Context, req models.CreateJobRequest) (*ent.Job, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if req.JDText == "" {
		return nil, NewValidationError("jd_text", "job description text is required")
	}
	routing := job.RoutingMode(req.RoutingMode)
	if req.RoutingMode == "" {
		routing = job.RoutingModeAuto
	} else if err := job.RoutingModeValidator(routing); err != nil {
		return nil, NewValidationError("routing_mode", "must be auto or manual")
	}

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	builder := s.store.Writer().Job.Create().
		SetID(id).
		SetTitle(req.Title).
		SetJdText(req.JDText).
		SetRoutingMode(routing)
	if req.Location != "" {
		builder.SetLocation(req.Location)
	}
	if len(req.PreferredLanguages) > 0 {
		builder.SetPreferredLanguages(req.PreferredLanguages)
	}
	if req.Seniority != "" {
		builder.SetSeniority(req.Seniority)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := s.store.Mirror().Job(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// GetJob returns a job by id.
func (s *JobService) GetJob(ctx context.Context, id string) (*ent.Job, error) {
	if id == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	row, err := s.store.Reader().Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return row, nil
}

// ListJobs returns jobs matching the filters, newest first.
func (s *JobService) ListJobs(ctx context.Context, filters models.JobFilters) (*models.JobListResponse, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	query := s.store.Reader().Job.Query()
	if filters.RoutingMode != "" {
		routing := job.RoutingMode(filters.RoutingMode)
		if err := job.RoutingModeValidator(routing); err != nil {
			return nil, NewValidationError("routing_mode", "must be auto or manual")
		}
		query = query.Where(job.RoutingModeEQ(routing))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(job.CreatedAtGT(*filters.CreatedAfter))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &models.JobListResponse{
		Jobs:       rows,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateJob applies the non-nil fields of the request.
func (s *JobService) UpdateJob(ctx context.Context, id string, req models.UpdateJobRequest) (*ent.Job, error) {
	if id == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}

	update := s.store.Writer().Job.UpdateOneID(id)
	if req.JDText != nil {
		if *req.JDText == "" {
			return nil, NewValidationError("jd_text", "job description text cannot be emptied")
		}
		update.SetJdText(*req.JDText)
	}
	if req.RoutingMode != nil {
		routing := job.RoutingMode(*req.RoutingMode)
		if err := job.RoutingModeValidator(routing); err != nil {
			return nil, NewValidationError("routing_mode", "must be auto or manual")
		}
		update.SetRoutingMode(routing)
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	if err := s.store.Mirror().Job(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/pkg/models"
)

func TestJobService_CreateJob(t *testing.T) {
	sb := newTestStore(t)
	svc := NewJobService(sb)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		created, err := svc.CreateJob(ctx, models.CreateJobRequest{
			Title:  "Platform Engineer",
			JDText: "Kubernetes, Terraform",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, job.RoutingModeAuto, created.RoutingMode)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("honors client-assigned id", func(t *testing.T) {
		created, err := svc.CreateJob(ctx, models.CreateJobRequest{
			ID:          "job-custom",
			Title:       "Data Engineer",
			JDText:      "Spark, Airflow",
			RoutingMode: "manual",
		})
		require.NoError(t, err)
		assert.Equal(t, "job-custom", created.ID)
		assert.Equal(t, job.RoutingModeManual, created.RoutingMode)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, models.CreateJobRequest{
			ID:     "job-custom",
			Title:  "Duplicate",
			JDText: "text",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, models.CreateJobRequest{JDText: "text"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateJob(ctx, models.CreateJobRequest{Title: "t"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateJob(ctx, models.CreateJobRequest{
			Title: "t", JDText: "x", RoutingMode: "roundrobin",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_GetAndUpdate(t *testing.T) {
	sb := newTestStore(t)
	svc := NewJobService(sb)
	ctx := context.Background()
	seeded := seedTestJob(t, sb)

	t.Run("gets by id", func(t *testing.T) {
		got, err := svc.GetJob(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", got.Title)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := svc.GetJob(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("updates only provided fields", func(t *testing.T) {
		jd := "Go, Postgres, Kafka"
		updated, err := svc.UpdateJob(ctx, seeded.ID, models.UpdateJobRequest{JDText: &jd})
		require.NoError(t, err)
		assert.Equal(t, jd, updated.JdText)
		assert.Equal(t, seeded.RoutingMode, updated.RoutingMode)
	})

	t.Run("rejects emptied jd text", func(t *testing.T) {
		empty := ""
		_, err := svc.UpdateJob(ctx, seeded.ID, models.UpdateJobRequest{JDText: &empty})
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_ListJobs(t *testing.T) {
	sb := newTestStore(t)
	svc := NewJobService(sb)
	ctx := context.Background()

	for _, req := range []models.CreateJobRequest{
		{ID: "job-a", Title: "A", JDText: "a", RoutingMode: "auto"},
		{ID: "job-b", Title: "B", JDText: "b", RoutingMode: "manual"},
		{ID: "job-c", Title: "C", JDText: "c", RoutingMode: "auto"},
	} {
		_, err := svc.CreateJob(ctx, req)
		require.NoError(t, err)
	}

	t.Run("lists all with total", func(t *testing.T) {
		resp, err := svc.ListJobs(ctx, models.JobFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Jobs, 3)
	})

	t.Run("filters by routing mode", func(t *testing.T) {
		resp, err := svc.ListJobs(ctx, models.JobFilters{RoutingMode: "manual"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, "job-b", resp.Jobs[0].ID)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := svc.ListJobs(ctx, models.JobFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Jobs, 2)

		resp, err = svc.ListJobs(ctx, models.JobFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Jobs, 1)
	})
}

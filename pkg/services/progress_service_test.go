package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/pkg/models"
)

func TestProgressService_StepLifecycle(t *testing.T) {
	sb := newTestStore(t)
	svc := NewProgressService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)

	t.Run("start, complete, and re-run", func(t *testing.T) {
		started, err := svc.StartStep(ctx, seededJob.ID, models.StepSource)
		require.NoError(t, err)
		assert.Equal(t, jobstepprogress.StatusRunning, started.Status)
		assert.NotNil(t, started.StartedAt)
		assert.Nil(t, started.CompletedAt)

		completed, err := svc.CompleteStep(ctx, seededJob.ID, models.StepSource, map[string]any{"found": 12})
		require.NoError(t, err)
		assert.Equal(t, started.ID, completed.ID)
		assert.Equal(t, jobstepprogress.StatusCompleted, completed.Status)
		assert.NotNil(t, completed.CompletedAt)

		// Re-running reuses the row and resets completion.
		rerun, err := svc.StartStep(ctx, seededJob.ID, models.StepSource)
		require.NoError(t, err)
		assert.Equal(t, started.ID, rerun.ID)
		assert.Equal(t, jobstepprogress.StatusRunning, rerun.Status)
		assert.Nil(t, rerun.CompletedAt)
	})

	t.Run("failure records the error", func(t *testing.T) {
		failed, err := svc.FailStep(ctx, seededJob.ID, models.StepEnrich, "provider timeout")
		require.NoError(t, err)
		assert.Equal(t, jobstepprogress.StatusFailed, failed.Status)
		assert.Equal(t, "provider timeout", failed.LastError)
	})

	t.Run("lists steps in creation order", func(t *testing.T) {
		rows, err := svc.ListByJob(ctx, seededJob.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, models.StepSource, rows[0].Step)
		assert.Equal(t, models.StepEnrich, rows[1].Step)
	})

	t.Run("missing job is not found", func(t *testing.T) {
		_, err := svc.StartStep(ctx, "missing", models.StepSource)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

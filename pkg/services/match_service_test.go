package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/match"
)

func TestMatchService_EnsureMatch(t *testing.T) {
	sb := newTestStore(t)
	svc := NewMatchService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-match")

	t.Run("creates one match per pair", func(t *testing.T) {
		created, err := svc.EnsureMatch(ctx, seededJob.ID, cand.ID, 72.5, "sourced", map[string]any{
			"source_query": "golang berlin",
		})
		require.NoError(t, err)
		assert.Equal(t, 72.5, created.Score)
		assert.Equal(t, match.StatusSourced, created.Status)

		again, err := svc.EnsureMatch(ctx, seededJob.ID, cand.ID, 80.0, "verified", nil)
		require.NoError(t, err)
		assert.Equal(t, created.ID, again.ID)
		assert.Equal(t, 80.0, again.Score)
		assert.Equal(t, match.StatusVerified, again.Status)
	})

	t.Run("notes merge additively across stages", func(t *testing.T) {
		updated, err := svc.MergeNotes(ctx, seededJob.ID, cand.ID, map[string]any{
			"verify_explanation": "skills score 0.8",
		})
		require.NoError(t, err)
		assert.Equal(t, "golang berlin", updated.VerificationNotes["source_query"])
		assert.Equal(t, "skills score 0.8", updated.VerificationNotes["verify_explanation"])

		// Re-merging an existing key overwrites only that key.
		updated, err = svc.MergeNotes(ctx, seededJob.ID, cand.ID, map[string]any{
			"verify_explanation": "skills score 0.9",
		})
		require.NoError(t, err)
		assert.Equal(t, "golang berlin", updated.VerificationNotes["source_query"])
		assert.Equal(t, "skills score 0.9", updated.VerificationNotes["verify_explanation"])
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.EnsureMatch(ctx, seededJob.ID, cand.ID, 10, "promoted", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("status update on missing pair is not found", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, seededJob.ID, "missing", "verified")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMatchService_ListByJob(t *testing.T) {
	sb := newTestStore(t)
	svc := NewMatchService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	low := seedTestCandidate(t, sb, "prov-low")
	mid := seedTestCandidate(t, sb, "prov-mid")
	high := seedTestCandidate(t, sb, "prov-high")

	_, err := svc.EnsureMatch(ctx, seededJob.ID, low.ID, 40, "rejected", nil)
	require.NoError(t, err)
	_, err = svc.EnsureMatch(ctx, seededJob.ID, mid.ID, 66, "verified", nil)
	require.NoError(t, err)
	_, err = svc.EnsureMatch(ctx, seededJob.ID, high.ID, 91, "outreached", nil)
	require.NoError(t, err)

	t.Run("orders by score descending", func(t *testing.T) {
		rows, err := svc.ListByJob(ctx, seededJob.ID, nil, nil)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, high.ID, rows[0].CandidateID)
		assert.Equal(t, mid.ID, rows[1].CandidateID)
		assert.Equal(t, low.ID, rows[2].CandidateID)
	})

	t.Run("filters by status and min score", func(t *testing.T) {
		rows, err := svc.ListByJob(ctx, seededJob.ID, []string{"verified", "outreached"}, nil)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		minScore := 70.0
		rows, err = svc.ListByJob(ctx, seededJob.ID, nil, &minScore)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, high.ID, rows[0].CandidateID)
	})
}

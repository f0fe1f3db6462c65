package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentService_UpsertAssessment(t *testing.T) {
	sb := newTestStore(t)
	svc := NewAssessmentService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-assess")

	t.Run("replaces verdict for same tuple", func(t *testing.T) {
		score := 62.0
		first, err := svc.UpsertAssessment(ctx, UpsertAssessmentInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			AgentKey:    "sourcing_vetting",
			StageKey:    "verify",
			Score:       &score,
			Reason:      "solid backend profile",
		})
		require.NoError(t, err)
		require.NotNil(t, first.Score)
		assert.Equal(t, 62.0, *first.Score)

		better := 78.0
		second, err := svc.UpsertAssessment(ctx, UpsertAssessmentInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			AgentKey:    "sourcing_vetting",
			StageKey:    "verify",
			Score:       &better,
			Reason:      "resume confirms depth",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 78.0, *second.Score)
		assert.Equal(t, "resume confirms depth", second.Reason)
	})

	t.Run("status-only verdict clears a prior score", func(t *testing.T) {
		cleared, err := svc.UpsertAssessment(ctx, UpsertAssessmentInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			AgentKey:    "sourcing_vetting",
			StageKey:    "verify",
			Status:      "skipped",
			Reason:      "resume pending",
		})
		require.NoError(t, err)
		assert.Nil(t, cleared.Score)
		assert.Equal(t, "skipped", cleared.Status)
	})

	t.Run("validates agent and score range", func(t *testing.T) {
		_, err := svc.UpsertAssessment(ctx, UpsertAssessmentInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			AgentKey:    "oracle",
			StageKey:    "verify",
		})
		assert.True(t, IsValidationError(err))

		bad := 120.0
		_, err = svc.UpsertAssessment(ctx, UpsertAssessmentInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			AgentKey:    "communication",
			StageKey:    "outreach",
			Score:       &bad,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestAssessmentService_Scorecard(t *testing.T) {
	sb := newTestStore(t)
	svc := NewAssessmentService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-scorecard")

	upsert := func(agent, stage string, score float64) {
		t.Helper()
		_, err := svc.UpsertAssessment(ctx, UpsertAssessmentInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			AgentKey:    agent,
			StageKey:    stage,
			Score:       &score,
		})
		require.NoError(t, err)
	}

	upsert("sourcing_vetting", "verify", 70)
	upsert("communication", "outreach", 55)
	// Newer verdict from the same agent at a later stage wins the card.
	upsert("sourcing_vetting", "resume_review", 82)

	card, err := svc.Scorecard(ctx, seededJob.ID, cand.ID)
	require.NoError(t, err)
	require.Len(t, card, 2)

	byAgent := make(map[string]float64, len(card))
	for _, entry := range card {
		require.NotNil(t, entry.Score)
		byAgent[entry.AgentKey] = *entry.Score
	}
	assert.Equal(t, 82.0, byAgent["sourcing_vetting"])
	assert.Equal(t, 55.0, byAgent["communication"])
}

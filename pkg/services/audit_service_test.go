package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_Record(t *testing.T) {
	sb := newTestStore(t)
	svc := NewAuditService(sb)
	ctx := context.Background()

	t.Run("records with default status", func(t *testing.T) {
		row, err := svc.Record(ctx, RecordOperationInput{
			Operation:   "agent.sourcing_vetting.verify",
			JobID:       "job-1",
			CandidateID: "cand-1",
			EntityType:  "match",
			EntityID:    "match-1",
			Details:     map[string]any{"score": 71.5},
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", row.Status)
		assert.Positive(t, row.ID)
	})

	t.Run("requires an operation name", func(t *testing.T) {
		_, err := svc.Record(ctx, RecordOperationInput{Status: "error"})
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_Listing(t *testing.T) {
	sb := newTestStore(t)
	svc := NewAuditService(sb)
	ctx := context.Background()

	for _, in := range []RecordOperationInput{
		{Operation: "scheduler.followup.send", JobID: "job-1", CandidateID: "cand-1"},
		{Operation: "poll.chat.fetch", JobID: "job-1", CandidateID: "cand-2", Status: "error"},
		{Operation: "agent.communication.compose", JobID: "job-1", CandidateID: "cand-1"},
		{Operation: "agent.communication.compose", JobID: "job-2", CandidateID: "cand-9"},
	} {
		_, err := svc.Record(ctx, in)
		require.NoError(t, err)
	}

	byJob, err := svc.ListByJob(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, byJob, 3)
	assert.Equal(t, "scheduler.followup.send", byJob[0].Operation)

	byCandidate, err := svc.ListByJobCandidate(ctx, "job-1", "cand-1", 0)
	require.NoError(t, err)
	require.Len(t, byCandidate, 2)
	// Newest first for the timeline.
	assert.Equal(t, "agent.communication.compose", byCandidate[0].Operation)
}

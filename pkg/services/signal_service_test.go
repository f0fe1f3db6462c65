package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalService_UpsertSignal(t *testing.T) {
	sb := newTestStore(t)
	svc := NewSignalService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-signal")

	base := UpsertSignalInput{
		JobID:       seededJob.ID,
		CandidateID: cand.ID,
		SourceType:  "assessment",
		SourceID:    "assessment-1",
		SignalType:  "verdict",
		Category:    "evaluative",
		Title:       "Sourcing verdict",
		Impact:      0.8,
		Confidence:  0.8,
		ObservedAt:  time.Now(),
	}

	t.Run("creates then refreshes by source tuple", func(t *testing.T) {
		row, created, err := svc.UpsertSignal(ctx, base)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 0.8, row.Impact)

		refreshed := base
		refreshed.Impact = 1.1
		refreshed.Title = "Sourcing verdict (revised)"
		row2, created, err := svc.UpsertSignal(ctx, refreshed)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, row.ID, row2.ID)
		assert.Equal(t, 1.1, row2.Impact)
		assert.Equal(t, "Sourcing verdict (revised)", row2.Title)

		count, err := sb.Writer().CandidateSignal.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("different source id is a new signal", func(t *testing.T) {
		next := base
		next.SourceID = "assessment-2"
		_, created, err := svc.UpsertSignal(ctx, next)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("validates source type", func(t *testing.T) {
		bad := base
		bad.SourceType = "gossip"
		_, _, err := svc.UpsertSignal(ctx, bad)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing job is not found", func(t *testing.T) {
		orphan := base
		orphan.JobID = "missing"
		orphan.SourceID = "assessment-3"
		_, _, err := svc.UpsertSignal(ctx, orphan)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSignalService_Listing(t *testing.T) {
	sb := newTestStore(t)
	svc := NewSignalService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-siglist")
	now := time.Now().UTC()

	for i, in := range []UpsertSignalInput{
		{SourceType: "assessment", SourceID: "a-1", SignalType: "verdict", Category: "evaluative", Title: "first", ObservedAt: now.Add(-2 * time.Hour)},
		{SourceType: "pre_resume_event", SourceID: "e-1", SignalType: "reply", Category: "evaluative", Title: "second", ObservedAt: now.Add(-1 * time.Hour)},
		{SourceType: "operation_log", SourceID: "o-1", SignalType: "failure", Category: "administrative", Title: "third", ObservedAt: now},
	} {
		in.JobID = seededJob.ID
		in.CandidateID = cand.ID
		_, created, err := svc.UpsertSignal(ctx, in)
		require.NoError(t, err, "signal %d", i)
		require.True(t, created)
	}

	rows, err := svc.ListByJob(ctx, seededJob.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0].Title)

	newest, err := svc.ListByJobCandidate(ctx, seededJob.ID, cand.ID, 2)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, "third", newest[0].Title)
	assert.Equal(t, "second", newest[1].Title)
}

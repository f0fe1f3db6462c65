package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/outboundaction"
)

func TestOutboundService_EnqueueAction(t *testing.T) {
	sb := newTestStore(t)
	svc := NewOutboundService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-outbound")
	conv := seedTestConversation(t, sb, seededJob.ID, cand.ID)

	t.Run("enqueues once per open conversation and kind", func(t *testing.T) {
		action, created, err := svc.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			ConversationID: conv.ID,
			Kind:           "message",
			Payload:        map[string]any{"text": "Hi Dana"},
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, outboundaction.StatusPending, action.Status)

		replay, created, err := svc.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			ConversationID: conv.ID,
			Kind:           "message",
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, action.ID, replay.ID)
	})

	t.Run("different kind enqueues separately", func(t *testing.T) {
		_, created, err := svc.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			ConversationID: conv.ID,
			Kind:           "connect_request",
		})
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("closed action frees the slot", func(t *testing.T) {
		open, _, err := svc.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			ConversationID: conv.ID,
			Kind:           "message",
		})
		require.NoError(t, err)

		err = sb.Writer().OutboundAction.UpdateOneID(open.ID).
			SetStatus(outboundaction.StatusCompleted).
			Exec(ctx)
		require.NoError(t, err)

		fresh, created, err := svc.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			ConversationID: conv.ID,
			Kind:           "message",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, open.ID, fresh.ID)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, _, err := svc.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			ConversationID: conv.ID,
			Kind:           "carrier_pigeon",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestOutboundService_ListByStatus(t *testing.T) {
	sb := newTestStore(t)
	svc := NewOutboundService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	first := seedTestCandidate(t, sb, "prov-q1")
	second := seedTestCandidate(t, sb, "prov-q2")

	for _, cand := range []string{first.ID, second.ID} {
		conv := seedTestConversation(t, sb, seededJob.ID, cand)
		_, _, err := svc.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand,
			ConversationID: conv.ID,
			Kind:           "message",
		})
		require.NoError(t, err)
	}

	rows, err := svc.ListByStatus(ctx, []string{"pending"}, seededJob.ID, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.ListByStatus(ctx, []string{"deferred"}, seededJob.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = svc.ListByStatus(ctx, []string{"snoozed"}, "", 0)
	assert.True(t, IsValidationError(err))
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/conversation"
)

func TestConversationService_EnsureConversation(t *testing.T) {
	sb := newTestStore(t)
	svc := NewConversationService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-conv")

	first, err := svc.EnsureConversation(ctx, seededJob.ID, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusActive, first.Status)

	// Repeat returns the existing thread, no duplicate.
	second, err := svc.EnsureConversation(ctx, seededJob.ID, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := sb.Writer().Conversation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestConversationService_BindExternalChatID(t *testing.T) {
	sb := newTestStore(t)
	svc := NewConversationService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-bind")
	conv := seedTestConversation(t, sb, seededJob.ID, cand.ID)

	t.Run("binds and is idempotent", func(t *testing.T) {
		bound, err := svc.BindExternalChatID(ctx, conv.ID, "chat-42")
		require.NoError(t, err)
		require.NotNil(t, bound.ExternalChatID)
		assert.Equal(t, "chat-42", *bound.ExternalChatID)

		again, err := svc.BindExternalChatID(ctx, conv.ID, "chat-42")
		require.NoError(t, err)
		assert.Equal(t, "chat-42", *again.ExternalChatID)
	})

	t.Run("transfers binding between threads of one candidate", func(t *testing.T) {
		// A newer thread for the same pair, created directly since
		// EnsureConversation returns the existing one.
		newer, err := sb.Writer().Conversation.Create().
			SetID(uuid.New().String()).
			SetJobID(seededJob.ID).
			SetCandidateID(cand.ID).
			Save(ctx)
		require.NoError(t, err)

		bound, err := svc.BindExternalChatID(ctx, newer.ID, "chat-42")
		require.NoError(t, err)
		assert.Equal(t, "chat-42", *bound.ExternalChatID)

		old, err := svc.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		assert.Nil(t, old.ExternalChatID)

		byChat, err := svc.GetByExternalChatID(ctx, "chat-42")
		require.NoError(t, err)
		assert.Equal(t, newer.ID, byChat.ID)
	})

	t.Run("rejects chat id held by another candidate", func(t *testing.T) {
		other := seedTestCandidate(t, sb, "prov-bind-other")
		otherConv := seedTestConversation(t, sb, seededJob.ID, other.ID)

		_, err := svc.BindExternalChatID(ctx, otherConv.ID, "chat-42")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing conversation is not found", func(t *testing.T) {
		_, err := svc.BindExternalChatID(ctx, "missing", "chat-9")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_StatusAndActivity(t *testing.T) {
	sb := newTestStore(t)
	svc := NewConversationService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-status")
	conv := seedTestConversation(t, sb, seededJob.ID, cand.ID)

	updated, err := svc.SetStatus(ctx, conv.ID, "waiting_connection")
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusWaitingConnection, updated.Status)

	_, err = svc.SetStatus(ctx, conv.ID, "archived")
	assert.True(t, IsValidationError(err))

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	require.NoError(t, svc.TouchLastMessage(ctx, conv.ID, at))
	got, err := svc.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastMessageAt)
	assert.True(t, got.LastMessageAt.Equal(at))
}

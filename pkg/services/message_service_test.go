package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/message"
)

func TestMessageService_AddMessage(t *testing.T) {
	sb := newTestStore(t)
	svc := NewMessageService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-msg")
	conv := seedTestConversation(t, sb, seededJob.ID, cand.ID)

	t.Run("appends and touches conversation", func(t *testing.T) {
		msg, created, err := svc.AddMessage(ctx, AddMessageInput{
			ConversationID: conv.ID,
			Direction:      "outbound",
			Language:       "en",
			Content:        "Hi Dana, saw your Go work",
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, message.DirectionOutbound, msg.Direction)

		got, err := NewConversationService(sb).GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastMessageAt)
		assert.True(t, got.LastMessageAt.Equal(msg.CreatedAt))
	})

	t.Run("dedupes by provider message id", func(t *testing.T) {
		first, created, err := svc.AddMessage(ctx, AddMessageInput{
			ConversationID: conv.ID,
			Direction:      "inbound",
			Content:        "Thanks for reaching out",
			Meta:           map[string]any{"provider_message_id": "pm-1"},
		})
		require.NoError(t, err)
		assert.True(t, created)

		replay, created, err := svc.AddMessage(ctx, AddMessageInput{
			ConversationID: conv.ID,
			Direction:      "inbound",
			Content:        "Thanks for reaching out",
			Meta:           map[string]any{"provider_message_id": "pm-1"},
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, replay.ID)

		seen, err := svc.HasProviderMessage(ctx, conv.ID, "pm-1")
		require.NoError(t, err)
		assert.True(t, seen)
		seen, err = svc.HasProviderMessage(ctx, conv.ID, "pm-2")
		require.NoError(t, err)
		assert.False(t, seen)
	})

	t.Run("missing conversation is not found", func(t *testing.T) {
		_, _, err := svc.AddMessage(ctx, AddMessageInput{
			ConversationID: "missing",
			Direction:      "inbound",
			Content:        "hello",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates direction", func(t *testing.T) {
		_, _, err := svc.AddMessage(ctx, AddMessageInput{
			ConversationID: conv.ID,
			Direction:      "sideways",
			Content:        "hello",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestMessageService_ListMessages(t *testing.T) {
	sb := newTestStore(t)
	svc := NewMessageService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-list")
	conv := seedTestConversation(t, sb, seededJob.ID, cand.ID)

	for i := 1; i <= 5; i++ {
		_, _, err := svc.AddMessage(ctx, AddMessageInput{
			ConversationID: conv.ID,
			Direction:      "inbound",
			Content:        fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	t.Run("full history oldest first", func(t *testing.T) {
		rows, err := svc.ListMessages(ctx, conv.ID, 0)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, "message 1", rows[0].Content)
		assert.Equal(t, "message 5", rows[4].Content)
	})

	t.Run("limit keeps newest rows oldest first", func(t *testing.T) {
		rows, err := svc.ListMessages(ctx, conv.ID, 3)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "message 3", rows[0].Content)
		assert.Equal(t, "message 5", rows[2].Content)
	})
}

package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/provider"
)

func TestPollInboundRoutesNewMessages(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	candidateID, conv := f.outreached(t, job.ID)
	_, err := f.conversations.BindExternalChatID(context.Background(), conv.ID, "chat-9")
	require.NoError(t, err)

	f.fake.ChatMessages["chat-9"] = []provider.ChatMessage{
		{ProviderMessageID: "m1", Direction: "inbound", Text: "i will send it later"},
		{ProviderMessageID: "m2", Direction: "outbound", Text: "our own reply"},
		{ProviderMessageID: "m3", Direction: "inbound", Attachments: []provider.Attachment{
			{Name: "Ada Resume.pdf", URL: "https://files.example.com/abc123"},
		}},
	}

	report, err := f.engine.PollInbound(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Conversations)
	assert.Equal(t, 3, report.Fetched)
	assert.Equal(t, 2, report.NewInbound)
	assert.Equal(t, 0, report.Failed)

	for _, id := range []string{"m1", "m3"} {
		seen, err := f.messages.HasProviderMessage(context.Background(), conv.ID, id)
		require.NoError(t, err)
		assert.True(t, seen, "message %s should be recorded", id)
	}

	// The attachment synthesized a resume share.
	session, err := f.sessions.GetByConversation(context.Background(), conv.ID)
	require.NoError(t, err)
	assert.Equal(t, preresume.StatusResumeReceived, string(session.Status))

	match, err := f.matches.GetByJobCandidate(context.Background(), job.ID, candidateID)
	require.NoError(t, err)
	assert.Equal(t, "resume_received", string(match.Status))

	logs := f.auditRows(t, "poll.inbound")
	require.Len(t, logs, 1)
	assert.Equal(t, candidateID, logs[0].CandidateID)
}

func TestPollInboundDedupesOnReplay(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	_, conv := f.outreached(t, job.ID)
	_, err := f.conversations.BindExternalChatID(context.Background(), conv.ID, "chat-9")
	require.NoError(t, err)

	f.fake.ChatMessages["chat-9"] = []provider.ChatMessage{
		{ProviderMessageID: "m1", Direction: "inbound", Text: "what is the salary?"},
	}

	first, err := f.engine.PollInbound(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, first.NewInbound)

	second, err := f.engine.PollInbound(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, second.NewInbound)

	msgs, err := f.messages.ListMessages(context.Background(), conv.ID, 20)
	require.NoError(t, err)
	inbound := 0
	for _, m := range msgs {
		if string(m.Direction) == "inbound" {
			inbound++
		}
	}
	assert.Equal(t, 1, inbound)
}

func TestPollInboundIgnoresNonResumeAttachments(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	_, conv := f.outreached(t, job.ID)
	_, err := f.conversations.BindExternalChatID(context.Background(), conv.ID, "chat-9")
	require.NoError(t, err)

	f.fake.ChatMessages["chat-9"] = []provider.ChatMessage{
		{ProviderMessageID: "m1", Direction: "inbound", Attachments: []provider.Attachment{
			{Name: "photo.png", URL: "https://files.example.com/photo.png"},
		}},
	}

	report, err := f.engine.PollInbound(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, report.NewInbound)
}

func TestPollInboundSkipsUnboundConversations(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	f.outreached(t, job.ID)

	report, err := f.engine.PollInbound(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Conversations)
}

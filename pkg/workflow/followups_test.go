package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
)

// dueSession opens a session directly on a fresh conversation and rewinds
// its next follow-up time so the sweep picks it up.
func (f *workflowFixture) dueSession(t *testing.T, jobID string) (*ent.PreResumeSession, *ent.Conversation, *ent.Candidate) {
	t.Helper()
	cand, err := f.candidates.UpsertCandidate(context.Background(), models.UpsertCandidateRequest{
		ProviderID: "p1",
		FullName:   "Ada Example",
		Languages:  []string{"en"},
	})
	require.NoError(t, err)
	conv, err := f.conversations.EnsureConversation(context.Background(), jobID, cand.ID)
	require.NoError(t, err)

	res, err := f.manager.StartSession(context.Background(), preresume.StartSessionInput{
		ConversationID: conv.ID,
		JobID:          jobID,
		CandidateID:    cand.ID,
		CandidateName:  "Ada",
		JobTitle:       "Backend Engineer",
		Language:       "en",
	})
	require.NoError(t, err)

	past := workflowNow.Add(-time.Hour)
	session, err := f.sb.Writer().PreResumeSession.UpdateOneID(res.Session.ID).
		SetNextFollowupAt(past).
		Save(context.Background())
	require.NoError(t, err)
	return session, conv, cand
}

func TestFollowupTickEnqueuesWhenUnbound(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	session, conv, _ := f.dueSession(t, job.ID)

	report, err := f.engine.FollowupTick(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Due)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Enqueued)
	assert.Equal(t, 0, report.Delivered)
	assert.Equal(t, 0, report.Failed)

	msgs, err := f.messages.ListMessages(context.Background(), conv.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "followup", msgs[0].Meta["type"])

	actions, err := f.queue.ListByStatus(context.Background(), []string{string(outboundaction.StatusPending)}, job.ID, 10)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "followup", actions[0].Payload["purpose"])

	fresh, err := f.sessions.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.FollowupsSent)
}

func TestFollowupTickDeliversWhenBound(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	session, conv, _ := f.dueSession(t, job.ID)
	_, err := f.conversations.SetAccount(context.Background(), conv.ID, "acc-1")
	require.NoError(t, err)

	report, err := f.engine.FollowupTick(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 0, report.Enqueued)

	sent := f.fake.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "acc-1", sent[0].AccountID)
	assert.Equal(t, "p1", sent[0].ProviderID)

	// The delivery's chat id lands on the conversation.
	fresh, err := f.conversations.GetConversation(context.Background(), conv.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.ExternalChatID)
	assert.Equal(t, sent[0].ChatID, *fresh.ExternalChatID)
	assert.NotNil(t, fresh.LastMessageAt)

	logs := f.auditRows(t, "scheduler.followup")
	require.Len(t, logs, 1)
	assert.Equal(t, "sent", logs[0].Status)
	assert.Equal(t, session.CandidateID, logs[0].CandidateID)
}

func TestFollowupTickMarksUnreachableOnNoConnection(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	session, conv, _ := f.dueSession(t, job.ID)
	_, err := f.conversations.SetAccount(context.Background(), conv.ID, "acc-1")
	require.NoError(t, err)
	f.fake.Disconnected["p1"] = true

	report, err := f.engine.FollowupTick(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Delivered)

	fresh, err := f.sessions.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, preresume.StatusUnreachable, string(fresh.Status))

	logs := f.auditRows(t, "scheduler.followup")
	require.Len(t, logs, 1)
	assert.Equal(t, "error", logs[0].Status)
}

func TestFollowupTickSkipsExhaustedSessions(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	job := f.seedJob(t)
	session, conv, _ := f.dueSession(t, job.ID)

	// Cap already reached; the sweep must stall the session, not send.
	_, err := f.sb.Writer().PreResumeSession.UpdateOneID(session.ID).
		SetFollowupsSent(3).
		SetState(map[string]any{}).
		Save(context.Background())
	require.NoError(t, err)

	report, err := f.engine.FollowupTick(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Due)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 1, report.Skipped)

	fresh, err := f.sessions.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, preresume.StatusStalled, string(fresh.Status))
	assert.Nil(t, fresh.NextFollowupAt)

	msgs, err := f.messages.ListMessages(context.Background(), conv.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestFollowupTickEmptyWhenNothingDue(t *testing.T) {
	f := newWorkflowFixture(t, nil)
	report, err := f.engine.FollowupTick(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Due)
}

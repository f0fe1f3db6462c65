package preresume

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/preresumesession"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/store"
)

func newTestManager(t *testing.T) (*Manager, *services.SessionService) {
	t.Helper()
	backend, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	sb := store.NewSingle(backend)
	t.Cleanup(func() { _ = sb.Close() })

	sessions := services.NewSessionService(sb)
	return NewManager(nil, sessions, nil, nil), sessions
}

func startTestSession(t *testing.T, mgr *Manager, sessionID string) *StartSessionResult {
	t.Helper()
	res, err := mgr.StartSession(context.Background(), StartSessionInput{
		SessionID:     sessionID,
		JobID:         "job-" + sessionID,
		CandidateID:   "cand-" + sessionID,
		CandidateName: "Alex",
		JobTitle:      "Sr Backend",
		Language:      "en",
	})
	require.NoError(t, err)
	return res
}

func TestManagerStartSession(t *testing.T) {
	mgr, sessions := newTestManager(t)
	ctx := context.Background()

	res := startTestSession(t, mgr, "s1")

	assert.Contains(t, res.Intro, "Alex")
	assert.Equal(t, preresumesession.StatusAwaitingReply, res.Session.Status)
	assert.NotNil(t, res.Session.NextFollowupAt)

	events, err := sessions.ListEvents(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "session_started", string(events[0].EventType))
	assert.Equal(t, res.Intro, events[0].OutboundText)

	// The same pair cannot open a second session.
	_, err = mgr.StartSession(ctx, StartSessionInput{
		SessionID:   "s1-dup",
		JobID:       "job-s1",
		CandidateID: "cand-s1",
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestManagerInboundResumeFlow(t *testing.T) {
	mgr, sessions := newTestManager(t)
	ctx := context.Background()

	startTestSession(t, mgr, "s1")
	outcome, err := mgr.HandleInbound(ctx, "s1", "Here is my resume https://example.com/alex.pdf", time.Now())
	require.NoError(t, err)

	assert.Equal(t, EventInboundProcessed, outcome.Event)
	assert.Equal(t, IntentResumeShared, outcome.Intent)
	assert.Equal(t, []string{"https://example.com/alex.pdf"}, outcome.ResumeLinks)
	assert.NotEmpty(t, outcome.OutboundText)

	row := outcome.Session
	assert.Equal(t, preresumesession.StatusResumeReceived, row.Status)
	assert.Equal(t, []string{"https://example.com/alex.pdf"}, row.ResumeLinks)
	assert.Nil(t, row.NextFollowupAt)
	assert.Equal(t, 1, row.Turns)
	assert.Equal(t, IntentResumeShared, row.LastIntent)

	events, err := sessions.ListEvents(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "inbound_processed", string(events[1].EventType))
	assert.Equal(t, "Here is my resume https://example.com/alex.pdf", events[1].InboundText)

	// Follow-up inbound on the now-terminal session changes nothing.
	ignored, err := mgr.HandleInbound(ctx, "s1", "anything else?", time.Now())
	require.NoError(t, err)
	assert.Equal(t, EventIgnoredTerminal, ignored.Event)

	events, err = sessions.ListEvents(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestManagerInboundOptOut(t *testing.T) {
	mgr, _ := newTestManager(t)

	startTestSession(t, mgr, "s2")
	outcome, err := mgr.HandleInbound(context.Background(), "s2", "not interested", time.Now())
	require.NoError(t, err)

	assert.Equal(t, IntentNotInterested, outcome.Intent)
	assert.Equal(t, preresumesession.StatusNotInterested, outcome.Session.Status)
	assert.Nil(t, outcome.Session.NextFollowupAt)
}

func TestManagerFollowupCap(t *testing.T) {
	mgr, sessions := newTestManager(t)
	ctx := context.Background()

	startTestSession(t, mgr, "s3")

	now := time.Now().UTC()
	for i := 1; i <= 3; i++ {
		row, err := sessions.GetSession(ctx, "s3")
		require.NoError(t, err)
		require.NotNil(t, row.NextFollowupAt, "follow-up %d should be scheduled", i)

		now = row.NextFollowupAt.Add(time.Minute)
		outcome, err := mgr.BuildFollowup(ctx, "s3", now)
		require.NoError(t, err)
		require.True(t, outcome.Sent, "follow-up %d should send", i)
		assert.Equal(t, i, outcome.Session.FollowupsSent)
	}

	row, err := sessions.GetSession(ctx, "s3")
	require.NoError(t, err)
	assert.Equal(t, preresumesession.StatusStalled, row.Status)
	assert.Equal(t, 3, row.FollowupsSent)
	assert.Nil(t, row.NextFollowupAt)

	fourth, err := mgr.BuildFollowup(ctx, "s3", now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, fourth.Sent)
	assert.Equal(t, ReasonMaxFollowups, fourth.Reason)

	// Three sends mean three followup_sent events besides the start event.
	events, err := sessions.ListEvents(ctx, "s3")
	require.NoError(t, err)
	assert.Len(t, events, 4)

	due, err := mgr.ListDueFollowups(ctx, now.Add(24*time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestManagerMarkUnreachable(t *testing.T) {
	mgr, sessions := newTestManager(t)
	ctx := context.Background()

	startTestSession(t, mgr, "s4")
	row, err := mgr.MarkUnreachable(ctx, "s4", "connection dropped", time.Now())
	require.NoError(t, err)

	assert.Equal(t, preresumesession.StatusUnreachable, row.Status)
	require.NotNil(t, row.LastError)
	assert.Equal(t, "connection dropped", *row.LastError)
	assert.Nil(t, row.NextFollowupAt)

	// Repeat is a no-op.
	again, err := mgr.MarkUnreachable(ctx, "s4", "still down", time.Now())
	require.NoError(t, err)
	assert.Equal(t, preresumesession.StatusUnreachable, again.Status)
	assert.Equal(t, "connection dropped", *again.LastError)

	events, err := sessions.ListEvents(ctx, "s4")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestManagerStatePersistsVars(t *testing.T) {
	mgr, sessions := newTestManager(t)
	ctx := context.Background()

	startTestSession(t, mgr, "s5")

	// A restart rebuilds vars from the state blob; the follow-up still
	// renders the candidate name.
	row, err := sessions.GetSession(ctx, "s5")
	require.NoError(t, err)
	outcome, err := mgr.BuildFollowup(ctx, "s5", row.NextFollowupAt.Add(time.Minute))
	require.NoError(t, err)

	require.True(t, outcome.Sent)
	assert.Contains(t, outcome.Text, "Alex")
	assert.Contains(t, outcome.Text, "Sr Backend")
}

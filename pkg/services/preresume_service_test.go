package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/preresumesession"
)

func TestSessionService_CreateSession(t *testing.T) {
	sb := newTestStore(t)
	svc := NewSessionService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-session")
	conv := seedTestConversation(t, sb, seededJob.ID, cand.ID)

	t.Run("opens session with start event", func(t *testing.T) {
		next := time.Now().Add(48 * time.Hour)
		session, err := svc.CreateSession(ctx, CreateSessionInput{
			ConversationID: conv.ID,
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			Language:       "en",
			NextFollowupAt: &next,
			Event: &SessionEventInput{
				EventType:    "session_started",
				OutboundText: "Could you share your resume?",
				Status:       "awaiting_reply",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, preresumesession.StatusAwaitingReply, session.Status)
		assert.Equal(t, 0, session.FollowupsSent)

		events, err := svc.ListEvents(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "session_started", string(events[0].EventType))
		assert.Equal(t, seededJob.ID, events[0].JobID)
	})

	t.Run("rejects second open session for pair", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, CreateSessionInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("terminal session frees the pair", func(t *testing.T) {
		existing, err := svc.GetByConversation(ctx, conv.ID)
		require.NoError(t, err)

		_, err = svc.ApplyTransition(ctx, SessionTransition{
			SessionID:         existing.ID,
			Status:            "not_interested",
			ClearNextFollowup: true,
		})
		require.NoError(t, err)

		reopened, err := svc.CreateSession(ctx, CreateSessionInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
		})
		require.NoError(t, err)
		assert.NotEqual(t, existing.ID, reopened.ID)
	})
}

func TestSessionService_ApplyTransition(t *testing.T) {
	sb := newTestStore(t)
	svc := NewSessionService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	cand := seedTestCandidate(t, sb, "prov-transition")
	session, err := svc.CreateSession(ctx, CreateSessionInput{
		JobID:       seededJob.ID,
		CandidateID: cand.ID,
		Language:    "en",
	})
	require.NoError(t, err)

	t.Run("persists counters, schedule, and event", func(t *testing.T) {
		turns := 1
		next := time.Now().Add(72 * time.Hour).UTC()
		updated, err := svc.ApplyTransition(ctx, SessionTransition{
			SessionID:      session.ID,
			Status:         "engaged_no_resume",
			Turns:          &turns,
			LastIntent:     "question",
			NextFollowupAt: &next,
			Event: &SessionEventInput{
				EventType:   "inbound_processed",
				Intent:      "question",
				InboundText: "What is the salary range?",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, preresumesession.StatusEngagedNoResume, updated.Status)
		assert.Equal(t, 1, updated.Turns)
		assert.Equal(t, "question", updated.LastIntent)
		require.NotNil(t, updated.NextFollowupAt)

		events, err := svc.ListEvents(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "inbound_processed", string(events[0].EventType))
	})

	t.Run("clear removes the schedule", func(t *testing.T) {
		updated, err := svc.ApplyTransition(ctx, SessionTransition{
			SessionID:         session.ID,
			Status:            "resume_received",
			ResumeLinks:       []string{"https://files.example.com/dana.pdf"},
			ClearNextFollowup: true,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.NextFollowupAt)
		assert.Equal(t, []string{"https://files.example.com/dana.pdf"}, updated.ResumeLinks)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.ApplyTransition(ctx, SessionTransition{
			SessionID: session.ID,
			Status:    "ghosted",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_ListDueFollowups(t *testing.T) {
	sb := newTestStore(t)
	svc := NewSessionService(sb)
	ctx := context.Background()

	seededJob := seedTestJob(t, sb)
	now := time.Now().UTC()

	mkSession := func(provID string, due time.Time, status string) *ent.PreResumeSession {
		cand := seedTestCandidate(t, sb, provID)
		session, err := svc.CreateSession(ctx, CreateSessionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			NextFollowupAt: &due,
		})
		require.NoError(t, err)
		if status != "" {
			session, err = svc.ApplyTransition(ctx, SessionTransition{SessionID: session.ID, Status: status})
			require.NoError(t, err)
		}
		return session
	}

	overdue := mkSession("prov-due-1", now.Add(-2*time.Hour), "")
	moreOverdue := mkSession("prov-due-2", now.Add(-4*time.Hour), "")
	mkSession("prov-due-later", now.Add(24*time.Hour), "")
	mkSession("prov-due-terminal", now.Add(-1*time.Hour), "not_interested")

	due, err := svc.ListDueFollowups(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, moreOverdue.ID, due[0].ID)
	assert.Equal(t, overdue.ID, due[1].ID)
}

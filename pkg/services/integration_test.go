package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent/match"
	"github.com/hireflow/scout/ent/preresumesession"
	"github.com/hireflow/scout/pkg/models"
)

// TestServiceIntegration tests multiple services working together
func TestServiceIntegration(t *testing.T) {
	sb := newTestStore(t)
	ctx := context.Background()

	// Initialize all services
	jobService := NewJobService(sb)
	candidateService := NewCandidateService(sb)
	matchService := NewMatchService(sb)
	conversationService := NewConversationService(sb)
	messageService := NewMessageService(sb)
	sessionService := NewSessionService(sb)
	outboundService := NewOutboundService(sb)
	assessmentService := NewAssessmentService(sb)
	signalService := NewSignalService(sb)
	auditService := NewAuditService(sb)

	t.Run("full outreach lifecycle", func(t *testing.T) {
		// 1. Create the job
		seededJob, err := jobService.CreateJob(ctx, models.CreateJobRequest{
			Title:  "Backend Engineer",
			JDText: "Go, Postgres, distributed systems",
		})
		require.NoError(t, err)

		// 2. Source a candidate and create the match
		cand, err := candidateService.UpsertCandidate(ctx, models.UpsertCandidateRequest{
			ProviderID: "prov-lifecycle",
			FullName:   "Dana Smith",
			Skills:     []string{"go", "postgres"},
		})
		require.NoError(t, err)

		pairMatch, err := matchService.EnsureMatch(ctx, seededJob.ID, cand.ID, 74, "verified", map[string]any{
			"verify_explanation": "skills score 0.8",
		})
		require.NoError(t, err)

		// 3. Open the conversation and queue the intro
		conv, err := conversationService.EnsureConversation(ctx, seededJob.ID, cand.ID)
		require.NoError(t, err)

		action, created, err := outboundService.EnqueueAction(ctx, EnqueueActionInput{
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			ConversationID: conv.ID,
			Kind:           "message",
			Payload:        map[string]any{"text": "Hi Dana, could you share your resume?"},
		})
		require.NoError(t, err)
		require.True(t, created)

		// 4. Record the delivered intro and open the pre-resume session
		_, _, err = messageService.AddMessage(ctx, AddMessageInput{
			ConversationID: conv.ID,
			Direction:      "outbound",
			Language:       "en",
			Content:        "Hi Dana, could you share your resume?",
		})
		require.NoError(t, err)

		next := time.Now().Add(48 * time.Hour)
		session, err := sessionService.CreateSession(ctx, CreateSessionInput{
			ConversationID: conv.ID,
			JobID:          seededJob.ID,
			CandidateID:    cand.ID,
			Language:       "en",
			NextFollowupAt: &next,
			Event:          &SessionEventInput{EventType: "session_started", Status: "awaiting_reply"},
		})
		require.NoError(t, err)

		// 5. Inbound reply sharing the resume
		_, _, err = messageService.AddMessage(ctx, AddMessageInput{
			ConversationID: conv.ID,
			Direction:      "inbound",
			Content:        "Sure, here it is: https://files.example.com/dana.pdf",
			Meta:           map[string]any{"provider_message_id": "pm-lifecycle"},
		})
		require.NoError(t, err)

		turns := 1
		session, err = sessionService.ApplyTransition(ctx, SessionTransition{
			SessionID:         session.ID,
			Status:            "resume_received",
			Turns:             &turns,
			LastIntent:        "resume_shared",
			ResumeLinks:       []string{"https://files.example.com/dana.pdf"},
			ClearNextFollowup: true,
			Event: &SessionEventInput{
				EventType:   "inbound_processed",
				Intent:      "resume_shared",
				InboundText: "Sure, here it is: https://files.example.com/dana.pdf",
				Status:      "resume_received",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, preresumesession.StatusResumeReceived, session.Status)
		assert.Nil(t, session.NextFollowupAt)

		// 6. Promote the match and attach the resume verdict
		pairMatch, err = matchService.UpdateStatus(ctx, seededJob.ID, cand.ID, "resume_received")
		require.NoError(t, err)
		assert.Equal(t, match.StatusResumeReceived, pairMatch.Status)

		score := 81.0
		_, err = assessmentService.UpsertAssessment(ctx, UpsertAssessmentInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			AgentKey:    "sourcing_vetting",
			StageKey:    "resume_review",
			Score:       &score,
			Reason:      "resume confirms backend depth",
		})
		require.NoError(t, err)

		// 7. Derive a signal and audit the operation
		_, _, err = signalService.UpsertSignal(ctx, UpsertSignalInput{
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			SourceType:  "pre_resume_event",
			SourceID:    "event-resume",
			SignalType:  "resume_shared",
			Category:    "evaluative",
			Title:       "Resume shared",
			Impact:      2,
			Confidence:  0.75,
			ObservedAt:  time.Now(),
		})
		require.NoError(t, err)

		_, err = auditService.Record(ctx, RecordOperationInput{
			Operation:   "agent.sourcing_vetting.resume_review",
			JobID:       seededJob.ID,
			CandidateID: cand.ID,
			EntityType:  "assessment",
		})
		require.NoError(t, err)

		// 8. Verify the aggregate views line up
		card, err := assessmentService.Scorecard(ctx, seededJob.ID, cand.ID)
		require.NoError(t, err)
		require.Len(t, card, 1)
		assert.Equal(t, 81.0, *card[0].Score)

		history, err := messageService.ListMessages(ctx, conv.ID, 0)
		require.NoError(t, err)
		assert.Len(t, history, 2)

		events, err := sessionService.ListEvents(ctx, session.ID)
		require.NoError(t, err)
		assert.Len(t, events, 2)

		open, err := outboundService.ListByStatus(ctx, []string{"pending"}, seededJob.ID, 0)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, action.ID, open[0].ID)
	})
}

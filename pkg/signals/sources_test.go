package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/agentassessment"
	"github.com/hireflow/scout/ent/match"
	"github.com/hireflow/scout/ent/preresumeevent"
)

var sourceNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestFromAssessment(t *testing.T) {
	t.Run("scored verdict centers on 50", func(t *testing.T) {
		score := 85.0
		in := fromAssessment(&ent.AgentAssessment{
			ID:          "as-1",
			JobID:       "job-1",
			CandidateID: "cand-1",
			AgentKey:    agentassessment.AgentKeySourcingVetting,
			StageKey:    "intake",
			Status:      "completed",
			Score:       &score,
			Reason:      "strong profile",
			CreatedAt:   sourceNow,
		})

		assert.InDelta(t, 1.4, in.Impact, 1e-9)
		assert.InDelta(t, 0.8, in.Confidence, 1e-9)
		assert.Equal(t, SourceAssessment, in.SourceType)
		assert.Equal(t, "as-1", in.SourceID)
		assert.Equal(t, CategoryAssessment, in.Category)
		assert.Equal(t, "sourcing_vetting verdict at intake", in.Title)
		assert.Equal(t, "strong profile", in.Detail)
		assert.Equal(t, 85.0, in.Meta["score"])
		assert.Equal(t, sourceNow, in.ObservedAt)
	})

	t.Run("unscored verdicts fall back to status", func(t *testing.T) {
		tests := []struct {
			status string
			impact float64
		}{
			{"qualified", 1.0},
			{"verified", 1.0},
			{"resume_received", 1.0},
			{"rejected", -1.5},
			{"Failed", -1.5},
			{"completed", 0},
		}
		for _, tt := range tests {
			in := fromAssessment(&ent.AgentAssessment{
				ID:       "as-2",
				AgentKey: agentassessment.AgentKeyCommunication,
				StageKey: "dialogue",
				Status:   tt.status,
			})
			assert.InDelta(t, tt.impact, in.Impact, 1e-9, "status %q", tt.status)
			assert.InDelta(t, 0.6, in.Confidence, 1e-9)
			assert.NotContains(t, in.Meta, "score")
		}
	})
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name      string
		eventType preresumeevent.EventType
		intent    string
		status    string
		impact    float64
	}{
		{"resume intent", preresumeevent.EventTypeInboundProcessed, "resume_shared", "resume_received", 2.0},
		{"resume status without intent", preresumeevent.EventTypeInboundProcessed, "default", "resume_received", 2.0},
		{"opt out", preresumeevent.EventTypeInboundProcessed, "not_interested", "not_interested", -2.0},
		{"unreachable", preresumeevent.EventTypeSessionUnreachable, "", "unreachable", -1.8},
		{"followup", preresumeevent.EventTypeFollowupSent, "", "engaged_no_resume", -0.4},
		{"session start", preresumeevent.EventTypeSessionStarted, "", "awaiting_reply", 0.4},
		{"plain question", preresumeevent.EventTypeInboundProcessed, "salary", "engaged_no_resume", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fromEvent(&ent.PreResumeEvent{
				ID:          17,
				SessionID:   "sess-1",
				JobID:       "job-1",
				CandidateID: "cand-1",
				EventType:   tt.eventType,
				Intent:      tt.intent,
				InboundText: "hello",
				Status:      tt.status,
				CreatedAt:   sourceNow,
			})

			assert.InDelta(t, tt.impact, in.Impact, 1e-9)
			assert.InDelta(t, 0.75, in.Confidence, 1e-9)
			assert.Equal(t, SourcePreResumeEvent, in.SourceType)
			assert.Equal(t, "17", in.SourceID)
			assert.Equal(t, CategoryConversation, in.Category)
			assert.Equal(t, string(tt.eventType), in.Meta["event_type"])
		})
	}

	t.Run("title prefers the intent", func(t *testing.T) {
		in := fromEvent(&ent.PreResumeEvent{ID: 1, EventType: preresumeevent.EventTypeInboundProcessed, Intent: "salary"})
		assert.Equal(t, "Conversation: salary", in.Title)
		in = fromEvent(&ent.PreResumeEvent{ID: 2, EventType: preresumeevent.EventTypeFollowupSent})
		assert.Equal(t, "Conversation: followup_sent", in.Title)
	})
}

func TestFromOperationLog(t *testing.T) {
	t.Run("untracked operations are skipped", func(t *testing.T) {
		for _, op := range []string{"api.create_job", "repo.backfill", "dispatch"} {
			_, ok := fromOperationLog(&ent.OperationLog{ID: 1, Operation: op, Status: "ok"})
			assert.False(t, ok, "operation %q", op)
		}
	})

	t.Run("tracked operations map status to impact", func(t *testing.T) {
		tests := []struct {
			operation string
			status    string
			impact    float64
		}{
			{"agent.outreach", "error", -1.2},
			{"agent.outreach", "failed", -1.2},
			{"scheduler.followup", "partial", -0.5},
			{"poll.messages", "warning", -0.5},
			{"agent.source", "ok", 0.6},
			{"scheduler.dispatch", "sent", 0.6},
			{"interview.invite", "created", 0.6},
			{"poll.messages", "skipped", -0.2},
			{"agent.verify", "pending", 0},
		}
		for _, tt := range tests {
			in, ok := fromOperationLog(&ent.OperationLog{
				ID:          42,
				JobID:       "job-1",
				CandidateID: "cand-1",
				Operation:   tt.operation,
				Status:      tt.status,
				EntityType:  "match",
				CreatedAt:   sourceNow,
			})
			require.True(t, ok)
			assert.InDelta(t, tt.impact, in.Impact, 1e-9, "%s %s", tt.operation, tt.status)
			assert.InDelta(t, 0.55, in.Confidence, 1e-9)
			assert.Equal(t, "42", in.SourceID)
			assert.Equal(t, CategoryOperations, in.Category)
		}
	})
}

func TestFromMatch(t *testing.T) {
	t.Run("status base plus score offset", func(t *testing.T) {
		in := fromMatch(&ent.Match{
			ID:          "m-1",
			JobID:       "job-1",
			CandidateID: "cand-1",
			Score:       0.85,
			Status:      match.StatusVerified,
			UpdatedAt:   sourceNow,
		})

		// 0.5 status base + (85-50)/35 offset.
		assert.InDelta(t, 1.5, in.Impact, 1e-9)
		assert.InDelta(t, 0.65, in.Confidence, 1e-9)
		assert.Equal(t, "m-1:verified", in.SourceID)
		assert.Equal(t, CategoryPipeline, in.Category)
		assert.Equal(t, "Pipeline: verified", in.Title)
		assert.Equal(t, sourceNow, in.ObservedAt)
	})

	t.Run("rejected match scores negative", func(t *testing.T) {
		in := fromMatch(&ent.Match{ID: "m-2", Score: 0.2, Status: match.StatusRejected})
		assert.InDelta(t, -1.5+(20.0-50)/35, in.Impact, 1e-9)
	})

	t.Run("interview outcome shifts the snapshot", func(t *testing.T) {
		completed := fromMatch(&ent.Match{
			ID:                "m-3",
			Score:             0.5,
			Status:            match.StatusInterviewCompleted,
			VerificationNotes: map[string]interface{}{"interview_status": "completed"},
		})
		assert.InDelta(t, 1.2+0.8, completed.Impact, 1e-9)
		assert.Equal(t, "completed", completed.Meta["interview_status"])

		expired := fromMatch(&ent.Match{
			ID:                "m-4",
			Score:             0.5,
			Status:            match.StatusInterviewScheduled,
			VerificationNotes: map[string]interface{}{"interview_status": "expired"},
		})
		assert.InDelta(t, 0.8-0.8, expired.Impact, 1e-9)
	})

	t.Run("sourced midpoint is neutral", func(t *testing.T) {
		in := fromMatch(&ent.Match{ID: "m-5", Score: 0.5, Status: match.StatusSourced})
		assert.InDelta(t, 0, in.Impact, 1e-9)
	})
}

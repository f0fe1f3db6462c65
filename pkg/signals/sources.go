// Package signals derives candidate signals from assessments, conversation
// events, operation logs, and match snapshots, classifies them through a
// declarative ruleset, and builds the live job view.
package signals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/services"
)

// Source types, matching the candidate-signal enum.
const (
	SourceAssessment     = "assessment"
	SourcePreResumeEvent = "pre_resume_event"
	SourceOperationLog   = "operation_log"
	SourceMatchSnapshot  = "match_snapshot"
)

// Categories group signals for the per-category view counts.
const (
	CategoryAssessment   = "assessment"
	CategoryConversation = "conversation"
	CategoryOperations   = "operations"
	CategoryPipeline     = "pipeline"
)

// operationPrefixes limit which audit operations produce signals; the rest
// is request plumbing with no bearing on a candidate.
var operationPrefixes = []string{"agent.", "scheduler.", "poll.", "interview."}

// fromAssessment derives the raw signal for one agent verdict. Scored
// verdicts center on 50; unscored ones fall back to the status.
func fromAssessment(a *ent.AgentAssessment) services.UpsertSignalInput {
	impact := 0.0
	confidence := 0.6
	if a.Score != nil {
		impact = (*a.Score - 50) / 25
		confidence = 0.8
	} else {
		switch strings.ToLower(a.Status) {
		case "qualified", "verified", "scored", "resume_received":
			impact = 1.0
		case "rejected", "failed", "not_interested":
			impact = -1.5
		}
	}

	meta := map[string]any{
		"agent":  string(a.AgentKey),
		"stage":  a.StageKey,
		"status": a.Status,
	}
	if a.Score != nil {
		meta["score"] = *a.Score
	}

	return services.UpsertSignalInput{
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		SourceType:  SourceAssessment,
		SourceID:    a.ID,
		SignalType:  "assessment_verdict",
		Category:    CategoryAssessment,
		Title:       fmt.Sprintf("%s verdict at %s", a.AgentKey, a.StageKey),
		Detail:      a.Reason,
		Impact:      impact,
		Confidence:  confidence,
		Meta:        meta,
		ObservedAt:  a.CreatedAt,
	}
}

// fromEvent derives the raw signal for one pre-resume event.
func fromEvent(e *ent.PreResumeEvent) services.UpsertSignalInput {
	impact := 0.0
	eventType := string(e.EventType)
	switch {
	case e.Intent == "resume_shared" || e.Status == "resume_received":
		impact = 2.0
	case e.Intent == "not_interested" || e.Status == "not_interested":
		impact = -2.0
	case e.Status == "unreachable" || eventType == "session_unreachable":
		impact = -1.8
	case eventType == "followup_sent":
		impact = -0.4
	case eventType == "session_started":
		impact = 0.4
	}

	title := "Conversation: " + eventType
	if e.Intent != "" {
		title = "Conversation: " + e.Intent
	}

	return services.UpsertSignalInput{
		JobID:       e.JobID,
		CandidateID: e.CandidateID,
		SourceType:  SourcePreResumeEvent,
		SourceID:    strconv.Itoa(e.ID),
		SignalType:  "conversation_event",
		Category:    CategoryConversation,
		Title:       title,
		Detail:      e.InboundText,
		Impact:      impact,
		Confidence:  0.75,
		Meta: map[string]any{
			"event_type": eventType,
			"intent":     e.Intent,
			"status":     e.Status,
		},
		ObservedAt: e.CreatedAt,
	}
}

// fromOperationLog derives the raw signal for one audit row. Operations
// outside the tracked prefixes report ok=false.
func fromOperationLog(l *ent.OperationLog) (services.UpsertSignalInput, bool) {
	tracked := false
	for _, prefix := range operationPrefixes {
		if strings.HasPrefix(l.Operation, prefix) {
			tracked = true
			break
		}
	}
	if !tracked {
		return services.UpsertSignalInput{}, false
	}

	impact := 0.0
	switch strings.ToLower(l.Status) {
	case "error", "failed":
		impact = -1.2
	case "warning", "partial":
		impact = -0.5
	case "ok", "sent", "connected", "created":
		impact = 0.6
	case "skipped":
		impact = -0.2
	}

	return services.UpsertSignalInput{
		JobID:       l.JobID,
		CandidateID: l.CandidateID,
		SourceType:  SourceOperationLog,
		SourceID:    strconv.Itoa(l.ID),
		SignalType:  "operation_result",
		Category:    CategoryOperations,
		Title:       fmt.Sprintf("%s %s", l.Operation, l.Status),
		Impact:      impact,
		Confidence:  0.55,
		Meta: map[string]any{
			"operation":   l.Operation,
			"status":      l.Status,
			"entity_type": l.EntityType,
		},
		ObservedAt: l.CreatedAt,
	}, true
}

// matchStatusImpact is the snapshot base per pipeline status.
var matchStatusImpact = map[string]float64{
	"sourced":             0,
	"verified":            0.5,
	"needs_resume":        0.1,
	"resume_received":     0.8,
	"rejected":            -1.5,
	"outreached":          0.2,
	"interview_scheduled": 0.8,
	"interview_completed": 1.2,
	"hired":               2.0,
}

// fromMatch derives the raw snapshot signal for one match. The source id
// includes the status, so each pipeline stage leaves its own snapshot while
// re-ingesting an unchanged match stays idempotent.
func fromMatch(m *ent.Match) services.UpsertSignalInput {
	status := string(m.Status)
	impact := matchStatusImpact[status] + (m.Score*100-50)/35

	interviewStatus := ""
	if m.VerificationNotes != nil {
		if v, ok := m.VerificationNotes["interview_status"].(string); ok {
			interviewStatus = v
		}
	}
	switch strings.ToLower(interviewStatus) {
	case "scored", "completed":
		impact += 0.8
	case "failed", "expired", "canceled":
		impact -= 0.8
	}

	return services.UpsertSignalInput{
		JobID:       m.JobID,
		CandidateID: m.CandidateID,
		SourceType:  SourceMatchSnapshot,
		SourceID:    m.ID + ":" + status,
		SignalType:  "match_snapshot",
		Category:    CategoryPipeline,
		Title:       "Pipeline: " + status,
		Impact:      impact,
		Confidence:  0.65,
		Meta: map[string]any{
			"match_status":     status,
			"interview_status": interviewStatus,
			"score":            m.Score,
		},
		ObservedAt: m.UpdatedAt,
	}
}

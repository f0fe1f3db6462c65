package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/services"
)

// Inbound routing modes.
const (
	ModePreResume = "pre_resume"
	ModeFAQ       = "faq"
)

// InboundResult is the outcome of one routed inbound message.
type InboundResult struct {
	ConversationID string   `json:"conversation_id"`
	Mode           string   `json:"mode"`
	Reply          string   `json:"reply,omitempty"`
	Intent         string   `json:"intent,omitempty"`
	SessionStatus  string   `json:"session_status,omitempty"`
	ResumeLinks    []string `json:"resume_links,omitempty"`
}

// ProcessInbound persists an inbound message and routes it: through the
// pre-resume FSM when a non-terminal session owns the conversation, else
// through the FAQ composer. Either path may move the match to
// resume_received. The reply is persisted with an auto flag and returned;
// delivery is the caller's concern.
func (e *Engine) ProcessInbound(ctx context.Context, conversationID, text string) (*InboundResult, error) {
	return e.processInbound(ctx, conversationID, text, nil)
}

// processInbound is ProcessInbound with message meta attached to the stored
// inbound row; the poller passes the provider message id through it.
func (e *Engine) processInbound(ctx context.Context, conversationID, text string, meta map[string]any) (*InboundResult, error) {
	if conversationID == "" {
		return nil, services.NewValidationError("conversation_id", "conversation id is required")
	}
	if text == "" {
		return nil, services.NewValidationError("text", "text is required")
	}

	conv, err := e.deps.Conversations.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	if _, _, err := e.deps.Messages.AddMessage(ctx, services.AddMessageInput{
		ConversationID: conv.ID,
		Direction:      "inbound",
		Content:        text,
		Meta:           meta,
	}); err != nil {
		return nil, err
	}

	session, err := e.deps.SessionStore.GetByConversation(ctx, conv.ID)
	switch {
	case err == nil && !preresume.IsTerminal(string(session.Status)):
		return e.inboundFSM(ctx, conv.ID, conv.JobID, conv.CandidateID, session.ID, text, now)
	case err != nil && !errors.Is(err, services.ErrNotFound):
		return nil, err
	}
	return e.inboundFAQ(ctx, conv.ID, conv.JobID, conv.CandidateID, text, now)
}

func (e *Engine) inboundFSM(ctx context.Context, conversationID, jobID, candidateID, sessionID, text string, now time.Time) (*InboundResult, error) {
	outcome, err := e.deps.Sessions.HandleInbound(ctx, sessionID, text, now)
	if err != nil {
		return nil, err
	}

	result := &InboundResult{
		ConversationID: conversationID,
		Mode:           ModePreResume,
		Intent:         outcome.Intent,
		SessionStatus:  string(outcome.Session.Status),
		ResumeLinks:    outcome.ResumeLinks,
	}
	if outcome.Event == preresume.EventIgnoredTerminal {
		return result, nil
	}

	if string(outcome.Session.Status) == preresume.StatusResumeReceived {
		if _, err := e.deps.Matches.UpdateStatus(ctx, jobID, candidateID, "resume_received"); err != nil && !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		if len(outcome.ResumeLinks) > 0 {
			if _, err := e.deps.Matches.MergeNotes(ctx, jobID, candidateID, map[string]any{
				"resume_links": outcome.ResumeLinks,
			}); err != nil && !errors.Is(err, services.ErrNotFound) {
				return nil, err
			}
		}
	}

	if outcome.OutboundText != "" {
		if _, _, err := e.deps.Messages.AddMessage(ctx, services.AddMessageInput{
			ConversationID: conversationID,
			Direction:      "outbound",
			Language:       outcome.Session.Language,
			Content:        outcome.OutboundText,
			Meta:           map[string]any{"auto": true, "type": "pre_resume_reply"},
		}); err != nil {
			return nil, err
		}
		result.Reply = outcome.OutboundText
	}

	if err := e.deps.Conversations.TouchLastMessage(ctx, conversationID, now); err != nil {
		e.logger.Warn("Failed to touch conversation", "conversation_id", conversationID, "error", err)
	}
	e.record(ctx, "agent.inbound", "ok", jobID, candidateID, map[string]any{
		"mode":   ModePreResume,
		"intent": outcome.Intent,
		"status": string(outcome.Session.Status),
	})
	return result, nil
}

func (e *Engine) inboundFAQ(ctx context.Context, conversationID, jobID, candidateID, text string, now time.Time) (*InboundResult, error) {
	job, err := e.deps.Jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	cand, err := e.deps.Candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	reply, err := e.deps.FAQ.Answer(ctx, agents.FAQInput{
		Job:            job,
		Candidate:      cand,
		ConversationID: conversationID,
		Question:       text,
	})
	if err != nil {
		return nil, err
	}

	result := &InboundResult{
		ConversationID: conversationID,
		Mode:           ModeFAQ,
		Reply:          reply.Text,
		Intent:         reply.Intent,
	}

	// A shared CV outside any session still advances the pipeline.
	if intent, links := preresume.ClassifyIntent(text); intent == preresume.IntentResumeShared {
		result.ResumeLinks = links
		if _, err := e.deps.Matches.UpdateStatus(ctx, jobID, candidateID, "resume_received"); err != nil && !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		if len(links) > 0 {
			if _, err := e.deps.Matches.MergeNotes(ctx, jobID, candidateID, map[string]any{
				"resume_links": links,
			}); err != nil && !errors.Is(err, services.ErrNotFound) {
				return nil, err
			}
		}
	}

	if reply.Text != "" {
		if _, _, err := e.deps.Messages.AddMessage(ctx, services.AddMessageInput{
			ConversationID: conversationID,
			Direction:      "outbound",
			Language:       reply.Language,
			Content:        reply.Text,
			Meta:           map[string]any{"auto": true, "type": "faq"},
		}); err != nil {
			return nil, err
		}
	}

	if err := e.deps.Conversations.TouchLastMessage(ctx, conversationID, now); err != nil {
		e.logger.Warn("Failed to touch conversation", "conversation_id", conversationID, "error", err)
	}
	e.record(ctx, "agent.inbound", "ok", jobID, candidateID, map[string]any{
		"mode":   ModeFAQ,
		"intent": reply.Intent,
	})
	return result, nil
}

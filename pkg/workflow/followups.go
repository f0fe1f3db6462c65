package workflow

import (
	"context"
	"fmt"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/metrics"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/services"
)

// FollowupReport summarizes one follow-up sweep.
type FollowupReport struct {
	Due       int `json:"due"`
	Sent      int `json:"sent"`
	Skipped   int `json:"skipped"`
	Delivered int `json:"delivered"`
	Enqueued  int `json:"enqueued"`
	Failed    int `json:"failed"`
}

// FollowupTick builds and delivers due follow-ups. Conversations already
// bound to a sender account get the message pushed directly, binding the
// returned chat id; unbound ones go through the outbound queue so the
// dispatcher picks the account. Per-session failures never stop the sweep.
func (e *Engine) FollowupTick(ctx context.Context, limit int) (*FollowupReport, error) {
	now := e.now()
	due, err := e.deps.Sessions.ListDueFollowups(ctx, now, limit)
	if err != nil {
		return nil, err
	}

	report := &FollowupReport{Due: len(due)}
	for _, session := range due {
		outcome, err := e.deps.Sessions.BuildFollowup(ctx, session.ID, now)
		if err != nil {
			report.Failed++
			e.logger.Error("Follow-up build failed", "session_id", session.ID, "error", err)
			continue
		}
		if !outcome.Sent {
			report.Skipped++
			continue
		}
		report.Sent++
		metrics.FollowupsSent.Inc()

		if err := e.deliverFollowup(ctx, outcome.Session, outcome.Text, report); err != nil {
			report.Failed++
			e.record(ctx, "scheduler.followup", "error", session.JobID, session.CandidateID, map[string]any{
				"session_id": session.ID,
				"error":      err.Error(),
			})
			e.logger.Warn("Follow-up delivery failed", "session_id", session.ID, "error", err)
		}
	}
	return report, nil
}

// SessionFollowup is the outcome of a single-session follow-up request.
type SessionFollowup struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
	Sent      bool   `json:"sent"`
	Reason    string `json:"reason,omitempty"`
	Text      string `json:"text,omitempty"`
	Delivery  string `json:"delivery,omitempty"`
}

// FollowupSession forces the next follow-up for one session, ignoring its
// schedule. Composition and delivery behave exactly like a ticker pass over
// that session; a skipped follow-up (cap reached, terminal state) reports
// sent=false with the machine's reason.
func (e *Engine) FollowupSession(ctx context.Context, sessionID string) (*SessionFollowup, error) {
	outcome, err := e.deps.Sessions.BuildFollowup(ctx, sessionID, e.now())
	if err != nil {
		return nil, err
	}

	result := &SessionFollowup{
		SessionID: outcome.Session.ID,
		Status:    string(outcome.Session.Status),
		Sent:      outcome.Sent,
		Reason:    outcome.Reason,
		Text:      outcome.Text,
	}
	if !outcome.Sent {
		return result, nil
	}
	metrics.FollowupsSent.Inc()

	report := &FollowupReport{}
	if err := e.deliverFollowup(ctx, outcome.Session, outcome.Text, report); err != nil {
		return nil, err
	}
	switch {
	case report.Delivered > 0:
		result.Delivery = "delivered"
	case report.Enqueued > 0:
		result.Delivery = "enqueued"
	}
	return result, nil
}

// deliverFollowup persists the follow-up message and pushes it out. The
// message row is written regardless of delivery fate so the transcript is
// complete.
func (e *Engine) deliverFollowup(ctx context.Context, session *ent.PreResumeSession, text string, report *FollowupReport) error {
	if session.ConversationID == nil || *session.ConversationID == "" {
		return fmt.Errorf("session %s has no conversation bound", session.ID)
	}
	conv, err := e.deps.Conversations.GetConversation(ctx, *session.ConversationID)
	if err != nil {
		return err
	}

	accountID := ""
	if conv.AccountID != nil {
		accountID = *conv.AccountID
	}
	meta := map[string]any{"auto": true, "type": "followup"}
	if accountID == "" {
		meta["delivery"] = "pending"
	}
	msg, _, err := e.deps.Messages.AddMessage(ctx, services.AddMessageInput{
		ConversationID: conv.ID,
		Direction:      "outbound",
		Language:       session.Language,
		Content:        text,
		Meta:           meta,
	})
	if err != nil {
		return err
	}

	if accountID == "" {
		// Never dispatched; let the dispatcher route the account.
		_, _, err := e.deps.Queue.EnqueueAction(ctx, services.EnqueueActionInput{
			JobID:          session.JobID,
			CandidateID:    session.CandidateID,
			ConversationID: conv.ID,
			Kind:           "message",
			Payload: map[string]any{
				"text":       text,
				"language":   session.Language,
				"purpose":    "followup",
				"message_id": msg.ID,
			},
		})
		if err != nil {
			return err
		}
		report.Enqueued++
		return nil
	}

	cand, err := e.deps.Candidates.GetCandidate(ctx, session.CandidateID)
	if err != nil {
		return err
	}
	pctx, cancel := e.providerCtx(ctx)
	res, err := e.deps.Provider.SendMessage(pctx, accountID, profileOf(cand), text)
	cancel()
	if err != nil {
		if provider.IsNoConnection(err) {
			if _, merr := e.deps.Sessions.MarkUnreachable(ctx, session.ID, err.Error(), e.now()); merr != nil {
				e.logger.Error("Failed to mark session unreachable", "session_id", session.ID, "error", merr)
			}
		}
		return &provider.Error{Op: "send_message", Err: err}
	}

	if res.ChatID != "" {
		if _, err := e.deps.Conversations.BindExternalChatID(ctx, conv.ID, res.ChatID); err != nil {
			e.logger.Warn("Failed to bind chat id", "conversation_id", conv.ID, "error", err)
		}
	}
	if err := e.deps.Conversations.TouchLastMessage(ctx, conv.ID, e.now()); err != nil {
		e.logger.Warn("Failed to touch conversation", "conversation_id", conv.ID, "error", err)
	}
	report.Delivered++
	e.record(ctx, "scheduler.followup", "sent", session.JobID, session.CandidateID, map[string]any{
		"session_id":      session.ID,
		"conversation_id": conv.ID,
		"account_id":      accountID,
	})
	return nil
}

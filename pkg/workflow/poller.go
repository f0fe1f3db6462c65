package workflow

import (
	"context"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/provider"
)

// PollReport summarizes one inbound poll sweep.
type PollReport struct {
	Conversations int `json:"conversations"`
	Fetched       int `json:"fetched"`
	NewInbound    int `json:"new_inbound"`
	Failed        int `json:"failed"`
}

// PollInbound fetches recent provider messages for pollable conversations
// and routes each unseen inbound through processInbound. Text-less messages
// with a resume-like attachment are synthesized into text carrying the
// attachment URL so intent classification sees the CV. Per-conversation
// failures never stop the sweep.
func (e *Engine) PollInbound(ctx context.Context, limit int) (*PollReport, error) {
	convs, err := e.deps.Conversations.ListPollable(ctx, limit)
	if err != nil {
		return nil, err
	}

	report := &PollReport{Conversations: len(convs)}
	for _, conv := range convs {
		if err := e.pollConversation(ctx, conv, report); err != nil {
			report.Failed++
			e.logger.Warn("Poll failed", "conversation_id", conv.ID, "error", err)
		}
	}
	return report, nil
}

func (e *Engine) pollConversation(ctx context.Context, conv *ent.Conversation, report *PollReport) error {
	if conv.ExternalChatID == nil || *conv.ExternalChatID == "" {
		return nil
	}
	accountID := ""
	if conv.AccountID != nil {
		accountID = *conv.AccountID
	}

	pctx, cancel := e.providerCtx(ctx)
	msgs, err := e.deps.Provider.FetchChatMessages(pctx, accountID, *conv.ExternalChatID, e.cfg.PollMessageLimit)
	cancel()
	if err != nil {
		return err
	}
	report.Fetched += len(msgs)

	found := 0
	for _, msg := range msgs {
		if msg.Direction != "inbound" || msg.ProviderMessageID == "" {
			continue
		}
		seen, err := e.deps.Messages.HasProviderMessage(ctx, conv.ID, msg.ProviderMessageID)
		if err != nil {
			return err
		}
		if seen {
			continue
		}

		text := msg.Text
		if text == "" {
			text = synthesizeAttachmentText(msg.Attachments)
			if text == "" {
				continue
			}
		}

		if _, err := e.processInbound(ctx, conv.ID, text, map[string]any{
			"provider_message_id": msg.ProviderMessageID,
			"source":              "poll",
		}); err != nil {
			return err
		}
		found++
	}

	if found > 0 {
		report.NewInbound += found
		e.record(ctx, "poll.inbound", "ok", conv.JobID, conv.CandidateID, map[string]any{
			"conversation_id": conv.ID,
			"new_messages":    found,
		})
	}
	return nil
}

// synthesizeAttachmentText turns the first resume-like attachment into a
// classifiable sentence. Other attachments produce nothing.
func synthesizeAttachmentText(attachments []provider.Attachment) string {
	for _, att := range attachments {
		if preresume.ResumeHinted(att.Name) || preresume.ResumeHinted(att.URL) {
			if att.URL != "" {
				return "attached resume: " + att.URL
			}
			return "attached resume: " + att.Name
		}
	}
	return ""
}

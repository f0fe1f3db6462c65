package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/llm"
	"github.com/hireflow/scout/pkg/preresume"
)

// FAQReply is the composed answer to a candidate question arriving outside
// any pre-resume session.
type FAQReply struct {
	Text     string
	Intent   string
	Language string
	Source   string
}

// FAQComposer answers candidate questions about a role.
type FAQComposer struct {
	templates       preresume.TemplateSource
	responder       llm.Responder
	defaultLanguage string
	logger          *slog.Logger
}

// NewFAQComposer creates a composer. A nil responder means template-only
// answers.
func NewFAQComposer(templates preresume.TemplateSource, responder llm.Responder, defaultLanguage string, logger *slog.Logger) *FAQComposer {
	if templates == nil {
		panic("NewFAQComposer: template source must not be nil")
	}
	if responder == nil {
		responder = llm.NewStatic()
	}
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FAQComposer{
		templates:       templates,
		responder:       responder,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// FAQInput is one inbound question and its thread context.
type FAQInput struct {
	Job            *ent.Job
	Candidate      *ent.Candidate
	ConversationID string
	Question       string

	// Language is the conversation language when already known; empty
	// detects it from the question text.
	Language string
}

// Answer classifies the question into an intent bucket, renders the
// bucket's answer template, and asks the responder to tailor it to the
// actual question. The caller decides what to do with the intent (a
// resume_shared or not_interested text outside a session still reaches
// the workflow through it).
func (c *FAQComposer) Answer(ctx context.Context, in FAQInput) (*FAQReply, error) {
	if in.Job == nil || in.Candidate == nil {
		return nil, errors.New("job and candidate are required")
	}
	if strings.TrimSpace(in.Question) == "" {
		return nil, errors.New("question text is required")
	}

	intent, _ := preresume.ClassifyIntent(in.Question)
	language := in.Language
	if language == "" {
		language = preresume.DetectLanguage(in.Question)
	}
	if language == "" {
		language = c.defaultLanguage
	}

	purpose := c.purposeFor(intent)
	draft, err := c.templates.Bundle().Render(purpose, language, OutreachVars(in.Job, in.Candidate))
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", purpose, err)
	}

	reply := &FAQReply{Text: draft, Intent: intent, Language: language, Source: SourceTemplate}
	if intent == preresume.IntentResumeShared || intent == preresume.IntentNotInterested {
		// Acknowledgements are fixed copy; tailoring them could reintroduce
		// a CV ask after an opt-out.
		return reply, nil
	}
	out, err := c.responder.GenerateCandidateReply(ctx, llm.Request{
		SessionID: in.ConversationID,
		System:    faqSystem(in.Job, language, draft),
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: in.Question}},
	})
	if err != nil {
		c.logger.Warn("Responder unavailable, using template answer", "error", err)
		return reply, nil
	}
	if out = strings.TrimSpace(out); out != "" {
		reply.Text = out
		reply.Source = SourceLLM
	}
	return reply, nil
}

// purposeFor picks the template bucket: dedicated acks for resume and
// opt-out texts, answer buckets for everything else.
func (c *FAQComposer) purposeFor(intent string) string {
	switch intent {
	case preresume.IntentResumeShared:
		return preresume.PurposeResumeAck
	case preresume.IntentNotInterested:
		return preresume.PurposeOptOutAck
	}
	return preresume.AnswerPurpose(intent)
}

func faqSystem(job *ent.Job, language, draft string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a technical recruiter answering a candidate's question about the %s role. ", job.Title)
	fmt.Fprintf(&b, "Ground your answer in this approved copy: %q. ", draft)
	b.WriteString("Never invent compensation numbers, dates, or process details. ")
	fmt.Fprintf(&b, "Reply in language %q in one or two sentences, ", language)
	b.WriteString("and close by asking for the CV if they have not shared one.")
	return b.String()
}

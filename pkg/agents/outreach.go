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

// First-touch message kinds.
const (
	KindIntro         = "intro"
	KindResumeRequest = "resume_request"
)

// ComposedMessage is outreach copy ready to enqueue.
type ComposedMessage struct {
	Text     string
	Language string
	Purpose  string
	Source   string
}

// OutreachComposer writes the first message of a thread: an intro or a
// resume request.
type OutreachComposer struct {
	templates       preresume.TemplateSource
	responder       llm.Responder
	defaultLanguage string
	logger          *slog.Logger
}

// NewOutreachComposer creates a composer. A nil responder means
// template-only copy.
func NewOutreachComposer(templates preresume.TemplateSource, responder llm.Responder, defaultLanguage string, logger *slog.Logger) *OutreachComposer {
	if templates == nil {
		panic("NewOutreachComposer: template source must not be nil")
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
	return &OutreachComposer{
		templates:       templates,
		responder:       responder,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// OutreachInput identifies the thread being opened.
type OutreachInput struct {
	Job            *ent.Job
	Candidate      *ent.Candidate
	ConversationID string

	// Kind is intro or resume_request; anything else composes an intro.
	Kind string
}

// Compose renders the template for the candidate's language and asks the
// responder to improve it. The template text is the floor: responder
// errors and empty replies fall back to it.
func (c *OutreachComposer) Compose(ctx context.Context, in OutreachInput) (*ComposedMessage, error) {
	if in.Job == nil || in.Candidate == nil {
		return nil, errors.New("job and candidate are required")
	}

	purpose := preresume.PurposeIntro
	if in.Kind == KindResumeRequest {
		purpose = preresume.PurposeResumeRequest
	}
	language := CandidateLanguage(in.Candidate, c.defaultLanguage)
	vars := OutreachVars(in.Job, in.Candidate)

	draft, err := c.templates.Bundle().Render(purpose, language, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", purpose, err)
	}

	msg := &ComposedMessage{Text: draft, Language: language, Purpose: purpose, Source: SourceTemplate}
	if text, ok := c.refine(ctx, in.ConversationID, outreachSystem(in.Job, language, purpose), draft); ok {
		msg.Text = text
		msg.Source = SourceLLM
	}
	return msg, nil
}

func (c *OutreachComposer) refine(ctx context.Context, sessionID, system, draft string) (string, bool) {
	out, err := c.responder.GenerateCandidateReply(ctx, llm.Request{
		SessionID: sessionID,
		System:    system,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: draft}},
	})
	if err != nil {
		c.logger.Warn("Responder unavailable, using template copy", "error", err)
		return "", false
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", false
	}
	return out, true
}

func outreachSystem(job *ent.Job, language, purpose string) string {
	var b strings.Builder
	b.WriteString("You are a technical recruiter writing on a professional network. ")
	if purpose == preresume.PurposeResumeRequest {
		b.WriteString("Ask the candidate to share their CV for the role. ")
	} else {
		b.WriteString("Open a conversation about the role. ")
	}
	fmt.Fprintf(&b, "Role: %s. ", job.Title)
	if scope := scopeSummary(job); scope != "" {
		fmt.Fprintf(&b, "Scope: %s ", scope)
	}
	fmt.Fprintf(&b, "Reply in language %q. ", language)
	b.WriteString("Improve the user's draft without inventing facts, keep it under 500 characters, and end by asking for the CV.")
	return b.String()
}

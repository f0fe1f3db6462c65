// Package profile assembles the aggregated read view for one candidate:
// per-job match verdicts with their fit breakdown, the latest scorecard and
// the composed overall score, pre-resume session state, conversations, the
// signal timeline, and a human-readable fit explanation. Everything except
// the explanation is computed from repository rows; the explanation itself
// degrades to a deterministic summary when no responder is configured.
package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/llm"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
)

// Request selects what one view includes. JobID narrows the view to a
// single job; IncludeAudit adds the operation log; Explain engages the
// explanation and culture generators.
type Request struct {
	CandidateID  string
	JobID        string
	IncludeAudit bool
	Explain      bool
}

// View is the read model for one candidate across jobs.
type View struct {
	Candidate   *ent.Candidate `json:"candidate"`
	Jobs        []JobSection   `json:"jobs"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// JobSection is the candidate's standing against one job. Match is nil when
// the view was requested for a job that has no verdict yet.
type JobSection struct {
	Job               *ent.Job                `json:"job"`
	Match             *ent.Match              `json:"match,omitempty"`
	Fit               FitBreakdown            `json:"fit"`
	Scorecard         []models.ScorecardEntry `json:"scorecard,omitempty"`
	Overall           models.OverallScore     `json:"overall"`
	Session           *SessionSummary         `json:"session,omitempty"`
	Conversations     []ConversationSummary   `json:"conversations,omitempty"`
	Timeline          []*ent.CandidateSignal  `json:"timeline,omitempty"`
	Audit             []*ent.OperationLog     `json:"audit,omitempty"`
	Explanation       string                  `json:"explanation,omitempty"`
	ExplanationSource string                  `json:"explanation_source,omitempty"`
	Culture           *CultureFit             `json:"culture,omitempty"`
}

// FitBreakdown is the screening verdict's component view, read back from
// the match verification notes.
type FitBreakdown struct {
	SkillsScore     float64  `json:"skills_score"`
	SeniorityScore  float64  `json:"seniority_score"`
	LocationScore   float64  `json:"location_score"`
	LanguageScore   float64  `json:"language_score"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	MatchedSkills   []string `json:"matched_skills,omitempty"`
	TargetSeniority string   `json:"target_seniority,omitempty"`
	RulesVersion    string   `json:"rules_version,omitempty"`
	Explanation     string   `json:"explanation,omitempty"`
	Reason          string   `json:"reason,omitempty"`
	Missing         []string `json:"missing,omitempty"`
}

// SessionSummary condenses the newest pre-resume session and its transition
// history.
type SessionSummary struct {
	ID             string         `json:"id"`
	Status         string         `json:"status"`
	FollowupsSent  int            `json:"followups_sent"`
	Turns          int            `json:"turns"`
	LastIntent     string         `json:"last_intent,omitempty"`
	ResumeLinks    []string       `json:"resume_links,omitempty"`
	NextFollowupAt *time.Time     `json:"next_followup_at,omitempty"`
	Events         []SessionEvent `json:"events,omitempty"`
}

// SessionEvent is one FSM transition. Status is the session status after
// the transition.
type SessionEvent struct {
	Type   string    `json:"type"`
	Intent string    `json:"intent,omitempty"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// ConversationSummary is one provider conversation with its message count.
type ConversationSummary struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	AccountID      string     `json:"account_id,omitempty"`
	ExternalChatID string     `json:"external_chat_id,omitempty"`
	Messages       int        `json:"messages"`
	LastMessageAt  *time.Time `json:"last_message_at,omitempty"`
}

// Deps bundles the builder's collaborators. All services are required.
type Deps struct {
	Jobs          *services.JobService
	Candidates    *services.CandidateService
	Matches       *services.MatchService
	Assessments   *services.AssessmentService
	Sessions      *services.SessionService
	Conversations *services.ConversationService
	Messages      *services.MessageService
	Signals       *services.SignalService
	Audit         *services.AuditService
}

// Builder produces candidate views.
type Builder struct {
	cfg       *config.ProfileConfig
	deps      Deps
	policy    *scoring.Policy
	responder llm.Responder
	cache     *Cache
	logger    *slog.Logger
	now       func() time.Time
}

// NewBuilder creates a builder. A nil config uses the built-in defaults; a
// nil policy uses the default scoring policy; a nil responder keeps every
// explanation on the deterministic path.
func NewBuilder(cfg *config.ProfileConfig, deps Deps, policy *scoring.Policy, responder llm.Responder, logger *slog.Logger) *Builder {
	if cfg == nil {
		cfg = config.DefaultProfileConfig()
	}
	if deps.Jobs == nil || deps.Candidates == nil || deps.Matches == nil ||
		deps.Assessments == nil || deps.Sessions == nil || deps.Conversations == nil ||
		deps.Messages == nil || deps.Signals == nil || deps.Audit == nil {
		panic("profile.NewBuilder: all services must be set")
	}
	if policy == nil {
		policy = scoring.NewPolicy(nil)
	}
	if responder == nil {
		responder = llm.NewStatic()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		cfg:       cfg,
		deps:      deps,
		policy:    policy,
		responder: responder,
		cache:     NewCache(cfg.ExplainCacheTTL.Std()),
		logger:    logger,
		now:       time.Now,
	}
}

// Build assembles the view. The candidate must exist; when JobID is set the
// job must exist too, and the view holds that single section even if no
// match was recorded yet.
func (b *Builder) Build(ctx context.Context, req Request) (*View, error) {
	if req.CandidateID == "" {
		return nil, services.NewValidationError("candidate_id", "candidate id is required")
	}

	cand, err := b.deps.Candidates.GetCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}

	view := &View{Candidate: cand, GeneratedAt: b.now().UTC()}

	if req.JobID != "" {
		if _, err := b.deps.Jobs.GetJob(ctx, req.JobID); err != nil {
			return nil, err
		}
		var match *ent.Match
		match, err = b.deps.Matches.GetByJobCandidate(ctx, req.JobID, req.CandidateID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		section, err := b.buildSection(ctx, req, req.JobID, match)
		if err != nil {
			return nil, err
		}
		view.Jobs = append(view.Jobs, *section)
		return view, nil
	}

	matches, err := b.deps.Matches.ListByCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	for _, match := range matches {
		section, err := b.buildSection(ctx, req, match.JobID, match)
		if err != nil {
			return nil, err
		}
		view.Jobs = append(view.Jobs, *section)
	}
	return view, nil
}

// buildSection assembles one job's slice of the view.
func (b *Builder) buildSection(ctx context.Context, req Request, jobID string, match *ent.Match) (*JobSection, error) {
	job, err := b.deps.Jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job %s: %w", jobID, err)
	}

	section := &JobSection{Job: job, Match: match}
	if match != nil {
		section.Fit = fitFromNotes(match.VerificationNotes)
	}

	scorecard, err := b.deps.Assessments.Scorecard(ctx, jobID, req.CandidateID)
	if err != nil {
		return nil, err
	}
	section.Scorecard = scorecard

	session, err := b.deps.Sessions.LatestByJobCandidate(ctx, jobID, req.CandidateID)
	switch {
	case err == nil:
		summary, err := b.sessionSummary(ctx, session)
		if err != nil {
			return nil, err
		}
		section.Session = summary
	case errors.Is(err, services.ErrNotFound):
		// No session yet; the scoring input carries an empty status.
	default:
		return nil, err
	}

	sessionStatus := ""
	if section.Session != nil {
		sessionStatus = section.Session.Status
	}
	section.Overall = b.policy.Compose(scoring.Input{
		Scorecard:       scorecard,
		CandidateStatus: sessionStatus,
		ResumeReceived:  resumeReceived(match, sessionStatus),
	})

	convs, err := b.deps.Conversations.ListByJobCandidate(ctx, jobID, req.CandidateID)
	if err != nil {
		return nil, err
	}
	for _, conv := range convs {
		summary, err := b.conversationSummary(ctx, conv)
		if err != nil {
			return nil, err
		}
		section.Conversations = append(section.Conversations, *summary)
	}

	timeline, err := b.deps.Signals.ListByJobCandidate(ctx, jobID, req.CandidateID, b.cfg.TimelineLimit)
	if err != nil {
		return nil, err
	}
	section.Timeline = timeline

	if req.IncludeAudit {
		logs, err := b.deps.Audit.ListByJobCandidate(ctx, jobID, req.CandidateID, b.cfg.TimelineLimit)
		if err != nil {
			return nil, err
		}
		section.Audit = logs
	}

	if req.Explain {
		section.Explanation, section.ExplanationSource = b.explain(ctx, req.CandidateID, section, timeline)
		section.Culture = b.cultureFit(ctx, req.CandidateID, section)
	}
	return section, nil
}

// sessionSummary condenses one session row and its event history.
func (b *Builder) sessionSummary(ctx context.Context, row *ent.PreResumeSession) (*SessionSummary, error) {
	events, err := b.deps.Sessions.ListEvents(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	summary := &SessionSummary{
		ID:             row.ID,
		Status:         string(row.Status),
		FollowupsSent:  row.FollowupsSent,
		Turns:          row.Turns,
		LastIntent:     row.LastIntent,
		ResumeLinks:    row.ResumeLinks,
		NextFollowupAt: row.NextFollowupAt,
	}
	for _, ev := range events {
		summary.Events = append(summary.Events, SessionEvent{
			Type:   string(ev.EventType),
			Intent: ev.Intent,
			Status: ev.Status,
			At:     ev.CreatedAt,
		})
	}
	return summary, nil
}

// conversationSummary condenses one conversation row.
func (b *Builder) conversationSummary(ctx context.Context, conv *ent.Conversation) (*ConversationSummary, error) {
	msgs, err := b.deps.Messages.ListMessages(ctx, conv.ID, 0)
	if err != nil {
		return nil, err
	}
	summary := &ConversationSummary{
		ID:            conv.ID,
		Status:        string(conv.Status),
		Messages:      len(msgs),
		LastMessageAt: conv.LastMessageAt,
	}
	if conv.AccountID != nil {
		summary.AccountID = *conv.AccountID
	}
	if conv.ExternalChatID != nil {
		summary.ExternalChatID = *conv.ExternalChatID
	}
	return summary, nil
}

// resumeReceived reports whether a CV arrived on either record. The match
// status and the session status can disagree transiently; either one counts.
func resumeReceived(match *ent.Match, sessionStatus string) bool {
	if sessionStatus == "resume_received" {
		return true
	}
	return match != nil && string(match.Status) == "resume_received"
}

// fitFromNotes reads the matching components back out of the verification
// notes. Values round-trip through JSON, so slices arrive as []any.
func fitFromNotes(notes map[string]any) FitBreakdown {
	return FitBreakdown{
		SkillsScore:     noteFloat(notes, "skills_score"),
		SeniorityScore:  noteFloat(notes, "seniority_score"),
		LocationScore:   noteFloat(notes, "location_score"),
		LanguageScore:   noteFloat(notes, "language_score"),
		RequiredSkills:  noteStrings(notes, "required_skills"),
		MatchedSkills:   noteStrings(notes, "matched_skills"),
		TargetSeniority: noteString(notes, "target_seniority"),
		RulesVersion:    noteString(notes, "rules_version"),
		Explanation:     noteString(notes, "verify_explanation"),
		Reason:          noteString(notes, "reason"),
		Missing:         noteStrings(notes, "missing"),
	}
}

func noteFloat(notes map[string]any, key string) float64 {
	switch v := notes[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func noteString(notes map[string]any, key string) string {
	if v, ok := notes[key].(string); ok {
		return v
	}
	return ""
}

func noteStrings(notes map[string]any, key string) []string {
	switch v := notes[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

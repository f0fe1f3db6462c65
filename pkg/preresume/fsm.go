package preresume

import (
	"time"

	"github.com/hireflow/scout/pkg/config"
)

// Session statuses. Terminal statuses admit no further transitions.
const (
	StatusAwaitingReply   = "awaiting_reply"
	StatusEngagedNoResume = "engaged_no_resume"
	StatusResumePromised  = "resume_promised"
	StatusResumeReceived  = "resume_received"
	StatusNotInterested   = "not_interested"
	StatusUnreachable     = "unreachable"
	StatusStalled         = "stalled"
)

// Transition events.
const (
	EventSessionStarted   = "session_started"
	EventInboundProcessed = "inbound_processed"
	EventFollowupSent     = "followup_sent"
	EventUnreachable      = "session_unreachable"
	EventIgnoredTerminal  = "ignored_terminal"
)

// Skip reasons for follow-ups that were not sent.
const (
	ReasonMaxFollowups  = "max_followups_reached"
	ReasonTerminalState = "terminal_state"
)

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
	switch status {
	case StatusResumeReceived, StatusNotInterested, StatusUnreachable, StatusStalled:
		return true
	}
	return false
}

// State is the full FSM state. The persisted session row is canonical;
// this struct round-trips through its state blob.
type State struct {
	Status         string     `json:"status"`
	Language       string     `json:"language"`
	FollowupsSent  int        `json:"followups_sent"`
	Turns          int        `json:"turns"`
	LastIntent     string     `json:"last_intent"`
	ResumeLinks    []string   `json:"resume_links"`
	NextFollowupAt *time.Time `json:"next_followup_at"`
	Vars           Vars       `json:"vars"`
}

// TemplateSource yields the current template bundle. A *Bundle is its own
// source; a TemplateStore swaps bundles on reload.
type TemplateSource interface {
	Bundle() *Bundle
}

// InboundResult is the outcome of one inbound message.
type InboundResult struct {
	Event        string
	Intent       string
	OutboundText string
	ResumeLinks  []string
	State        State
}

// FollowupResult is the outcome of one follow-up attempt.
type FollowupResult struct {
	Sent   bool
	Reason string
	Text   string
	State  State
}

// Machine computes pure FSM transitions. It never performs I/O; the Manager
// persists the returned state.
type Machine struct {
	cfg       *config.PreResumeConfig
	templates TemplateSource
}

// NewMachine creates a machine. A nil config uses the built-in defaults; a
// nil template source uses the built-in bundle.
func NewMachine(cfg *config.PreResumeConfig, templates TemplateSource) *Machine {
	if cfg == nil {
		cfg = config.DefaultPreResumeConfig()
	}
	if templates == nil {
		templates = NewBundle(cfg.DefaultLanguage)
	}
	return &Machine{cfg: cfg, templates: templates}
}

// Start produces the intro message and the initial session state. An empty
// language stays empty so the first inbound can detect it.
func (m *Machine) Start(vars Vars, language string, now time.Time) (string, State) {
	next := now.UTC().Add(m.delayAfter(0))
	st := State{
		Status:         StatusAwaitingReply,
		Language:       language,
		NextFollowupAt: &next,
		Vars:           vars,
	}
	intro := m.render(PurposeIntro, st, vars)
	return intro, st
}

// HandleInbound classifies one inbound text and advances the state. Terminal
// sessions are left untouched.
func (m *Machine) HandleInbound(st State, text string, now time.Time) InboundResult {
	if IsTerminal(st.Status) {
		return InboundResult{Event: EventIgnoredTerminal, State: st}
	}

	if st.Language == "" {
		st.Language = DetectLanguage(text)
	}

	intent, links := ClassifyIntent(text)
	st.Turns++
	st.LastIntent = intent

	var purpose string
	switch intent {
	case IntentResumeShared:
		st.Status = StatusResumeReceived
		st.ResumeLinks = mergeLinks(st.ResumeLinks, links)
		st.NextFollowupAt = nil
		purpose = PurposeResumeAck
	case IntentNotInterested:
		st.Status = StatusNotInterested
		st.NextFollowupAt = nil
		purpose = PurposeOptOutAck
	case IntentWillSendLater:
		st.Status = StatusResumePromised
		st.NextFollowupAt = m.scheduleFrom(now, st.FollowupsSent)
		purpose = PurposePromiseAck
	default:
		st.Status = StatusEngagedNoResume
		st.NextFollowupAt = m.scheduleFrom(now, st.FollowupsSent)
		purpose = AnswerPurpose(intent)
	}

	return InboundResult{
		Event:        EventInboundProcessed,
		Intent:       intent,
		OutboundText: m.render(purpose, st, st.Vars),
		ResumeLinks:  links,
		State:        st,
	}
}

// BuildFollowup composes the next follow-up. The send that reaches the cap
// still goes out and stalls the session in the same step; later calls are
// skipped with a reason.
func (m *Machine) BuildFollowup(st State, now time.Time) FollowupResult {
	if IsTerminal(st.Status) {
		reason := ReasonTerminalState
		if st.Status == StatusStalled {
			reason = ReasonMaxFollowups
		}
		return FollowupResult{Reason: reason, State: st}
	}
	if st.FollowupsSent >= m.cfg.MaxFollowups {
		st.Status = StatusStalled
		st.NextFollowupAt = nil
		return FollowupResult{Reason: ReasonMaxFollowups, State: st}
	}

	st.FollowupsSent++
	if st.FollowupsSent >= m.cfg.MaxFollowups {
		st.Status = StatusStalled
		st.NextFollowupAt = nil
	} else {
		st.NextFollowupAt = m.scheduleFrom(now, st.FollowupsSent)
	}

	return FollowupResult{
		Sent:  true,
		Text:  m.render(PurposeFollowup, st, st.Vars),
		State: st,
	}
}

// MarkUnreachable forces the terminal unreachable state. Already-terminal
// sessions are left untouched.
func (m *Machine) MarkUnreachable(st State) State {
	if IsTerminal(st.Status) {
		return st
	}
	st.Status = StatusUnreachable
	st.NextFollowupAt = nil
	return st
}

func (m *Machine) render(purpose string, st State, vars Vars) string {
	lang := st.Language
	if lang == "" {
		lang = m.cfg.DefaultLanguage
	}
	text, err := m.templates.Bundle().Render(purpose, lang, vars)
	if err != nil {
		return ""
	}
	return text
}

// delayAfter returns the wait before the next follow-up given how many have
// been sent; the last configured delay repeats.
func (m *Machine) delayAfter(followupsSent int) time.Duration {
	delays := m.cfg.FollowupDelayHours
	if len(delays) == 0 {
		delays = config.DefaultPreResumeConfig().FollowupDelayHours
	}
	idx := followupsSent
	if idx > len(delays)-1 {
		idx = len(delays) - 1
	}
	return time.Duration(delays[idx]) * time.Hour
}

func (m *Machine) scheduleFrom(now time.Time, followupsSent int) *time.Time {
	next := now.UTC().Add(m.delayAfter(followupsSent))
	return &next
}

func mergeLinks(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, link := range existing {
		if !seen[link] {
			seen[link] = true
			merged = append(merged, link)
		}
	}
	for _, link := range incoming {
		if !seen[link] {
			seen[link] = true
			merged = append(merged, link)
		}
	}
	return merged
}

package preresume

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/services"
)

const lockStripes = 64

// Manager runs the FSM against persisted sessions. The row is the canonical
// state; the manager reads it, applies a pure transition, and writes it back
// under a per-session stripe lock so concurrent inbounds cannot interleave.
type Manager struct {
	machine  *Machine
	sessions *services.SessionService
	logger   *slog.Logger
	locks    [lockStripes]sync.Mutex
}

// NewManager creates a manager.
func NewManager(cfg *config.PreResumeConfig, sessions *services.SessionService, templates TemplateSource, logger *slog.Logger) *Manager {
	if sessions == nil {
		panic("NewManager: sessions must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		machine:  NewMachine(cfg, templates),
		sessions: sessions,
		logger:   logger,
	}
}

// StartSessionInput identifies the session and carries the template values
// rendered into every message of the session.
type StartSessionInput struct {
	SessionID      string
	ConversationID string
	JobID          string
	CandidateID    string

	CandidateName      string
	JobTitle           string
	ScopeSummary       string
	CoreProfileSummary string

	// Language may be empty; the first inbound then detects it.
	Language string

	// Intro, when set, is recorded as the opening message instead of the
	// rendered intro template. The outreach stage passes its composed copy
	// here so the session log matches what actually went out.
	Intro string
}

// StartSessionResult is the created session and its intro message.
type StartSessionResult struct {
	Session *ent.PreResumeSession
	Intro   string
}

// InboundOutcome is the persisted result of one inbound message.
type InboundOutcome struct {
	Session      *ent.PreResumeSession
	Event        string
	Intent       string
	OutboundText string
	ResumeLinks  []string
}

// FollowupOutcome is the persisted result of one follow-up attempt.
type FollowupOutcome struct {
	Session *ent.PreResumeSession
	Sent    bool
	Reason  string
	Text    string
}

// StartSession opens a session and composes its intro message.
func (m *Manager) StartSession(ctx context.Context, in StartSessionInput) (*StartSessionResult, error) {
	vars := Vars{
		Name:               in.CandidateName,
		JobTitle:           in.JobTitle,
		ScopeSummary:       in.ScopeSummary,
		CoreProfileSummary: in.CoreProfileSummary,
	}
	intro, st := m.machine.Start(vars, in.Language, time.Now())
	if in.Intro != "" {
		intro = in.Intro
	}

	row, err := m.sessions.CreateSession(ctx, services.CreateSessionInput{
		ID:             in.SessionID,
		ConversationID: in.ConversationID,
		JobID:          in.JobID,
		CandidateID:    in.CandidateID,
		Language:       st.Language,
		NextFollowupAt: st.NextFollowupAt,
		State:          encodeState(st),
		Event: &services.SessionEventInput{
			EventType:    EventSessionStarted,
			OutboundText: intro,
			Status:       st.Status,
		},
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("Pre-resume session started",
		"session_id", row.ID,
		"job_id", in.JobID,
		"candidate_id", in.CandidateID)
	return &StartSessionResult{Session: row, Intro: intro}, nil
}

// HandleInbound processes one inbound text for a session. Terminal sessions
// are not modified and report an ignored_terminal event.
func (m *Manager) HandleInbound(ctx context.Context, sessionID, text string, now time.Time) (*InboundOutcome, error) {
	lock := m.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	row, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := m.machine.HandleInbound(stateFromSession(row), text, now)
	if result.Event == EventIgnoredTerminal {
		return &InboundOutcome{Session: row, Event: EventIgnoredTerminal}, nil
	}

	updated, err := m.sessions.ApplyTransition(ctx, services.SessionTransition{
		SessionID:         sessionID,
		Status:            result.State.Status,
		Language:          result.State.Language,
		FollowupsSent:     &result.State.FollowupsSent,
		Turns:             &result.State.Turns,
		LastIntent:        result.Intent,
		ResumeLinks:       result.State.ResumeLinks,
		NextFollowupAt:    result.State.NextFollowupAt,
		ClearNextFollowup: result.State.NextFollowupAt == nil,
		State:             encodeState(result.State),
		Event: &services.SessionEventInput{
			EventType:    EventInboundProcessed,
			Intent:       result.Intent,
			InboundText:  text,
			OutboundText: result.OutboundText,
			Status:       result.State.Status,
		},
	})
	if err != nil {
		return nil, err
	}

	return &InboundOutcome{
		Session:      updated,
		Event:        result.Event,
		Intent:       result.Intent,
		OutboundText: result.OutboundText,
		ResumeLinks:  result.ResumeLinks,
	}, nil
}

// BuildFollowup composes the next follow-up for a session, stalling it when
// the cap is reached.
func (m *Manager) BuildFollowup(ctx context.Context, sessionID string, now time.Time) (*FollowupOutcome, error) {
	lock := m.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	row, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	before := stateFromSession(row)
	result := m.machine.BuildFollowup(before, now)

	if !result.Sent {
		// The cap can stall a session on a skipped call; persist only that.
		if result.State.Status == before.Status {
			return &FollowupOutcome{Session: row, Reason: result.Reason}, nil
		}
		updated, err := m.sessions.ApplyTransition(ctx, services.SessionTransition{
			SessionID:         sessionID,
			Status:            result.State.Status,
			ClearNextFollowup: true,
			State:             encodeState(result.State),
		})
		if err != nil {
			return nil, err
		}
		return &FollowupOutcome{Session: updated, Reason: result.Reason}, nil
	}

	updated, err := m.sessions.ApplyTransition(ctx, services.SessionTransition{
		SessionID:         sessionID,
		Status:            result.State.Status,
		FollowupsSent:     &result.State.FollowupsSent,
		NextFollowupAt:    result.State.NextFollowupAt,
		ClearNextFollowup: result.State.NextFollowupAt == nil,
		State:             encodeState(result.State),
		Event: &services.SessionEventInput{
			EventType:    EventFollowupSent,
			OutboundText: result.Text,
			Status:       result.State.Status,
		},
	})
	if err != nil {
		return nil, err
	}

	return &FollowupOutcome{Session: updated, Sent: true, Text: result.Text}, nil
}

// MarkUnreachable forces a session into the terminal unreachable state,
// recording the delivery error. Already-terminal sessions are untouched.
func (m *Manager) MarkUnreachable(ctx context.Context, sessionID, errText string, now time.Time) (*ent.PreResumeSession, error) {
	lock := m.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	row, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	before := stateFromSession(row)
	st := m.machine.MarkUnreachable(before)
	if st.Status == before.Status {
		return row, nil
	}

	updated, err := m.sessions.ApplyTransition(ctx, services.SessionTransition{
		SessionID:         sessionID,
		Status:            st.Status,
		ClearNextFollowup: true,
		State:             encodeState(st),
		LastError:         &errText,
		Event: &services.SessionEventInput{
			EventType: EventUnreachable,
			Status:    st.Status,
		},
	})
	if err != nil {
		return nil, err
	}

	m.logger.Warn("Pre-resume session unreachable",
		"session_id", sessionID,
		"error", errText)
	return updated, nil
}

// ListDueFollowups exposes the due-session query for the follow-up ticker.
func (m *Manager) ListDueFollowups(ctx context.Context, now time.Time, limit int) ([]*ent.PreResumeSession, error) {
	return m.sessions.ListDueFollowups(ctx, now, limit)
}

func (m *Manager) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &m.locks[h.Sum32()%lockStripes]
}

// encodeState serializes the FSM state for the session's state blob.
func encodeState(st State) map[string]any {
	raw, err := json.Marshal(st)
	if err != nil {
		return nil
	}
	var blob map[string]any
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil
	}
	return blob
}

// stateFromSession rebuilds the FSM state, preferring the state blob (which
// carries the template vars) and falling back to the row columns.
func stateFromSession(row *ent.PreResumeSession) State {
	if len(row.State) > 0 {
		raw, err := json.Marshal(row.State)
		if err == nil {
			var st State
			if err := json.Unmarshal(raw, &st); err == nil && st.Status != "" {
				return st
			}
		}
	}
	return State{
		Status:         string(row.Status),
		Language:       row.Language,
		FollowupsSent:  row.FollowupsSent,
		Turns:          row.Turns,
		LastIntent:     row.LastIntent,
		ResumeLinks:    row.ResumeLinks,
		NextFollowupAt: row.NextFollowupAt,
	}
}

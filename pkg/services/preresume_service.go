package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
	"github.com/hireflow/scout/pkg/store"
)

// nonTerminalSessionStatuses are the states a session can still move out of.
var nonTerminalSessionStatuses = []preresumesession.Status{
	preresumesession.StatusAwaitingReply,
	preresumesession.StatusEngagedNoResume,
	preresumesession.StatusResumePromised,
}

// CreateSessionInput contains the fields for opening a pre-resume session.
type CreateSessionInput struct {
	ID             string
	ConversationID string
	JobID          string
	CandidateID    string
	Language       string
	NextFollowupAt *time.Time
	State          map[string]any
	Event          *SessionEventInput
}

// SessionEventInput is one audit event appended alongside a session write.
type SessionEventInput struct {
	EventType    string
	Intent       string
	InboundText  string
	OutboundText string
	Status       string
}

// SessionTransition carries the fields of one persisted FSM transition.
// Nil pointers leave the column unchanged; ClearNextFollowup removes the
// schedule explicitly (terminal states, follow-up cap).
type SessionTransition struct {
	SessionID         string
	Status            string
	Language          string
	FollowupsSent     *int
	Turns             *int
	LastIntent        string
	ResumeLinks       []string
	NextFollowupAt    *time.Time
	ClearNextFollowup bool
	State             map[string]any
	LastError         *string
	Event             *SessionEventInput
}

// SessionService persists pre-resume sessions and their event log. Every
// transition writes the full serialized state so a process restart between
// calls loses nothing.
type SessionService struct {
	store *store.Switchboard
}

// NewSessionService creates a new SessionService.
func NewSessionService(sb *store.Switchboard) *SessionService {
	if sb == nil {
		panic("NewSessionService: store must not be nil")
	}
	return &SessionService{store: sb}
}

// CreateSession opens a session. A second non-terminal session for the same
// (job, candidate) pair is rejected.
func (s *SessionService) CreateSession(ctx context.Context, in CreateSessionInput) (*ent.PreResumeSession, error) {
	if in.JobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if in.CandidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}

	open, err := s.store.Writer().PreResumeSession.Query().
		Where(
			preresumesession.JobID(in.JobID),
			preresumesession.CandidateID(in.CandidateID),
			preresumesession.StatusIn(nonTerminalSessionStatuses...),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check open sessions: %w", err)
	}
	if open {
		return nil, fmt.Errorf("%w: open pre-resume session for candidate %s", ErrAlreadyExists, in.CandidateID)
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	tx, err := s.store.Writer().Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	builder := tx.PreResumeSession.Create().
		SetID(id).
		SetJobID(in.JobID).
		SetCandidateID(in.CandidateID)
	if in.ConversationID != "" {
		builder.SetConversationID(in.ConversationID)
	}
	if in.Language != "" {
		builder.SetLanguage(in.Language)
	}
	if in.NextFollowupAt != nil {
		builder.SetNextFollowupAt(in.NextFollowupAt.UTC())
	}
	if in.State != nil {
		builder.SetState(in.State)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, rollback(tx, fmt.Errorf("%w: session", ErrAlreadyExists))
		}
		return nil, rollback(tx, fmt.Errorf("failed to create session: %w", err))
	}

	var eventID int
	if in.Event != nil {
		eventID, err = createSessionEvent(ctx, tx, row, in.Event)
		if err != nil {
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := s.store.Mirror().Session(ctx, row.ID); err != nil {
		return nil, err
	}
	if eventID != 0 {
		if err := s.store.Mirror().Event(ctx, eventID); err != nil {
			return nil, err
		}
	}
	return row, nil
}

// GetSession returns a session by id.
func (s *SessionService) GetSession(ctx context.Context, id string) (*ent.PreResumeSession, error) {
	if id == "" {
		return nil, NewValidationError("session_id", "session id is required")
	}
	row, err := s.store.Reader().PreResumeSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return row, nil
}

// GetByConversation returns the session bound to a conversation.
func (s *SessionService) GetByConversation(ctx context.Context, conversationID string) (*ent.PreResumeSession, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "conversation id is required")
	}
	row, err := s.store.Reader().PreResumeSession.Query().
		Where(preresumesession.ConversationID(conversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session by conversation: %w", err)
	}
	return row, nil
}

// LatestByJobCandidate returns the newest session for a pair, open or
// terminal. The profile builder reads session state from here.
func (s *SessionService) LatestByJobCandidate(ctx context.Context, jobID, candidateID string) (*ent.PreResumeSession, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	row, err := s.store.Reader().PreResumeSession.Query().
		Where(
			preresumesession.JobID(jobID),
			preresumesession.CandidateID(candidateID),
		).
		Order(ent.Desc(preresumesession.FieldCreatedAt), ent.Desc(preresumesession.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest session: %w", err)
	}
	return row, nil
}

// BindConversation attaches a conversation to a session, once.
func (s *SessionService) BindConversation(ctx context.Context, sessionID, conversationID string) (*ent.PreResumeSession, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "conversation id is required")
	}
	row, err := s.store.Writer().PreResumeSession.UpdateOneID(sessionID).
		SetConversationID(conversationID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: conversation already bound to a session", ErrConflict)
		}
		return nil, fmt.Errorf("failed to bind conversation: %w", err)
	}
	if err := s.store.Mirror().Session(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// ApplyTransition persists one FSM transition and its event atomically.
func (s *SessionService) ApplyTransition(ctx context.Context, tr SessionTransition) (*ent.PreResumeSession, error) {
	if tr.SessionID == "" {
		return nil, NewValidationError("session_id", "session id is required")
	}
	if tr.Status != "" {
		if err := preresumesession.StatusValidator(preresumesession.Status(tr.Status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown session status %q", tr.Status))
		}
	}

	tx, err := s.store.Writer().Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	update := tx.PreResumeSession.UpdateOneID(tr.SessionID)
	if tr.Status != "" {
		update.SetStatus(preresumesession.Status(tr.Status))
	}
	if tr.Language != "" {
		update.SetLanguage(tr.Language)
	}
	if tr.FollowupsSent != nil {
		update.SetFollowupsSent(*tr.FollowupsSent)
	}
	if tr.Turns != nil {
		update.SetTurns(*tr.Turns)
	}
	if tr.LastIntent != "" {
		update.SetLastIntent(tr.LastIntent)
	}
	if tr.ResumeLinks != nil {
		update.SetResumeLinks(tr.ResumeLinks)
	}
	switch {
	case tr.ClearNextFollowup:
		update.ClearNextFollowupAt()
	case tr.NextFollowupAt != nil:
		update.SetNextFollowupAt(tr.NextFollowupAt.UTC())
	}
	if tr.State != nil {
		update.SetState(tr.State)
	}
	if tr.LastError != nil {
		update.SetLastError(*tr.LastError)
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("failed to update session: %w", err))
	}

	var eventID int
	if tr.Event != nil {
		eventID, err = createSessionEvent(ctx, tx, row, tr.Event)
		if err != nil {
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := s.store.Mirror().Session(ctx, row.ID); err != nil {
		return nil, err
	}
	if eventID != 0 {
		if err := s.store.Mirror().Event(ctx, eventID); err != nil {
			return nil, err
		}
	}
	return row, nil
}

// ListDueFollowups returns non-terminal sessions whose follow-up is due,
// soonest first.
func (s *SessionService) ListDueFollowups(ctx context.Context, now time.Time, limit int) ([]*ent.PreResumeSession, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.store.Reader().PreResumeSession.Query().
		Where(
			preresumesession.StatusIn(nonTerminalSessionStatuses...),
			preresumesession.NextFollowupAtNotNil(),
			preresumesession.NextFollowupAtLTE(now.UTC()),
		).
		Order(ent.Asc(preresumesession.FieldNextFollowupAt), ent.Asc(preresumesession.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due followups: %w", err)
	}
	return rows, nil
}

// ListEvents returns a session's events in insertion order.
func (s *SessionService) ListEvents(ctx context.Context, sessionID string) ([]*ent.PreResumeEvent, error) {
	rows, err := s.store.Reader().PreResumeEvent.Query().
		Where(preresumeevent.SessionID(sessionID)).
		Order(ent.Asc(preresumeevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list session events: %w", err)
	}
	return rows, nil
}

// ListEventsByJob returns every pre-resume event recorded for a job, in
// insertion order. The signal engine reads these.
func (s *SessionService) ListEventsByJob(ctx context.Context, jobID string) ([]*ent.PreResumeEvent, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	rows, err := s.store.Reader().PreResumeEvent.Query().
		Where(preresumeevent.JobID(jobID)).
		Order(ent.Asc(preresumeevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job events: %w", err)
	}
	return rows, nil
}

// createSessionEvent appends one event row inside the caller's transaction.
func createSessionEvent(ctx context.Context, tx *ent.Tx, session *ent.PreResumeSession, in *SessionEventInput) (int, error) {
	eventType := preresumeevent.EventType(in.EventType)
	if err := preresumeevent.EventTypeValidator(eventType); err != nil {
		return 0, NewValidationError("event_type", fmt.Sprintf("unknown event type %q", in.EventType))
	}

	builder := tx.PreResumeEvent.Create().
		SetSessionID(session.ID).
		SetEventType(eventType)
	if session.JobID != "" {
		builder.SetJobID(session.JobID)
	}
	if session.CandidateID != "" {
		builder.SetCandidateID(session.CandidateID)
	}
	if in.Intent != "" {
		builder.SetIntent(in.Intent)
	}
	if in.InboundText != "" {
		builder.SetInboundText(in.InboundText)
	}
	if in.OutboundText != "" {
		builder.SetOutboundText(in.OutboundText)
	}
	if in.Status != "" {
		builder.SetStatus(in.Status)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create session event: %w", err)
	}
	return row.ID, nil
}

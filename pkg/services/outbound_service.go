package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/pkg/store"
)

// openActionStatuses are the states the dispatcher still owns.
var openActionStatuses = []outboundaction.Status{
	outboundaction.StatusPending,
	outboundaction.StatusPendingConnection,
	outboundaction.StatusDeferred,
}

// EnqueueActionInput contains the fields for queueing an outbound intent.
type EnqueueActionInput struct {
	JobID          string
	CandidateID    string
	ConversationID string
	Kind           string
	Payload        map[string]any
}

// OutboundService handles the queued outbound intents the dispatcher
// drains. Enqueueing is idempotent per (conversation, kind) while an open
// action exists, so re-running a stage never duplicates sends.
type OutboundService struct {
	store *store.Switchboard
}

// NewOutboundService creates a new OutboundService.
func NewOutboundService(sb *store.Switchboard) *OutboundService {
	if sb == nil {
		panic("NewOutboundService: store must not be nil")
	}
	return &OutboundService{store: sb}
}

// EnqueueAction queues an intent. When an open action of the same kind
// already exists for the conversation it is returned and the second return
// value is false.
func (s *OutboundService) EnqueueAction(ctx context.Context, in EnqueueActionInput) (*ent.OutboundAction, bool, error) {
	if in.JobID == "" {
		return nil, false, NewValidationError("job_id", "job id is required")
	}
	if in.CandidateID == "" {
		return nil, false, NewValidationError("candidate_id", "candidate id is required")
	}
	if in.ConversationID == "" {
		return nil, false, NewValidationError("conversation_id", "conversation id is required")
	}
	kind := outboundaction.Kind(in.Kind)
	if err := outboundaction.KindValidator(kind); err != nil {
		return nil, false, NewValidationError("kind", fmt.Sprintf("unknown action kind %q", in.Kind))
	}

	existing, err := s.store.Writer().OutboundAction.Query().
		Where(
			outboundaction.ConversationID(in.ConversationID),
			outboundaction.KindEQ(kind),
			outboundaction.StatusIn(openActionStatuses...),
		).
		First(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to check open actions: %w", err)
	}

	builder := s.store.Writer().OutboundAction.Create().
		SetID(uuid.New().String()).
		SetJobID(in.JobID).
		SetCandidateID(in.CandidateID).
		SetConversationID(in.ConversationID).
		SetKind(kind)
	if len(in.Payload) > 0 {
		builder.SetPayload(in.Payload)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to enqueue action: %w", err)
	}

	if err := s.store.Mirror().Action(ctx, row.ID); err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// GetAction returns an action by id.
func (s *OutboundService) GetAction(ctx context.Context, id string) (*ent.OutboundAction, error) {
	if id == "" {
		return nil, NewValidationError("action_id", "action id is required")
	}
	row, err := s.store.Reader().OutboundAction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get action: %w", err)
	}
	return row, nil
}

// HasOpenAction reports whether the conversation has an open action of the
// given kind. Stages use it to make replays cheap no-ops.
func (s *OutboundService) HasOpenAction(ctx context.Context, conversationID, kind string) (bool, error) {
	if conversationID == "" {
		return false, NewValidationError("conversation_id", "conversation id is required")
	}
	n, err := s.store.Reader().OutboundAction.Query().
		Where(
			outboundaction.ConversationID(conversationID),
			outboundaction.KindEQ(outboundaction.Kind(kind)),
			outboundaction.StatusIn(openActionStatuses...),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check open actions: %w", err)
	}
	return n > 0, nil
}

// ListByStatus returns actions in the given statuses, oldest first. A
// non-empty jobID narrows to one job.
func (s *OutboundService) ListByStatus(ctx context.Context, statuses []string, jobID string, limit int) ([]*ent.OutboundAction, error) {
	if limit <= 0 {
		limit = 100
	}
	converted := make([]outboundaction.Status, 0, len(statuses))
	for _, st := range statuses {
		status := outboundaction.Status(st)
		if err := outboundaction.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown action status %q", st))
		}
		converted = append(converted, status)
	}

	query := s.store.Reader().OutboundAction.Query()
	if len(converted) > 0 {
		query = query.Where(outboundaction.StatusIn(converted...))
	}
	if jobID != "" {
		query = query.Where(outboundaction.JobID(jobID))
	}
	rows, err := query.
		Order(ent.Asc(outboundaction.FieldCreatedAt), ent.Asc(outboundaction.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return rows, nil
}

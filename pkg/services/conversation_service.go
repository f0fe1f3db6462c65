package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/pkg/store"
)

// ConversationService handles message threads between a job's sender
// account and a candidate. The provider-side chat id is unique across
// conversations; binding it to a new conversation for the same candidate
// transfers ownership, while a clash across candidates is a conflict.
type ConversationService struct {
	store *store.Switchboard
}

// NewConversationService creates a new ConversationService.
func NewConversationService(sb *store.Switchboard) *ConversationService {
	if sb == nil {
		panic("NewConversationService: store must not be nil")
	}
	return &ConversationService{store: sb}
}

// EnsureConversation returns the newest conversation for a pair, creating
// one when none exists.
func (s *ConversationService) EnsureConversation(ctx context.Context, jobID, candidateID string) (*ent.Conversation, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}

	row, err := s.store.Writer().Conversation.Query().
		Where(conversation.JobID(jobID), conversation.CandidateID(candidateID)).
		Order(ent.Desc(conversation.FieldCreatedAt), ent.Desc(conversation.FieldID)).
		First(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}

	row, err = s.store.Writer().Conversation.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetCandidateID(candidateID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	if err := s.store.Mirror().Conversation(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// GetConversation returns a conversation by id.
func (s *ConversationService) GetConversation(ctx context.Context, id string) (*ent.Conversation, error) {
	if id == "" {
		return nil, NewValidationError("conversation_id", "conversation id is required")
	}
	row, err := s.store.Reader().Conversation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return row, nil
}

// GetByExternalChatID returns the conversation bound to a provider chat id.
func (s *ConversationService) GetByExternalChatID(ctx context.Context, chatID string) (*ent.Conversation, error) {
	if chatID == "" {
		return nil, NewValidationError("external_chat_id", "chat id is required")
	}
	row, err := s.store.Reader().Conversation.Query().
		Where(conversation.ExternalChatID(chatID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation by chat id: %w", err)
	}
	return row, nil
}

// ListByJobCandidate returns a pair's conversations, newest first.
func (s *ConversationService) ListByJobCandidate(ctx context.Context, jobID, candidateID string) ([]*ent.Conversation, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	if candidateID == "" {
		return nil, NewValidationError("candidate_id", "candidate id is required")
	}
	rows, err := s.store.Reader().Conversation.Query().
		Where(conversation.JobID(jobID), conversation.CandidateID(candidateID)).
		Order(ent.Desc(conversation.FieldCreatedAt), ent.Desc(conversation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return rows, nil
}

// BindExternalChatID attaches a provider chat id to a conversation. If the
// id is already held by an older conversation of the same candidate, the
// binding moves here; a holder with a different candidate is a conflict.
func (s *ConversationService) BindExternalChatID(ctx context.Context, conversationID, chatID string) (*ent.Conversation, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "conversation id is required")
	}
	if chatID == "" {
		return nil, NewValidationError("external_chat_id", "chat id is required")
	}

	tx, err := s.store.Writer().Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	target, err := tx.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("failed to get conversation: %w", err))
	}
	if target.ExternalChatID != nil && *target.ExternalChatID == chatID {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return target, nil
	}

	var transferredFrom string
	holder, err := tx.Conversation.Query().
		Where(conversation.ExternalChatID(chatID)).
		Only(ctx)
	switch {
	case err == nil && holder.ID != target.ID:
		if holder.CandidateID != target.CandidateID {
			return nil, rollback(tx, fmt.Errorf("%w: chat id %s belongs to another candidate", ErrConflict, chatID))
		}
		if err := tx.Conversation.UpdateOneID(holder.ID).ClearExternalChatID().Exec(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("failed to release chat id: %w", err))
		}
		transferredFrom = holder.ID
	case err != nil && !ent.IsNotFound(err):
		return nil, rollback(tx, fmt.Errorf("failed to query chat id holder: %w", err))
	}

	updated, err := tx.Conversation.UpdateOneID(target.ID).
		SetExternalChatID(chatID).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to bind chat id: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if transferredFrom != "" {
		if err := s.store.Mirror().Conversation(ctx, transferredFrom); err != nil {
			return nil, err
		}
	}
	if err := s.store.Mirror().Conversation(ctx, updated.ID); err != nil {
		return nil, err
	}
	return updated, nil
}

// SetAccount binds the sender account handling the conversation.
func (s *ConversationService) SetAccount(ctx context.Context, conversationID, accountID string) (*ent.Conversation, error) {
	if accountID == "" {
		return nil, NewValidationError("account_id", "account id is required")
	}
	row, err := s.store.Writer().Conversation.UpdateOneID(conversationID).
		SetAccountID(accountID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set conversation account: %w", err)
	}
	if err := s.store.Mirror().Conversation(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// SetStatus moves the conversation to the given status.
func (s *ConversationService) SetStatus(ctx context.Context, conversationID, status string) (*ent.Conversation, error) {
	st := conversation.Status(status)
	if err := conversation.StatusValidator(st); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("unknown conversation status %q", status))
	}
	row, err := s.store.Writer().Conversation.UpdateOneID(conversationID).
		SetStatus(st).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set conversation status: %w", err)
	}
	if err := s.store.Mirror().Conversation(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// ListPollable returns active conversations with a bound provider chat,
// oldest first. These are the threads the inbound poller reads.
func (s *ConversationService) ListPollable(ctx context.Context, limit int) ([]*ent.Conversation, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.store.Reader().Conversation.Query().
		Where(
			conversation.StatusEQ(conversation.StatusActive),
			conversation.ExternalChatIDNotNil(),
		).
		Order(ent.Asc(conversation.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pollable conversations: %w", err)
	}
	return rows, nil
}

// TouchLastMessage records message activity on the conversation.
func (s *ConversationService) TouchLastMessage(ctx context.Context, conversationID string, at time.Time) error {
	err := s.store.Writer().Conversation.UpdateOneID(conversationID).
		SetLastMessageAt(at.UTC()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return s.store.Mirror().Conversation(ctx, conversationID)
}

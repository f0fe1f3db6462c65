package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/message"
	"github.com/hireflow/scout/ent/predicate"
	"github.com/hireflow/scout/pkg/store"
)

// AddMessageInput contains the fields for appending a message to a
// conversation. Meta may carry a provider_message_id used for poller
// deduplication, a delivery tag, and the auto flag.
type AddMessageInput struct {
	ConversationID string
	Direction      string
	Language       string
	Content        string
	Meta           map[string]any
}

// MessageService handles the append-only message log of conversations.
type MessageService struct {
	store *store.Switchboard
}

// NewMessageService creates a new MessageService.
func NewMessageService(sb *store.Switchboard) *MessageService {
	if sb == nil {
		panic("NewMessageService: store must not be nil")
	}
	return &MessageService{store: sb}
}

// AddMessage appends a message. When the meta carries a provider message id
// already present in the conversation, the existing row is returned and the
// second return value is false.
func (s *MessageService) AddMessage(ctx context.Context, in AddMessageInput) (*ent.Message, bool, error) {
	if in.ConversationID == "" {
		return nil, false, NewValidationError("conversation_id", "conversation id is required")
	}
	if in.Content == "" {
		return nil, false, NewValidationError("content", "content is required")
	}
	direction := message.Direction(in.Direction)
	if err := message.DirectionValidator(direction); err != nil {
		return nil, false, NewValidationError("direction", "must be inbound or outbound")
	}

	if pmid := providerMessageID(in.Meta); pmid != "" {
		existing, err := s.store.Writer().Message.Query().
			Where(message.ConversationID(in.ConversationID), metaProviderMessageID(pmid)).
			First(ctx)
		if err == nil {
			return existing, false, nil
		}
		if !ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("failed to check message dedupe: %w", err)
		}
	}

	builder := s.store.Writer().Message.Create().
		SetConversationID(in.ConversationID).
		SetDirection(direction).
		SetContent(in.Content)
	if in.Language != "" {
		builder.SetLanguage(in.Language)
	}
	if len(in.Meta) > 0 {
		builder.SetMeta(in.Meta)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, false, fmt.Errorf("%w: conversation %s", ErrNotFound, in.ConversationID)
		}
		return nil, false, fmt.Errorf("failed to add message: %w", err)
	}

	err = s.store.Writer().Conversation.UpdateOneID(in.ConversationID).
		SetLastMessageAt(row.CreatedAt).
		Exec(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to touch conversation: %w", err)
	}

	if err := s.store.Mirror().Message(ctx, row.ID); err != nil {
		return nil, false, err
	}
	if err := s.store.Mirror().Conversation(ctx, in.ConversationID); err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// ListMessages returns a conversation's messages in insertion order. A
// positive limit keeps only the newest rows, still oldest-first.
func (s *MessageService) ListMessages(ctx context.Context, conversationID string, limit int) ([]*ent.Message, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "conversation id is required")
	}

	if limit > 0 {
		rows, err := s.store.Reader().Message.Query().
			Where(message.ConversationID(conversationID)).
			Order(ent.Desc(message.FieldID)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
		return rows, nil
	}

	rows, err := s.store.Reader().Message.Query().
		Where(message.ConversationID(conversationID)).
		Order(ent.Asc(message.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return rows, nil
}

// HasProviderMessage reports whether the conversation already stored a
// message with the given provider message id.
func (s *MessageService) HasProviderMessage(ctx context.Context, conversationID, providerMessageID string) (bool, error) {
	if providerMessageID == "" {
		return false, nil
	}
	n, err := s.store.Reader().Message.Query().
		Where(message.ConversationID(conversationID), metaProviderMessageID(providerMessageID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check provider message: %w", err)
	}
	return n > 0, nil
}

func providerMessageID(meta map[string]any) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta["provider_message_id"].(string); ok {
		return v
	}
	return ""
}

func metaProviderMessageID(id string) predicate.Message {
	return predicate.Message(func(s *sql.Selector) {
		s.Where(sqljson.ValueEQ(message.FieldMeta, id, sqljson.Path("provider_message_id")))
	})
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// external_chat_id is unique across all conversations; when the provider
// reports the same chat for the same candidate twice, ownership transfers
// to the newer conversation and the older one loses the id.
type Conversation struct {
	ent.Schema
}

// Annotations of the Conversation.
func (Conversation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "conversations"},
	}
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("candidate_id").
			Immutable(),
		field.String("channel").
			Default("provider"),
		field.Enum("status").
			Values("active", "waiting_connection", "closed").
			Default("active"),
		field.String("external_chat_id").
			Optional().
			Nillable().
			Unique().
			Comment("Chat identifier on the messaging provider"),
		field.String("account_id").
			Optional().
			Nillable().
			Comment("Sender account the conversation is bound to"),
		field.Time("last_message_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("conversations").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.From("candidate", Candidate.Type).
			Ref("conversations").
			Field("candidate_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pre_resume_session", PreResumeSession.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "candidate_id"),
		index.Fields("status"),
	}
}

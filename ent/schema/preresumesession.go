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

// PreResumeSession holds the schema definition for the PreResumeSession
// entity: the per-conversation FSM that exists to obtain a CV. The persisted
// row is the canonical state; any in-memory copy is a read cache.
// Terminal statuses: resume_received, not_interested, unreachable, stalled.
type PreResumeSession struct {
	ent.Schema
}

// Annotations of the PreResumeSession.
func (PreResumeSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pre_resume_sessions"},
	}
}

// Fields of the PreResumeSession.
func (PreResumeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Optional().
			Nillable().
			Unique().
			Comment("Set when the session is bound to a conversation"),
		field.String("job_id").
			Optional(),
		field.String("candidate_id").
			Optional(),
		field.Enum("status").
			Values(
				"awaiting_reply",
				"engaged_no_resume",
				"resume_promised",
				"resume_received",
				"not_interested",
				"unreachable",
				"stalled",
			).
			Default("awaiting_reply"),
		field.String("language").
			Default("en"),
		field.Int("followups_sent").
			Default(0),
		field.Int("turns").
			Default(0).
			Comment("Inbound messages processed"),
		field.String("last_intent").
			Optional(),
		field.JSON("resume_links", []string{}).
			Optional(),
		field.Time("next_followup_at").
			Optional().
			Nillable().
			Comment("Null in terminal states"),
		field.JSON("state", map[string]interface{}{}).
			Optional().
			Comment("Full serialized FSM state, written on every transition"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PreResumeSession.
func (PreResumeSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("pre_resume_session").
			Field("conversation_id").
			Unique(),
		edge.To("events", PreResumeEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PreResumeSession.
func (PreResumeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_followup_at"),
		index.Fields("job_id", "candidate_id"),
	}
}

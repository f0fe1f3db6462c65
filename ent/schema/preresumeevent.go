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

// PreResumeEvent holds the schema definition for the PreResumeEvent entity:
// an append-only log of FSM transitions.
type PreResumeEvent struct {
	ent.Schema
}

// Annotations of the PreResumeEvent.
func (PreResumeEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pre_resume_events"},
	}
}

// Fields of the PreResumeEvent.
func (PreResumeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable(),
		field.String("job_id").
			Optional(),
		field.String("candidate_id").
			Optional(),
		field.Enum("event_type").
			Values("session_started", "inbound_processed", "followup_sent", "session_unreachable"),
		field.String("intent").
			Optional(),
		field.Text("inbound_text").
			Optional(),
		field.Text("outbound_text").
			Optional(),
		field.String("status").
			Comment("Session status after the transition"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PreResumeEvent.
func (PreResumeEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PreResumeSession.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PreResumeEvent.
func (PreResumeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "created_at"),
		index.Fields("job_id", "candidate_id"),
	}
}

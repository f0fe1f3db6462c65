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

// Job holds the schema definition for the Job entity.
// A job is the root aggregate: matches, conversations, outbound actions and
// signals all hang off it. Jobs are never deleted.
type Job struct {
	ent.Schema
}

// Annotations of the Job.
func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("jd_text").
			Comment("Job description text; mutable after creation"),
		field.String("location").
			Optional(),
		field.JSON("preferred_languages", []string{}).
			Optional(),
		field.String("seniority").
			Optional().
			Comment("Explicit seniority band; inferred from JD when empty"),
		field.Enum("routing_mode").
			Values("auto", "manual").
			Default("auto").
			Comment("auto: any connected sender account; manual: assigned accounts only"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("matches", Match.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outbound_actions", OutboundAction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("step_progress", JobStepProgress.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("account_assignments", JobAccountAssignment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("signals", CandidateSignal.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("routing_mode"),
		index.Fields("created_at"),
	}
}

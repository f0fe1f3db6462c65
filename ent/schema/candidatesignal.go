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

// CandidateSignal holds the schema definition for the CandidateSignal entity:
// one normalized observation about a candidate, derived from an assessment,
// a conversation event, or an operation record.
type CandidateSignal struct {
	ent.Schema
}

// Annotations of the CandidateSignal.
func (CandidateSignal) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidate_signals"},
	}
}

// Fields of the CandidateSignal.
func (CandidateSignal) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Immutable(),
		field.String("candidate_id").
			Immutable(),
		field.Enum("source_type").
			Values("assessment", "pre_resume_event", "operation_log", "match_snapshot").
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.String("signal_type"),
		field.String("category"),
		field.String("title"),
		field.Text("detail").
			Optional(),
		field.Float("impact").
			Default(0),
		field.Float("confidence").
			Default(1),
		field.JSON("signal_meta", map[string]interface{}{}).
			Optional(),
		field.Time("observed_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CandidateSignal.
func (CandidateSignal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("signals").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CandidateSignal.
func (CandidateSignal) Indexes() []ent.Index {
	return []ent.Index{
		// Re-ingesting the same source row is a no-op.
		index.Fields("job_id", "candidate_id", "source_type", "source_id").
			Unique(),
		index.Fields("job_id", "candidate_id", "observed_at"),
	}
}

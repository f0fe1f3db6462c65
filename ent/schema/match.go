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

// Match holds the schema definition for the Match entity.
// A match is the (job, candidate) association carrying the deterministic
// screening verdict. At most one match exists per pair; verification notes
// grow additively across the lifecycle.
type Match struct {
	ent.Schema
}

// Annotations of the Match.
func (Match) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "matches"},
	}
}

// Fields of the Match.
func (Match) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("candidate_id").
			Immutable(),
		field.Float("score").
			Default(0).
			Comment("Deterministic fit score in [0,1]"),
		field.Enum("status").
			Values(
				"sourced",
				"verified",
				"needs_resume",
				"resume_received",
				"rejected",
				"outreached",
				"interview_scheduled",
				"interview_completed",
				"hired",
			).
			Default("sourced"),
		field.JSON("verification_notes", map[string]interface{}{}).
			Optional().
			Comment("Required/matched skills, component scores, interview status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Match.
func (Match) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("matches").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.From("candidate", Candidate.Type).
			Ref("matches").
			Field("candidate_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Match.
func (Match) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "candidate_id").
			Unique(),
		index.Fields("status"),
	}
}

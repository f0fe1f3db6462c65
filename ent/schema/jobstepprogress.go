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

// JobStepProgress holds the schema definition for the JobStepProgress entity:
// the idempotency ledger of the workflow runner. One row per job per step.
type JobStepProgress struct {
	ent.Schema
}

// Annotations of the JobStepProgress.
func (JobStepProgress) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_step_progress"},
	}
}

// Fields of the JobStepProgress.
func (JobStepProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Immutable(),
		field.String("step").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Text("last_error").
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
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

// Edges of the JobStepProgress.
func (JobStepProgress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("step_progress").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobStepProgress.
func (JobStepProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "step").
			Unique(),
	}
}

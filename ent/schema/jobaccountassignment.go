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

// JobAccountAssignment holds the schema definition for the JobAccountAssignment
// entity: a manual pin of a job to a subset of sender accounts.
type JobAccountAssignment struct {
	ent.Schema
}

// Annotations of the JobAccountAssignment.
func (JobAccountAssignment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_account_assignments"},
	}
}

// Fields of the JobAccountAssignment.
func (JobAccountAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobAccountAssignment.
func (JobAccountAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("account_assignments").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobAccountAssignment.
func (JobAccountAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "account_id").
			Unique(),
	}
}

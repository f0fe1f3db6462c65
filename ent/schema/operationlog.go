package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OperationLog holds the schema definition for the OperationLog entity:
// an append-only audit trail of side-effecting operations.
type OperationLog struct {
	ent.Schema
}

// Annotations of the OperationLog.
func (OperationLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "operation_logs"},
	}
}

// Fields of the OperationLog.
func (OperationLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("operation"),
		field.String("status").
			Default("ok"),
		field.String("entity_type").
			Optional(),
		field.String("entity_id").
			Optional(),
		field.String("job_id").
			Optional(),
		field.String("candidate_id").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OperationLog.
func (OperationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation", "created_at"),
		index.Fields("job_id", "candidate_id"),
	}
}

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

// OutboundAction holds the schema definition for the OutboundAction entity:
// one queued unit of provider work (a message or a connect request).
type OutboundAction struct {
	ent.Schema
}

// Annotations of the OutboundAction.
func (OutboundAction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "outbound_actions"},
	}
}

// Fields of the OutboundAction.
func (OutboundAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("candidate_id").
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("kind").
			Values("message", "connect_request"),
		field.Enum("status").
			Values("pending", "pending_connection", "completed", "deferred", "failed").
			Default("pending"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("account_id").
			Optional().
			Nillable().
			Comment("Sender account that executed the action"),
		field.Int("attempts").
			Default(0),
		field.Text("last_error").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the OutboundAction.
func (OutboundAction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("outbound_actions").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OutboundAction.
func (OutboundAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("job_id", "candidate_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IdempotencyRecord holds the schema definition for the IdempotencyRecord
// entity: a stored response for one Idempotency-Key on one route.
type IdempotencyRecord struct {
	ent.Schema
}

// Annotations of the IdempotencyRecord.
func (IdempotencyRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "idempotency_records"},
	}
}

// Fields of the IdempotencyRecord.
func (IdempotencyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("route").
			Immutable(),
		field.String("key").
			Immutable(),
		field.String("payload_hash").
			Immutable(),
		field.Int("status_code"),
		field.Text("response"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the IdempotencyRecord.
func (IdempotencyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("route", "key").
			Unique(),
	}
}

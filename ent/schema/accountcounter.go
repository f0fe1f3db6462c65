package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AccountCounter holds the schema definition for the AccountCounter entity:
// per-account send tallies for one budget period. Rows are upserted and
// incremented inside the dispatch transaction so budget checks stay atomic.
type AccountCounter struct {
	ent.Schema
}

// Annotations of the AccountCounter.
func (AccountCounter) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "account_counters"},
	}
}

// Fields of the AccountCounter.
func (AccountCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_id").
			Immutable(),
		field.Enum("period").
			Values("day", "week").
			Immutable(),
		field.Time("period_start").
			Immutable().
			Comment("UTC midnight for day, UTC Monday midnight for week"),
		field.Int("new_threads_sent").
			Default(0),
		field.Int("connects_sent").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AccountCounter.
func (AccountCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "period", "period_start").
			Unique(),
	}
}

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

// Candidate holds the schema definition for the Candidate entity.
// Candidates are upserted by provider_id; mutable profile fields are
// refreshed on every sourcing pass.
type Candidate struct {
	ent.Schema
}

// Annotations of the Candidate.
func (Candidate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidates"},
	}
}

// Fields of the Candidate.
func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("provider_id").
			Unique().
			Comment("Stable identifier on the messaging provider"),
		field.String("full_name"),
		field.String("headline").
			Optional(),
		field.String("location").
			Optional(),
		field.JSON("languages", []string{}).
			Optional().
			Comment("Ordered language tags, most fluent first"),
		field.JSON("skills", []string{}).
			Optional().
			Comment("Normalized lowercase skill strings"),
		field.Float("years_experience").
			Optional().
			Comment("Total years of experience; 0 when unknown"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Candidate.
func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("matches", Match.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Candidate.
func (Candidate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("full_name"),
	}
}

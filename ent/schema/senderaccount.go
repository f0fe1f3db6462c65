package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SenderAccount holds the schema definition for the SenderAccount entity:
// a provider identity that outbound actions are executed under.
type SenderAccount struct {
	ent.Schema
}

// Annotations of the SenderAccount.
func (SenderAccount) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sender_accounts"},
	}
}

// Fields of the SenderAccount.
func (SenderAccount) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("provider_account_id").
			Unique(),
		field.String("provider_user_id").
			Optional(),
		field.String("label").
			Optional(),
		field.Enum("status").
			Values("connected", "pending", "error", "disconnected").
			Default("pending"),
		field.Time("connected_at").
			Optional().
			Nillable(),
		field.Time("last_synced_at").
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

// Indexes of the SenderAccount.
func (SenderAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}

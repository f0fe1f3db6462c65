package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentAssessment holds the schema definition for the AgentAssessment entity:
// the persisted verdict of one agent run for one candidate at one stage.
type AgentAssessment struct {
	ent.Schema
}

// Annotations of the AgentAssessment.
func (AgentAssessment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agent_assessments"},
	}
}

// Fields of the AgentAssessment.
func (AgentAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("candidate_id").
			Immutable(),
		field.Enum("agent_key").
			Values("sourcing_vetting", "communication", "interview_evaluation", "culture_analyst", "job_architect"),
		field.String("stage_key"),
		field.Float("score").
			Optional().
			Nillable().
			Comment("Absent for administrative agents"),
		field.String("status").
			Default("completed"),
		field.Text("reason").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentAssessment.
func (AgentAssessment) Indexes() []ent.Index {
	return []ent.Index{
		// One verdict per agent per stage; reruns overwrite in place.
		index.Fields("job_id", "candidate_id", "agent_key", "stage_key").
			Unique(),
		index.Fields("job_id", "candidate_id"),
	}
}

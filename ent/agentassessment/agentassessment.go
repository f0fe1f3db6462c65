// Code generated by ent, DO NOT EDIT.

package agentassessment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentassessment type in the database.
	Label = "agent_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldAgentKey holds the string denoting the agent_key field in the database.
	FieldAgentKey = "agent_key"
	// FieldStageKey holds the string denoting the stage_key field in the database.
	FieldStageKey = "stage_key"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentassessment in the database.
	Table = "agent_assessments"
)

// Columns holds all SQL columns for agentassessment fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldCandidateID,
	FieldAgentKey,
	FieldStageKey,
	FieldScore,
	FieldStatus,
	FieldReason,
	FieldDetails,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AgentKey defines the type for the "agent_key" enum field.
type AgentKey string

// AgentKey values.
const (
	AgentKeySourcingVetting     AgentKey = "sourcing_vetting"
	AgentKeyCommunication       AgentKey = "communication"
	AgentKeyInterviewEvaluation AgentKey = "interview_evaluation"
	AgentKeyCultureAnalyst      AgentKey = "culture_analyst"
	AgentKeyJobArchitect        AgentKey = "job_architect"
)

func (ak AgentKey) String() string {
	return string(ak)
}

// AgentKeyValidator is a validator for the "agent_key" field enum values. It is called by the builders before save.
func AgentKeyValidator(ak AgentKey) error {
	switch ak {
	case AgentKeySourcingVetting, AgentKeyCommunication, AgentKeyInterviewEvaluation, AgentKeyCultureAnalyst, AgentKeyJobArchitect:
		return nil
	default:
		return fmt.Errorf("agentassessment: invalid enum value for agent_key field: %q", ak)
	}
}

// OrderOption defines the ordering options for the AgentAssessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByAgentKey orders the results by the agent_key field.
func ByAgentKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentKey, opts...).ToFunc()
}

// ByStageKey orders the results by the stage_key field.
func ByStageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageKey, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

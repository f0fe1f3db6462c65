// Code generated by ent, DO NOT EDIT.

package preresumeevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the preresumeevent type in the database.
	Label = "pre_resume_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldInboundText holds the string denoting the inbound_text field in the database.
	FieldInboundText = "inbound_text"
	// FieldOutboundText holds the string denoting the outbound_text field in the database.
	FieldOutboundText = "outbound_text"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// Table holds the table name of the preresumeevent in the database.
	Table = "pre_resume_events"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "pre_resume_events"
	// SessionInverseTable is the table name for the PreResumeSession entity.
	// It exists in this package in order to avoid circular dependency with the "preresumesession" package.
	SessionInverseTable = "pre_resume_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for preresumeevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldJobID,
	FieldCandidateID,
	FieldEventType,
	FieldIntent,
	FieldInboundText,
	FieldOutboundText,
	FieldStatus,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeSessionStarted     EventType = "session_started"
	EventTypeInboundProcessed   EventType = "inbound_processed"
	EventTypeFollowupSent       EventType = "followup_sent"
	EventTypeSessionUnreachable EventType = "session_unreachable"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeSessionStarted, EventTypeInboundProcessed, EventTypeFollowupSent, EventTypeSessionUnreachable:
		return nil
	default:
		return fmt.Errorf("preresumeevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the PreResumeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByInboundText orders the results by the inbound_text field.
func ByInboundText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboundText, opts...).ToFunc()
}

// ByOutboundText orders the results by the outbound_text field.
func ByOutboundText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutboundText, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package preresumesession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the preresumesession type in the database.
	Label = "pre_resume_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldFollowupsSent holds the string denoting the followups_sent field in the database.
	FieldFollowupsSent = "followups_sent"
	// FieldTurns holds the string denoting the turns field in the database.
	FieldTurns = "turns"
	// FieldLastIntent holds the string denoting the last_intent field in the database.
	FieldLastIntent = "last_intent"
	// FieldResumeLinks holds the string denoting the resume_links field in the database.
	FieldResumeLinks = "resume_links"
	// FieldNextFollowupAt holds the string denoting the next_followup_at field in the database.
	FieldNextFollowupAt = "next_followup_at"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// Table holds the table name of the preresumesession in the database.
	Table = "pre_resume_sessions"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "pre_resume_sessions"
	// ConversationInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationInverseTable = "conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "pre_resume_events"
	// EventsInverseTable is the table name for the PreResumeEvent entity.
	// It exists in this package in order to avoid circular dependency with the "preresumeevent" package.
	EventsInverseTable = "pre_resume_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
)

// Columns holds all SQL columns for preresumesession fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldJobID,
	FieldCandidateID,
	FieldStatus,
	FieldLanguage,
	FieldFollowupsSent,
	FieldTurns,
	FieldLastIntent,
	FieldResumeLinks,
	FieldNextFollowupAt,
	FieldState,
	FieldLastError,
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
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultFollowupsSent holds the default value on creation for the "followups_sent" field.
	DefaultFollowupsSent int
	// DefaultTurns holds the default value on creation for the "turns" field.
	DefaultTurns int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusAwaitingReply is the default value of the Status enum.
const DefaultStatus = StatusAwaitingReply

// Status values.
const (
	StatusAwaitingReply   Status = "awaiting_reply"
	StatusEngagedNoResume Status = "engaged_no_resume"
	StatusResumePromised  Status = "resume_promised"
	StatusResumeReceived  Status = "resume_received"
	StatusNotInterested   Status = "not_interested"
	StatusUnreachable     Status = "unreachable"
	StatusStalled         Status = "stalled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAwaitingReply, StatusEngagedNoResume, StatusResumePromised, StatusResumeReceived, StatusNotInterested, StatusUnreachable, StatusStalled:
		return nil
	default:
		return fmt.Errorf("preresumesession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PreResumeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByFollowupsSent orders the results by the followups_sent field.
func ByFollowupsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowupsSent, opts...).ToFunc()
}

// ByTurns orders the results by the turns field.
func ByTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurns, opts...).ToFunc()
}

// ByLastIntent orders the results by the last_intent field.
func ByLastIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastIntent, opts...).ToFunc()
}

// ByNextFollowupAt orders the results by the next_followup_at field.
func ByNextFollowupAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextFollowupAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ConversationTable, ConversationColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}

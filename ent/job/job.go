// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldJdText holds the string denoting the jd_text field in the database.
	FieldJdText = "jd_text"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldPreferredLanguages holds the string denoting the preferred_languages field in the database.
	FieldPreferredLanguages = "preferred_languages"
	// FieldSeniority holds the string denoting the seniority field in the database.
	FieldSeniority = "seniority"
	// FieldRoutingMode holds the string denoting the routing_mode field in the database.
	FieldRoutingMode = "routing_mode"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// EdgeConversations holds the string denoting the conversations edge name in mutations.
	EdgeConversations = "conversations"
	// EdgeOutboundActions holds the string denoting the outbound_actions edge name in mutations.
	EdgeOutboundActions = "outbound_actions"
	// EdgeStepProgress holds the string denoting the step_progress edge name in mutations.
	EdgeStepProgress = "step_progress"
	// EdgeAccountAssignments holds the string denoting the account_assignments edge name in mutations.
	EdgeAccountAssignments = "account_assignments"
	// EdgeSignals holds the string denoting the signals edge name in mutations.
	EdgeSignals = "signals"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "job_id"
	// ConversationsTable is the table that holds the conversations relation/edge.
	ConversationsTable = "conversations"
	// ConversationsInverseTable is the table name for the Conversation entity.
	// It exists in this package in order to avoid circular dependency with the "conversation" package.
	ConversationsInverseTable = "conversations"
	// ConversationsColumn is the table column denoting the conversations relation/edge.
	ConversationsColumn = "job_id"
	// OutboundActionsTable is the table that holds the outbound_actions relation/edge.
	OutboundActionsTable = "outbound_actions"
	// OutboundActionsInverseTable is the table name for the OutboundAction entity.
	// It exists in this package in order to avoid circular dependency with the "outboundaction" package.
	OutboundActionsInverseTable = "outbound_actions"
	// OutboundActionsColumn is the table column denoting the outbound_actions relation/edge.
	OutboundActionsColumn = "job_id"
	// StepProgressTable is the table that holds the step_progress relation/edge.
	StepProgressTable = "job_step_progress"
	// StepProgressInverseTable is the table name for the JobStepProgress entity.
	// It exists in this package in order to avoid circular dependency with the "jobstepprogress" package.
	StepProgressInverseTable = "job_step_progress"
	// StepProgressColumn is the table column denoting the step_progress relation/edge.
	StepProgressColumn = "job_id"
	// AccountAssignmentsTable is the table that holds the account_assignments relation/edge.
	AccountAssignmentsTable = "job_account_assignments"
	// AccountAssignmentsInverseTable is the table name for the JobAccountAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "jobaccountassignment" package.
	AccountAssignmentsInverseTable = "job_account_assignments"
	// AccountAssignmentsColumn is the table column denoting the account_assignments relation/edge.
	AccountAssignmentsColumn = "job_id"
	// SignalsTable is the table that holds the signals relation/edge.
	SignalsTable = "candidate_signals"
	// SignalsInverseTable is the table name for the CandidateSignal entity.
	// It exists in this package in order to avoid circular dependency with the "candidatesignal" package.
	SignalsInverseTable = "candidate_signals"
	// SignalsColumn is the table column denoting the signals relation/edge.
	SignalsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldJdText,
	FieldLocation,
	FieldPreferredLanguages,
	FieldSeniority,
	FieldRoutingMode,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// RoutingMode defines the type for the "routing_mode" enum field.
type RoutingMode string

// RoutingModeAuto is the default value of the RoutingMode enum.
const DefaultRoutingMode = RoutingModeAuto

// RoutingMode values.
const (
	RoutingModeAuto   RoutingMode = "auto"
	RoutingModeManual RoutingMode = "manual"
)

func (rm RoutingMode) String() string {
	return string(rm)
}

// RoutingModeValidator is a validator for the "routing_mode" field enum values. It is called by the builders before save.
func RoutingModeValidator(rm RoutingMode) error {
	switch rm {
	case RoutingModeAuto, RoutingModeManual:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for routing_mode field: %q", rm)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByJdText orders the results by the jd_text field.
func ByJdText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJdText, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// BySeniority orders the results by the seniority field.
func BySeniority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeniority, opts...).ToFunc()
}

// ByRoutingMode orders the results by the routing_mode field.
func ByRoutingMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoutingMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMatchesCount orders the results by matches count.
func ByMatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMatchesStep(), opts...)
	}
}

// ByMatches orders the results by matches terms.
func ByMatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConversationsCount orders the results by conversations count.
func ByConversationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationsStep(), opts...)
	}
}

// ByConversations orders the results by conversations terms.
func ByConversations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutboundActionsCount orders the results by outbound_actions count.
func ByOutboundActionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutboundActionsStep(), opts...)
	}
}

// ByOutboundActions orders the results by outbound_actions terms.
func ByOutboundActions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutboundActionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepProgressCount orders the results by step_progress count.
func ByStepProgressCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepProgressStep(), opts...)
	}
}

// ByStepProgress orders the results by step_progress terms.
func ByStepProgress(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepProgressStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAccountAssignmentsCount orders the results by account_assignments count.
func ByAccountAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAccountAssignmentsStep(), opts...)
	}
}

// ByAccountAssignments orders the results by account_assignments terms.
func ByAccountAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySignalsCount orders the results by signals count.
func BySignalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSignalsStep(), opts...)
	}
}

// BySignals orders the results by signals terms.
func BySignals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSignalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
func newConversationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
	)
}
func newOutboundActionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutboundActionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutboundActionsTable, OutboundActionsColumn),
	)
}
func newStepProgressStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepProgressInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepProgressTable, StepProgressColumn),
	)
}
func newAccountAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountAssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AccountAssignmentsTable, AccountAssignmentsColumn),
	)
}
func newSignalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SignalsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SignalsTable, SignalsColumn),
	)
}

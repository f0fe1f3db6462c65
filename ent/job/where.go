// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireflow/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTitle, v))
}

// JdText applies equality check predicate on the "jd_text" field. It's identical to JdTextEQ.
func JdText(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJdText, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocation, v))
}

// Seniority applies equality check predicate on the "seniority" field. It's identical to SeniorityEQ.
func Seniority(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSeniority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTitle, v))
}

// JdTextEQ applies the EQ predicate on the "jd_text" field.
func JdTextEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJdText, v))
}

// JdTextNEQ applies the NEQ predicate on the "jd_text" field.
func JdTextNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldJdText, v))
}

// JdTextIn applies the In predicate on the "jd_text" field.
func JdTextIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldJdText, vs...))
}

// JdTextNotIn applies the NotIn predicate on the "jd_text" field.
func JdTextNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldJdText, vs...))
}

// JdTextGT applies the GT predicate on the "jd_text" field.
func JdTextGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldJdText, v))
}

// JdTextGTE applies the GTE predicate on the "jd_text" field.
func JdTextGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldJdText, v))
}

// JdTextLT applies the LT predicate on the "jd_text" field.
func JdTextLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldJdText, v))
}

// JdTextLTE applies the LTE predicate on the "jd_text" field.
func JdTextLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldJdText, v))
}

// JdTextContains applies the Contains predicate on the "jd_text" field.
func JdTextContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldJdText, v))
}

// JdTextHasPrefix applies the HasPrefix predicate on the "jd_text" field.
func JdTextHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldJdText, v))
}

// JdTextHasSuffix applies the HasSuffix predicate on the "jd_text" field.
func JdTextHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldJdText, v))
}

// JdTextEqualFold applies the EqualFold predicate on the "jd_text" field.
func JdTextEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldJdText, v))
}

// JdTextContainsFold applies the ContainsFold predicate on the "jd_text" field.
func JdTextContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldJdText, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLocation, v))
}

// PreferredLanguagesIsNil applies the IsNil predicate on the "preferred_languages" field.
func PreferredLanguagesIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPreferredLanguages))
}

// PreferredLanguagesNotNil applies the NotNil predicate on the "preferred_languages" field.
func PreferredLanguagesNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPreferredLanguages))
}

// SeniorityEQ applies the EQ predicate on the "seniority" field.
func SeniorityEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSeniority, v))
}

// SeniorityNEQ applies the NEQ predicate on the "seniority" field.
func SeniorityNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSeniority, v))
}

// SeniorityIn applies the In predicate on the "seniority" field.
func SeniorityIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSeniority, vs...))
}

// SeniorityNotIn applies the NotIn predicate on the "seniority" field.
func SeniorityNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSeniority, vs...))
}

// SeniorityGT applies the GT predicate on the "seniority" field.
func SeniorityGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSeniority, v))
}

// SeniorityGTE applies the GTE predicate on the "seniority" field.
func SeniorityGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSeniority, v))
}

// SeniorityLT applies the LT predicate on the "seniority" field.
func SeniorityLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSeniority, v))
}

// SeniorityLTE applies the LTE predicate on the "seniority" field.
func SeniorityLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSeniority, v))
}

// SeniorityContains applies the Contains predicate on the "seniority" field.
func SeniorityContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSeniority, v))
}

// SeniorityHasPrefix applies the HasPrefix predicate on the "seniority" field.
func SeniorityHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSeniority, v))
}

// SeniorityHasSuffix applies the HasSuffix predicate on the "seniority" field.
func SeniorityHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSeniority, v))
}

// SeniorityIsNil applies the IsNil predicate on the "seniority" field.
func SeniorityIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSeniority))
}

// SeniorityNotNil applies the NotNil predicate on the "seniority" field.
func SeniorityNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSeniority))
}

// SeniorityEqualFold applies the EqualFold predicate on the "seniority" field.
func SeniorityEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSeniority, v))
}

// SeniorityContainsFold applies the ContainsFold predicate on the "seniority" field.
func SeniorityContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSeniority, v))
}

// RoutingModeEQ applies the EQ predicate on the "routing_mode" field.
func RoutingModeEQ(v RoutingMode) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRoutingMode, v))
}

// RoutingModeNEQ applies the NEQ predicate on the "routing_mode" field.
func RoutingModeNEQ(v RoutingMode) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRoutingMode, v))
}

// RoutingModeIn applies the In predicate on the "routing_mode" field.
func RoutingModeIn(vs ...RoutingMode) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRoutingMode, vs...))
}

// RoutingModeNotIn applies the NotIn predicate on the "routing_mode" field.
func RoutingModeNotIn(vs ...RoutingMode) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRoutingMode, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.Conversation) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutboundActions applies the HasEdge predicate on the "outbound_actions" edge.
func HasOutboundActions() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutboundActionsTable, OutboundActionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutboundActionsWith applies the HasEdge predicate on the "outbound_actions" edge with a given conditions (other predicates).
func HasOutboundActionsWith(preds ...predicate.OutboundAction) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newOutboundActionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStepProgress applies the HasEdge predicate on the "step_progress" edge.
func HasStepProgress() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepProgressTable, StepProgressColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepProgressWith applies the HasEdge predicate on the "step_progress" edge with a given conditions (other predicates).
func HasStepProgressWith(preds ...predicate.JobStepProgress) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newStepProgressStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAccountAssignments applies the HasEdge predicate on the "account_assignments" edge.
func HasAccountAssignments() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AccountAssignmentsTable, AccountAssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountAssignmentsWith applies the HasEdge predicate on the "account_assignments" edge with a given conditions (other predicates).
func HasAccountAssignmentsWith(preds ...predicate.JobAccountAssignment) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newAccountAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSignals applies the HasEdge predicate on the "signals" edge.
func HasSignals() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SignalsTable, SignalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSignalsWith applies the HasEdge predicate on the "signals" edge with a given conditions (other predicates).
func HasSignalsWith(preds ...predicate.CandidateSignal) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newSignalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}

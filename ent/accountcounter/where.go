// Code generated by ent, DO NOT EDIT.

package accountcounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldAccountID, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldPeriodStart, v))
}

// NewThreadsSent applies equality check predicate on the "new_threads_sent" field. It's identical to NewThreadsSentEQ.
func NewThreadsSent(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldNewThreadsSent, v))
}

// ConnectsSent applies equality check predicate on the "connects_sent" field. It's identical to ConnectsSentEQ.
func ConnectsSent(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldConnectsSent, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldContainsFold(FieldAccountID, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v Period) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v Period) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...Period) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...Period) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLTE(FieldPeriodStart, v))
}

// NewThreadsSentEQ applies the EQ predicate on the "new_threads_sent" field.
func NewThreadsSentEQ(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldNewThreadsSent, v))
}

// NewThreadsSentNEQ applies the NEQ predicate on the "new_threads_sent" field.
func NewThreadsSentNEQ(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNEQ(FieldNewThreadsSent, v))
}

// NewThreadsSentIn applies the In predicate on the "new_threads_sent" field.
func NewThreadsSentIn(vs ...int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldIn(FieldNewThreadsSent, vs...))
}

// NewThreadsSentNotIn applies the NotIn predicate on the "new_threads_sent" field.
func NewThreadsSentNotIn(vs ...int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNotIn(FieldNewThreadsSent, vs...))
}

// NewThreadsSentGT applies the GT predicate on the "new_threads_sent" field.
func NewThreadsSentGT(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGT(FieldNewThreadsSent, v))
}

// NewThreadsSentGTE applies the GTE predicate on the "new_threads_sent" field.
func NewThreadsSentGTE(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGTE(FieldNewThreadsSent, v))
}

// NewThreadsSentLT applies the LT predicate on the "new_threads_sent" field.
func NewThreadsSentLT(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLT(FieldNewThreadsSent, v))
}

// NewThreadsSentLTE applies the LTE predicate on the "new_threads_sent" field.
func NewThreadsSentLTE(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLTE(FieldNewThreadsSent, v))
}

// ConnectsSentEQ applies the EQ predicate on the "connects_sent" field.
func ConnectsSentEQ(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldConnectsSent, v))
}

// ConnectsSentNEQ applies the NEQ predicate on the "connects_sent" field.
func ConnectsSentNEQ(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNEQ(FieldConnectsSent, v))
}

// ConnectsSentIn applies the In predicate on the "connects_sent" field.
func ConnectsSentIn(vs ...int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldIn(FieldConnectsSent, vs...))
}

// ConnectsSentNotIn applies the NotIn predicate on the "connects_sent" field.
func ConnectsSentNotIn(vs ...int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNotIn(FieldConnectsSent, vs...))
}

// ConnectsSentGT applies the GT predicate on the "connects_sent" field.
func ConnectsSentGT(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGT(FieldConnectsSent, v))
}

// ConnectsSentGTE applies the GTE predicate on the "connects_sent" field.
func ConnectsSentGTE(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGTE(FieldConnectsSent, v))
}

// ConnectsSentLT applies the LT predicate on the "connects_sent" field.
func ConnectsSentLT(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLT(FieldConnectsSent, v))
}

// ConnectsSentLTE applies the LTE predicate on the "connects_sent" field.
func ConnectsSentLTE(v int) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLTE(FieldConnectsSent, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AccountCounter {
	return predicate.AccountCounter(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AccountCounter) predicate.AccountCounter {
	return predicate.AccountCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AccountCounter) predicate.AccountCounter {
	return predicate.AccountCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AccountCounter) predicate.AccountCounter {
	return predicate.AccountCounter(sql.NotPredicates(p))
}

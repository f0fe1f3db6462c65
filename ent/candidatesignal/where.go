// Code generated by ent, DO NOT EDIT.

package candidatesignal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireflow/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldJobID, v))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldCandidateID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldSourceID, v))
}

// SignalType applies equality check predicate on the "signal_type" field. It's identical to SignalTypeEQ.
func SignalType(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldSignalType, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldCategory, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldTitle, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldDetail, v))
}

// Impact applies equality check predicate on the "impact" field. It's identical to ImpactEQ.
func Impact(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldImpact, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldConfidence, v))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldObservedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContainsFold(FieldJobID, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldCandidateID, vs...))
}

// CandidateIDGT applies the GT predicate on the "candidate_id" field.
func CandidateIDGT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldCandidateID, v))
}

// CandidateIDGTE applies the GTE predicate on the "candidate_id" field.
func CandidateIDGTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldCandidateID, v))
}

// CandidateIDLT applies the LT predicate on the "candidate_id" field.
func CandidateIDLT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldCandidateID, v))
}

// CandidateIDLTE applies the LTE predicate on the "candidate_id" field.
func CandidateIDLTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldCandidateID, v))
}

// CandidateIDContains applies the Contains predicate on the "candidate_id" field.
func CandidateIDContains(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContains(FieldCandidateID, v))
}

// CandidateIDHasPrefix applies the HasPrefix predicate on the "candidate_id" field.
func CandidateIDHasPrefix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasPrefix(FieldCandidateID, v))
}

// CandidateIDHasSuffix applies the HasSuffix predicate on the "candidate_id" field.
func CandidateIDHasSuffix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasSuffix(FieldCandidateID, v))
}

// CandidateIDEqualFold applies the EqualFold predicate on the "candidate_id" field.
func CandidateIDEqualFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEqualFold(FieldCandidateID, v))
}

// CandidateIDContainsFold applies the ContainsFold predicate on the "candidate_id" field.
func CandidateIDContainsFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContainsFold(FieldCandidateID, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContainsFold(FieldSourceID, v))
}

// SignalTypeEQ applies the EQ predicate on the "signal_type" field.
func SignalTypeEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldSignalType, v))
}

// SignalTypeNEQ applies the NEQ predicate on the "signal_type" field.
func SignalTypeNEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldSignalType, v))
}

// SignalTypeIn applies the In predicate on the "signal_type" field.
func SignalTypeIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldSignalType, vs...))
}

// SignalTypeNotIn applies the NotIn predicate on the "signal_type" field.
func SignalTypeNotIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldSignalType, vs...))
}

// SignalTypeGT applies the GT predicate on the "signal_type" field.
func SignalTypeGT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldSignalType, v))
}

// SignalTypeGTE applies the GTE predicate on the "signal_type" field.
func SignalTypeGTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldSignalType, v))
}

// SignalTypeLT applies the LT predicate on the "signal_type" field.
func SignalTypeLT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldSignalType, v))
}

// SignalTypeLTE applies the LTE predicate on the "signal_type" field.
func SignalTypeLTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldSignalType, v))
}

// SignalTypeContains applies the Contains predicate on the "signal_type" field.
func SignalTypeContains(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContains(FieldSignalType, v))
}

// SignalTypeHasPrefix applies the HasPrefix predicate on the "signal_type" field.
func SignalTypeHasPrefix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasPrefix(FieldSignalType, v))
}

// SignalTypeHasSuffix applies the HasSuffix predicate on the "signal_type" field.
func SignalTypeHasSuffix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasSuffix(FieldSignalType, v))
}

// SignalTypeEqualFold applies the EqualFold predicate on the "signal_type" field.
func SignalTypeEqualFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEqualFold(FieldSignalType, v))
}

// SignalTypeContainsFold applies the ContainsFold predicate on the "signal_type" field.
func SignalTypeContainsFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContainsFold(FieldSignalType, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContainsFold(FieldCategory, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContainsFold(FieldTitle, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldContainsFold(FieldDetail, v))
}

// ImpactEQ applies the EQ predicate on the "impact" field.
func ImpactEQ(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldImpact, v))
}

// ImpactNEQ applies the NEQ predicate on the "impact" field.
func ImpactNEQ(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldImpact, v))
}

// ImpactIn applies the In predicate on the "impact" field.
func ImpactIn(vs ...float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldImpact, vs...))
}

// ImpactNotIn applies the NotIn predicate on the "impact" field.
func ImpactNotIn(vs ...float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldImpact, vs...))
}

// ImpactGT applies the GT predicate on the "impact" field.
func ImpactGT(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldImpact, v))
}

// ImpactGTE applies the GTE predicate on the "impact" field.
func ImpactGTE(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldImpact, v))
}

// ImpactLT applies the LT predicate on the "impact" field.
func ImpactLT(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldImpact, v))
}

// ImpactLTE applies the LTE predicate on the "impact" field.
func ImpactLTE(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldImpact, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldConfidence, v))
}

// SignalMetaIsNil applies the IsNil predicate on the "signal_meta" field.
func SignalMetaIsNil() predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIsNull(FieldSignalMeta))
}

// SignalMetaNotNil applies the NotNil predicate on the "signal_meta" field.
func SignalMetaNotNil() predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotNull(FieldSignalMeta))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldObservedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.CandidateSignal {
	return predicate.CandidateSignal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.CandidateSignal {
	return predicate.CandidateSignal(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CandidateSignal) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CandidateSignal) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CandidateSignal) predicate.CandidateSignal {
	return predicate.CandidateSignal(sql.NotPredicates(p))
}

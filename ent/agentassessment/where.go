// Code generated by ent, DO NOT EDIT.

package agentassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldJobID, v))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldCandidateID, v))
}

// StageKey applies equality check predicate on the "stage_key" field. It's identical to StageKeyEQ.
func StageKey(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldStageKey, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldScore, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldStatus, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContainsFold(FieldJobID, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldCandidateID, vs...))
}

// CandidateIDGT applies the GT predicate on the "candidate_id" field.
func CandidateIDGT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldCandidateID, v))
}

// CandidateIDGTE applies the GTE predicate on the "candidate_id" field.
func CandidateIDGTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldCandidateID, v))
}

// CandidateIDLT applies the LT predicate on the "candidate_id" field.
func CandidateIDLT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldCandidateID, v))
}

// CandidateIDLTE applies the LTE predicate on the "candidate_id" field.
func CandidateIDLTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldCandidateID, v))
}

// CandidateIDContains applies the Contains predicate on the "candidate_id" field.
func CandidateIDContains(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContains(FieldCandidateID, v))
}

// CandidateIDHasPrefix applies the HasPrefix predicate on the "candidate_id" field.
func CandidateIDHasPrefix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasPrefix(FieldCandidateID, v))
}

// CandidateIDHasSuffix applies the HasSuffix predicate on the "candidate_id" field.
func CandidateIDHasSuffix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasSuffix(FieldCandidateID, v))
}

// CandidateIDEqualFold applies the EqualFold predicate on the "candidate_id" field.
func CandidateIDEqualFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEqualFold(FieldCandidateID, v))
}

// CandidateIDContainsFold applies the ContainsFold predicate on the "candidate_id" field.
func CandidateIDContainsFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContainsFold(FieldCandidateID, v))
}

// AgentKeyEQ applies the EQ predicate on the "agent_key" field.
func AgentKeyEQ(v AgentKey) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldAgentKey, v))
}

// AgentKeyNEQ applies the NEQ predicate on the "agent_key" field.
func AgentKeyNEQ(v AgentKey) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldAgentKey, v))
}

// AgentKeyIn applies the In predicate on the "agent_key" field.
func AgentKeyIn(vs ...AgentKey) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldAgentKey, vs...))
}

// AgentKeyNotIn applies the NotIn predicate on the "agent_key" field.
func AgentKeyNotIn(vs ...AgentKey) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldAgentKey, vs...))
}

// StageKeyEQ applies the EQ predicate on the "stage_key" field.
func StageKeyEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldStageKey, v))
}

// StageKeyNEQ applies the NEQ predicate on the "stage_key" field.
func StageKeyNEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldStageKey, v))
}

// StageKeyIn applies the In predicate on the "stage_key" field.
func StageKeyIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldStageKey, vs...))
}

// StageKeyNotIn applies the NotIn predicate on the "stage_key" field.
func StageKeyNotIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldStageKey, vs...))
}

// StageKeyGT applies the GT predicate on the "stage_key" field.
func StageKeyGT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldStageKey, v))
}

// StageKeyGTE applies the GTE predicate on the "stage_key" field.
func StageKeyGTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldStageKey, v))
}

// StageKeyLT applies the LT predicate on the "stage_key" field.
func StageKeyLT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldStageKey, v))
}

// StageKeyLTE applies the LTE predicate on the "stage_key" field.
func StageKeyLTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldStageKey, v))
}

// StageKeyContains applies the Contains predicate on the "stage_key" field.
func StageKeyContains(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContains(FieldStageKey, v))
}

// StageKeyHasPrefix applies the HasPrefix predicate on the "stage_key" field.
func StageKeyHasPrefix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasPrefix(FieldStageKey, v))
}

// StageKeyHasSuffix applies the HasSuffix predicate on the "stage_key" field.
func StageKeyHasSuffix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasSuffix(FieldStageKey, v))
}

// StageKeyEqualFold applies the EqualFold predicate on the "stage_key" field.
func StageKeyEqualFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEqualFold(FieldStageKey, v))
}

// StageKeyContainsFold applies the ContainsFold predicate on the "stage_key" field.
func StageKeyContainsFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContainsFold(FieldStageKey, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotNull(FieldScore))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContainsFold(FieldStatus, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldContainsFold(FieldReason, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotNull(FieldDetails))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentAssessment) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentAssessment) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentAssessment) predicate.AgentAssessment {
	return predicate.AgentAssessment(sql.NotPredicates(p))
}

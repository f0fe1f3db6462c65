// Code generated by ent, DO NOT EDIT.

package preresumesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireflow/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldConversationID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldJobID, v))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldCandidateID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldLanguage, v))
}

// FollowupsSent applies equality check predicate on the "followups_sent" field. It's identical to FollowupsSentEQ.
func FollowupsSent(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldFollowupsSent, v))
}

// Turns applies equality check predicate on the "turns" field. It's identical to TurnsEQ.
func Turns(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldTurns, v))
}

// LastIntent applies equality check predicate on the "last_intent" field. It's identical to LastIntentEQ.
func LastIntent(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldLastIntent, v))
}

// NextFollowupAt applies equality check predicate on the "next_followup_at" field. It's identical to NextFollowupAtEQ.
func NextFollowupAt(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldNextFollowupAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContainsFold(FieldConversationID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContainsFold(FieldJobID, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldCandidateID, vs...))
}

// CandidateIDGT applies the GT predicate on the "candidate_id" field.
func CandidateIDGT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldCandidateID, v))
}

// CandidateIDGTE applies the GTE predicate on the "candidate_id" field.
func CandidateIDGTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldCandidateID, v))
}

// CandidateIDLT applies the LT predicate on the "candidate_id" field.
func CandidateIDLT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldCandidateID, v))
}

// CandidateIDLTE applies the LTE predicate on the "candidate_id" field.
func CandidateIDLTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldCandidateID, v))
}

// CandidateIDContains applies the Contains predicate on the "candidate_id" field.
func CandidateIDContains(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContains(FieldCandidateID, v))
}

// CandidateIDHasPrefix applies the HasPrefix predicate on the "candidate_id" field.
func CandidateIDHasPrefix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasPrefix(FieldCandidateID, v))
}

// CandidateIDHasSuffix applies the HasSuffix predicate on the "candidate_id" field.
func CandidateIDHasSuffix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasSuffix(FieldCandidateID, v))
}

// CandidateIDIsNil applies the IsNil predicate on the "candidate_id" field.
func CandidateIDIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldCandidateID))
}

// CandidateIDNotNil applies the NotNil predicate on the "candidate_id" field.
func CandidateIDNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldCandidateID))
}

// CandidateIDEqualFold applies the EqualFold predicate on the "candidate_id" field.
func CandidateIDEqualFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEqualFold(FieldCandidateID, v))
}

// CandidateIDContainsFold applies the ContainsFold predicate on the "candidate_id" field.
func CandidateIDContainsFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContainsFold(FieldCandidateID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldStatus, vs...))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContainsFold(FieldLanguage, v))
}

// FollowupsSentEQ applies the EQ predicate on the "followups_sent" field.
func FollowupsSentEQ(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldFollowupsSent, v))
}

// FollowupsSentNEQ applies the NEQ predicate on the "followups_sent" field.
func FollowupsSentNEQ(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldFollowupsSent, v))
}

// FollowupsSentIn applies the In predicate on the "followups_sent" field.
func FollowupsSentIn(vs ...int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldFollowupsSent, vs...))
}

// FollowupsSentNotIn applies the NotIn predicate on the "followups_sent" field.
func FollowupsSentNotIn(vs ...int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldFollowupsSent, vs...))
}

// FollowupsSentGT applies the GT predicate on the "followups_sent" field.
func FollowupsSentGT(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldFollowupsSent, v))
}

// FollowupsSentGTE applies the GTE predicate on the "followups_sent" field.
func FollowupsSentGTE(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldFollowupsSent, v))
}

// FollowupsSentLT applies the LT predicate on the "followups_sent" field.
func FollowupsSentLT(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldFollowupsSent, v))
}

// FollowupsSentLTE applies the LTE predicate on the "followups_sent" field.
func FollowupsSentLTE(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldFollowupsSent, v))
}

// TurnsEQ applies the EQ predicate on the "turns" field.
func TurnsEQ(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldTurns, v))
}

// TurnsNEQ applies the NEQ predicate on the "turns" field.
func TurnsNEQ(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldTurns, v))
}

// TurnsIn applies the In predicate on the "turns" field.
func TurnsIn(vs ...int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldTurns, vs...))
}

// TurnsNotIn applies the NotIn predicate on the "turns" field.
func TurnsNotIn(vs ...int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldTurns, vs...))
}

// TurnsGT applies the GT predicate on the "turns" field.
func TurnsGT(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldTurns, v))
}

// TurnsGTE applies the GTE predicate on the "turns" field.
func TurnsGTE(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldTurns, v))
}

// TurnsLT applies the LT predicate on the "turns" field.
func TurnsLT(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldTurns, v))
}

// TurnsLTE applies the LTE predicate on the "turns" field.
func TurnsLTE(v int) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldTurns, v))
}

// LastIntentEQ applies the EQ predicate on the "last_intent" field.
func LastIntentEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldLastIntent, v))
}

// LastIntentNEQ applies the NEQ predicate on the "last_intent" field.
func LastIntentNEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldLastIntent, v))
}

// LastIntentIn applies the In predicate on the "last_intent" field.
func LastIntentIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldLastIntent, vs...))
}

// LastIntentNotIn applies the NotIn predicate on the "last_intent" field.
func LastIntentNotIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldLastIntent, vs...))
}

// LastIntentGT applies the GT predicate on the "last_intent" field.
func LastIntentGT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldLastIntent, v))
}

// LastIntentGTE applies the GTE predicate on the "last_intent" field.
func LastIntentGTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldLastIntent, v))
}

// LastIntentLT applies the LT predicate on the "last_intent" field.
func LastIntentLT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldLastIntent, v))
}

// LastIntentLTE applies the LTE predicate on the "last_intent" field.
func LastIntentLTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldLastIntent, v))
}

// LastIntentContains applies the Contains predicate on the "last_intent" field.
func LastIntentContains(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContains(FieldLastIntent, v))
}

// LastIntentHasPrefix applies the HasPrefix predicate on the "last_intent" field.
func LastIntentHasPrefix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasPrefix(FieldLastIntent, v))
}

// LastIntentHasSuffix applies the HasSuffix predicate on the "last_intent" field.
func LastIntentHasSuffix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasSuffix(FieldLastIntent, v))
}

// LastIntentIsNil applies the IsNil predicate on the "last_intent" field.
func LastIntentIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldLastIntent))
}

// LastIntentNotNil applies the NotNil predicate on the "last_intent" field.
func LastIntentNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldLastIntent))
}

// LastIntentEqualFold applies the EqualFold predicate on the "last_intent" field.
func LastIntentEqualFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEqualFold(FieldLastIntent, v))
}

// LastIntentContainsFold applies the ContainsFold predicate on the "last_intent" field.
func LastIntentContainsFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContainsFold(FieldLastIntent, v))
}

// ResumeLinksIsNil applies the IsNil predicate on the "resume_links" field.
func ResumeLinksIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldResumeLinks))
}

// ResumeLinksNotNil applies the NotNil predicate on the "resume_links" field.
func ResumeLinksNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldResumeLinks))
}

// NextFollowupAtEQ applies the EQ predicate on the "next_followup_at" field.
func NextFollowupAtEQ(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldNextFollowupAt, v))
}

// NextFollowupAtNEQ applies the NEQ predicate on the "next_followup_at" field.
func NextFollowupAtNEQ(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldNextFollowupAt, v))
}

// NextFollowupAtIn applies the In predicate on the "next_followup_at" field.
func NextFollowupAtIn(vs ...time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldNextFollowupAt, vs...))
}

// NextFollowupAtNotIn applies the NotIn predicate on the "next_followup_at" field.
func NextFollowupAtNotIn(vs ...time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldNextFollowupAt, vs...))
}

// NextFollowupAtGT applies the GT predicate on the "next_followup_at" field.
func NextFollowupAtGT(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldNextFollowupAt, v))
}

// NextFollowupAtGTE applies the GTE predicate on the "next_followup_at" field.
func NextFollowupAtGTE(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldNextFollowupAt, v))
}

// NextFollowupAtLT applies the LT predicate on the "next_followup_at" field.
func NextFollowupAtLT(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldNextFollowupAt, v))
}

// NextFollowupAtLTE applies the LTE predicate on the "next_followup_at" field.
func NextFollowupAtLTE(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldNextFollowupAt, v))
}

// NextFollowupAtIsNil applies the IsNil predicate on the "next_followup_at" field.
func NextFollowupAtIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldNextFollowupAt))
}

// NextFollowupAtNotNil applies the NotNil predicate on the "next_followup_at" field.
func NextFollowupAtNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldNextFollowupAt))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldState))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.PreResumeSession {
	return predicate.PreResumeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.PreResumeSession {
	return predicate.PreResumeSession(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.PreResumeSession {
	return predicate.PreResumeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.PreResumeEvent) predicate.PreResumeSession {
	return predicate.PreResumeSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PreResumeSession) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PreResumeSession) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PreResumeSession) predicate.PreResumeSession {
	return predicate.PreResumeSession(sql.NotPredicates(p))
}

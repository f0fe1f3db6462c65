// Code generated by ent, DO NOT EDIT.

package preresumeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hireflow/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldSessionID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldJobID, v))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldCandidateID, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldIntent, v))
}

// InboundText applies equality check predicate on the "inbound_text" field. It's identical to InboundTextEQ.
func InboundText(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldInboundText, v))
}

// OutboundText applies equality check predicate on the "outbound_text" field. It's identical to OutboundTextEQ.
func OutboundText(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldOutboundText, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContainsFold(FieldJobID, v))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldCandidateID, vs...))
}

// CandidateIDGT applies the GT predicate on the "candidate_id" field.
func CandidateIDGT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldCandidateID, v))
}

// CandidateIDGTE applies the GTE predicate on the "candidate_id" field.
func CandidateIDGTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldCandidateID, v))
}

// CandidateIDLT applies the LT predicate on the "candidate_id" field.
func CandidateIDLT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldCandidateID, v))
}

// CandidateIDLTE applies the LTE predicate on the "candidate_id" field.
func CandidateIDLTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldCandidateID, v))
}

// CandidateIDContains applies the Contains predicate on the "candidate_id" field.
func CandidateIDContains(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContains(FieldCandidateID, v))
}

// CandidateIDHasPrefix applies the HasPrefix predicate on the "candidate_id" field.
func CandidateIDHasPrefix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasPrefix(FieldCandidateID, v))
}

// CandidateIDHasSuffix applies the HasSuffix predicate on the "candidate_id" field.
func CandidateIDHasSuffix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasSuffix(FieldCandidateID, v))
}

// CandidateIDIsNil applies the IsNil predicate on the "candidate_id" field.
func CandidateIDIsNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIsNull(FieldCandidateID))
}

// CandidateIDNotNil applies the NotNil predicate on the "candidate_id" field.
func CandidateIDNotNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotNull(FieldCandidateID))
}

// CandidateIDEqualFold applies the EqualFold predicate on the "candidate_id" field.
func CandidateIDEqualFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEqualFold(FieldCandidateID, v))
}

// CandidateIDContainsFold applies the ContainsFold predicate on the "candidate_id" field.
func CandidateIDContainsFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContainsFold(FieldCandidateID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentIsNil applies the IsNil predicate on the "intent" field.
func IntentIsNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIsNull(FieldIntent))
}

// IntentNotNil applies the NotNil predicate on the "intent" field.
func IntentNotNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotNull(FieldIntent))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContainsFold(FieldIntent, v))
}

// InboundTextEQ applies the EQ predicate on the "inbound_text" field.
func InboundTextEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldInboundText, v))
}

// InboundTextNEQ applies the NEQ predicate on the "inbound_text" field.
func InboundTextNEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldInboundText, v))
}

// InboundTextIn applies the In predicate on the "inbound_text" field.
func InboundTextIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldInboundText, vs...))
}

// InboundTextNotIn applies the NotIn predicate on the "inbound_text" field.
func InboundTextNotIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldInboundText, vs...))
}

// InboundTextGT applies the GT predicate on the "inbound_text" field.
func InboundTextGT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldInboundText, v))
}

// InboundTextGTE applies the GTE predicate on the "inbound_text" field.
func InboundTextGTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldInboundText, v))
}

// InboundTextLT applies the LT predicate on the "inbound_text" field.
func InboundTextLT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldInboundText, v))
}

// InboundTextLTE applies the LTE predicate on the "inbound_text" field.
func InboundTextLTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldInboundText, v))
}

// InboundTextContains applies the Contains predicate on the "inbound_text" field.
func InboundTextContains(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContains(FieldInboundText, v))
}

// InboundTextHasPrefix applies the HasPrefix predicate on the "inbound_text" field.
func InboundTextHasPrefix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasPrefix(FieldInboundText, v))
}

// InboundTextHasSuffix applies the HasSuffix predicate on the "inbound_text" field.
func InboundTextHasSuffix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasSuffix(FieldInboundText, v))
}

// InboundTextIsNil applies the IsNil predicate on the "inbound_text" field.
func InboundTextIsNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIsNull(FieldInboundText))
}

// InboundTextNotNil applies the NotNil predicate on the "inbound_text" field.
func InboundTextNotNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotNull(FieldInboundText))
}

// InboundTextEqualFold applies the EqualFold predicate on the "inbound_text" field.
func InboundTextEqualFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEqualFold(FieldInboundText, v))
}

// InboundTextContainsFold applies the ContainsFold predicate on the "inbound_text" field.
func InboundTextContainsFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContainsFold(FieldInboundText, v))
}

// OutboundTextEQ applies the EQ predicate on the "outbound_text" field.
func OutboundTextEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldOutboundText, v))
}

// OutboundTextNEQ applies the NEQ predicate on the "outbound_text" field.
func OutboundTextNEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldOutboundText, v))
}

// OutboundTextIn applies the In predicate on the "outbound_text" field.
func OutboundTextIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldOutboundText, vs...))
}

// OutboundTextNotIn applies the NotIn predicate on the "outbound_text" field.
func OutboundTextNotIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldOutboundText, vs...))
}

// OutboundTextGT applies the GT predicate on the "outbound_text" field.
func OutboundTextGT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldOutboundText, v))
}

// OutboundTextGTE applies the GTE predicate on the "outbound_text" field.
func OutboundTextGTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldOutboundText, v))
}

// OutboundTextLT applies the LT predicate on the "outbound_text" field.
func OutboundTextLT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldOutboundText, v))
}

// OutboundTextLTE applies the LTE predicate on the "outbound_text" field.
func OutboundTextLTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldOutboundText, v))
}

// OutboundTextContains applies the Contains predicate on the "outbound_text" field.
func OutboundTextContains(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContains(FieldOutboundText, v))
}

// OutboundTextHasPrefix applies the HasPrefix predicate on the "outbound_text" field.
func OutboundTextHasPrefix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasPrefix(FieldOutboundText, v))
}

// OutboundTextHasSuffix applies the HasSuffix predicate on the "outbound_text" field.
func OutboundTextHasSuffix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasSuffix(FieldOutboundText, v))
}

// OutboundTextIsNil applies the IsNil predicate on the "outbound_text" field.
func OutboundTextIsNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIsNull(FieldOutboundText))
}

// OutboundTextNotNil applies the NotNil predicate on the "outbound_text" field.
func OutboundTextNotNil() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotNull(FieldOutboundText))
}

// OutboundTextEqualFold applies the EqualFold predicate on the "outbound_text" field.
func OutboundTextEqualFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEqualFold(FieldOutboundText, v))
}

// OutboundTextContainsFold applies the ContainsFold predicate on the "outbound_text" field.
func OutboundTextContainsFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContainsFold(FieldOutboundText, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.PreResumeEvent {
	return predicate.PreResumeEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.PreResumeSession) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PreResumeEvent) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PreResumeEvent) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PreResumeEvent) predicate.PreResumeEvent {
	return predicate.PreResumeEvent(sql.NotPredicates(p))
}

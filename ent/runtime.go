// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hireflow/scout/ent/accountcounter"
	"github.com/hireflow/scout/ent/agentassessment"
	"github.com/hireflow/scout/ent/candidate"
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/idempotencyrecord"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/jobaccountassignment"
	"github.com/hireflow/scout/ent/jobstepprogress"
	"github.com/hireflow/scout/ent/match"
	"github.com/hireflow/scout/ent/message"
	"github.com/hireflow/scout/ent/operationlog"
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
	"github.com/hireflow/scout/ent/schema"
	"github.com/hireflow/scout/ent/senderaccount"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountcounterFields := schema.AccountCounter{}.Fields()
	_ = accountcounterFields
	// accountcounterDescNewThreadsSent is the schema descriptor for new_threads_sent field.
	accountcounterDescNewThreadsSent := accountcounterFields[3].Descriptor()
	// accountcounter.DefaultNewThreadsSent holds the default value on creation for the new_threads_sent field.
	accountcounter.DefaultNewThreadsSent = accountcounterDescNewThreadsSent.Default.(int)
	// accountcounterDescConnectsSent is the schema descriptor for connects_sent field.
	accountcounterDescConnectsSent := accountcounterFields[4].Descriptor()
	// accountcounter.DefaultConnectsSent holds the default value on creation for the connects_sent field.
	accountcounter.DefaultConnectsSent = accountcounterDescConnectsSent.Default.(int)
	// accountcounterDescUpdatedAt is the schema descriptor for updated_at field.
	accountcounterDescUpdatedAt := accountcounterFields[5].Descriptor()
	// accountcounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	accountcounter.DefaultUpdatedAt = accountcounterDescUpdatedAt.Default.(func() time.Time)
	// accountcounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	accountcounter.UpdateDefaultUpdatedAt = accountcounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentassessmentFields := schema.AgentAssessment{}.Fields()
	_ = agentassessmentFields
	// agentassessmentDescStatus is the schema descriptor for status field.
	agentassessmentDescStatus := agentassessmentFields[6].Descriptor()
	// agentassessment.DefaultStatus holds the default value on creation for the status field.
	agentassessment.DefaultStatus = agentassessmentDescStatus.Default.(string)
	// agentassessmentDescCreatedAt is the schema descriptor for created_at field.
	agentassessmentDescCreatedAt := agentassessmentFields[9].Descriptor()
	// agentassessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentassessment.DefaultCreatedAt = agentassessmentDescCreatedAt.Default.(func() time.Time)
	// agentassessmentDescUpdatedAt is the schema descriptor for updated_at field.
	agentassessmentDescUpdatedAt := agentassessmentFields[10].Descriptor()
	// agentassessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentassessment.DefaultUpdatedAt = agentassessmentDescUpdatedAt.Default.(func() time.Time)
	// agentassessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentassessment.UpdateDefaultUpdatedAt = agentassessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[8].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescUpdatedAt is the schema descriptor for updated_at field.
	candidateDescUpdatedAt := candidateFields[9].Descriptor()
	// candidate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	candidate.DefaultUpdatedAt = candidateDescUpdatedAt.Default.(func() time.Time)
	// candidate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	candidate.UpdateDefaultUpdatedAt = candidateDescUpdatedAt.UpdateDefault.(func() time.Time)
	candidatesignalFields := schema.CandidateSignal{}.Fields()
	_ = candidatesignalFields
	// candidatesignalDescImpact is the schema descriptor for impact field.
	candidatesignalDescImpact := candidatesignalFields[8].Descriptor()
	// candidatesignal.DefaultImpact holds the default value on creation for the impact field.
	candidatesignal.DefaultImpact = candidatesignalDescImpact.Default.(float64)
	// candidatesignalDescConfidence is the schema descriptor for confidence field.
	candidatesignalDescConfidence := candidatesignalFields[9].Descriptor()
	// candidatesignal.DefaultConfidence holds the default value on creation for the confidence field.
	candidatesignal.DefaultConfidence = candidatesignalDescConfidence.Default.(float64)
	// candidatesignalDescCreatedAt is the schema descriptor for created_at field.
	candidatesignalDescCreatedAt := candidatesignalFields[12].Descriptor()
	// candidatesignal.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidatesignal.DefaultCreatedAt = candidatesignalDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescChannel is the schema descriptor for channel field.
	conversationDescChannel := conversationFields[3].Descriptor()
	// conversation.DefaultChannel holds the default value on creation for the channel field.
	conversation.DefaultChannel = conversationDescChannel.Default.(string)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[8].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	idempotencyrecordFields := schema.IdempotencyRecord{}.Fields()
	_ = idempotencyrecordFields
	// idempotencyrecordDescCreatedAt is the schema descriptor for created_at field.
	idempotencyrecordDescCreatedAt := idempotencyrecordFields[5].Descriptor()
	// idempotencyrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	idempotencyrecord.DefaultCreatedAt = idempotencyrecordDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[7].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[8].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobaccountassignmentFields := schema.JobAccountAssignment{}.Fields()
	_ = jobaccountassignmentFields
	// jobaccountassignmentDescCreatedAt is the schema descriptor for created_at field.
	jobaccountassignmentDescCreatedAt := jobaccountassignmentFields[2].Descriptor()
	// jobaccountassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobaccountassignment.DefaultCreatedAt = jobaccountassignmentDescCreatedAt.Default.(func() time.Time)
	jobstepprogressFields := schema.JobStepProgress{}.Fields()
	_ = jobstepprogressFields
	// jobstepprogressDescCreatedAt is the schema descriptor for created_at field.
	jobstepprogressDescCreatedAt := jobstepprogressFields[7].Descriptor()
	// jobstepprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobstepprogress.DefaultCreatedAt = jobstepprogressDescCreatedAt.Default.(func() time.Time)
	// jobstepprogressDescUpdatedAt is the schema descriptor for updated_at field.
	jobstepprogressDescUpdatedAt := jobstepprogressFields[8].Descriptor()
	// jobstepprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobstepprogress.DefaultUpdatedAt = jobstepprogressDescUpdatedAt.Default.(func() time.Time)
	// jobstepprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobstepprogress.UpdateDefaultUpdatedAt = jobstepprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	matchFields := schema.Match{}.Fields()
	_ = matchFields
	// matchDescScore is the schema descriptor for score field.
	matchDescScore := matchFields[3].Descriptor()
	// match.DefaultScore holds the default value on creation for the score field.
	match.DefaultScore = matchDescScore.Default.(float64)
	// matchDescCreatedAt is the schema descriptor for created_at field.
	matchDescCreatedAt := matchFields[6].Descriptor()
	// match.DefaultCreatedAt holds the default value on creation for the created_at field.
	match.DefaultCreatedAt = matchDescCreatedAt.Default.(func() time.Time)
	// matchDescUpdatedAt is the schema descriptor for updated_at field.
	matchDescUpdatedAt := matchFields[7].Descriptor()
	// match.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	match.DefaultUpdatedAt = matchDescUpdatedAt.Default.(func() time.Time)
	// match.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	match.UpdateDefaultUpdatedAt = matchDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	operationlogFields := schema.OperationLog{}.Fields()
	_ = operationlogFields
	// operationlogDescStatus is the schema descriptor for status field.
	operationlogDescStatus := operationlogFields[1].Descriptor()
	// operationlog.DefaultStatus holds the default value on creation for the status field.
	operationlog.DefaultStatus = operationlogDescStatus.Default.(string)
	// operationlogDescCreatedAt is the schema descriptor for created_at field.
	operationlogDescCreatedAt := operationlogFields[7].Descriptor()
	// operationlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	operationlog.DefaultCreatedAt = operationlogDescCreatedAt.Default.(func() time.Time)
	outboundactionFields := schema.OutboundAction{}.Fields()
	_ = outboundactionFields
	// outboundactionDescAttempts is the schema descriptor for attempts field.
	outboundactionDescAttempts := outboundactionFields[8].Descriptor()
	// outboundaction.DefaultAttempts holds the default value on creation for the attempts field.
	outboundaction.DefaultAttempts = outboundactionDescAttempts.Default.(int)
	// outboundactionDescCreatedAt is the schema descriptor for created_at field.
	outboundactionDescCreatedAt := outboundactionFields[10].Descriptor()
	// outboundaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboundaction.DefaultCreatedAt = outboundactionDescCreatedAt.Default.(func() time.Time)
	// outboundactionDescUpdatedAt is the schema descriptor for updated_at field.
	outboundactionDescUpdatedAt := outboundactionFields[11].Descriptor()
	// outboundaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	outboundaction.DefaultUpdatedAt = outboundactionDescUpdatedAt.Default.(func() time.Time)
	// outboundaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	outboundaction.UpdateDefaultUpdatedAt = outboundactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	preresumeeventFields := schema.PreResumeEvent{}.Fields()
	_ = preresumeeventFields
	// preresumeeventDescCreatedAt is the schema descriptor for created_at field.
	preresumeeventDescCreatedAt := preresumeeventFields[8].Descriptor()
	// preresumeevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	preresumeevent.DefaultCreatedAt = preresumeeventDescCreatedAt.Default.(func() time.Time)
	preresumesessionFields := schema.PreResumeSession{}.Fields()
	_ = preresumesessionFields
	// preresumesessionDescLanguage is the schema descriptor for language field.
	preresumesessionDescLanguage := preresumesessionFields[5].Descriptor()
	// preresumesession.DefaultLanguage holds the default value on creation for the language field.
	preresumesession.DefaultLanguage = preresumesessionDescLanguage.Default.(string)
	// preresumesessionDescFollowupsSent is the schema descriptor for followups_sent field.
	preresumesessionDescFollowupsSent := preresumesessionFields[6].Descriptor()
	// preresumesession.DefaultFollowupsSent holds the default value on creation for the followups_sent field.
	preresumesession.DefaultFollowupsSent = preresumesessionDescFollowupsSent.Default.(int)
	// preresumesessionDescTurns is the schema descriptor for turns field.
	preresumesessionDescTurns := preresumesessionFields[7].Descriptor()
	// preresumesession.DefaultTurns holds the default value on creation for the turns field.
	preresumesession.DefaultTurns = preresumesessionDescTurns.Default.(int)
	// preresumesessionDescCreatedAt is the schema descriptor for created_at field.
	preresumesessionDescCreatedAt := preresumesessionFields[13].Descriptor()
	// preresumesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	preresumesession.DefaultCreatedAt = preresumesessionDescCreatedAt.Default.(func() time.Time)
	// preresumesessionDescUpdatedAt is the schema descriptor for updated_at field.
	preresumesessionDescUpdatedAt := preresumesessionFields[14].Descriptor()
	// preresumesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	preresumesession.DefaultUpdatedAt = preresumesessionDescUpdatedAt.Default.(func() time.Time)
	// preresumesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	preresumesession.UpdateDefaultUpdatedAt = preresumesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	senderaccountFields := schema.SenderAccount{}.Fields()
	_ = senderaccountFields
	// senderaccountDescCreatedAt is the schema descriptor for created_at field.
	senderaccountDescCreatedAt := senderaccountFields[7].Descriptor()
	// senderaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	senderaccount.DefaultCreatedAt = senderaccountDescCreatedAt.Default.(func() time.Time)
	// senderaccountDescUpdatedAt is the schema descriptor for updated_at field.
	senderaccountDescUpdatedAt := senderaccountFields[8].Descriptor()
	// senderaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	senderaccount.DefaultUpdatedAt = senderaccountDescUpdatedAt.Default.(func() time.Time)
	// senderaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	senderaccount.UpdateDefaultUpdatedAt = senderaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
}

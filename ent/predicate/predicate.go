// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AccountCounter is the predicate function for accountcounter builders.
type AccountCounter func(*sql.Selector)

// AgentAssessment is the predicate function for agentassessment builders.
type AgentAssessment func(*sql.Selector)

// Candidate is the predicate function for candidate builders.
type Candidate func(*sql.Selector)

// CandidateSignal is the predicate function for candidatesignal builders.
type CandidateSignal func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// IdempotencyRecord is the predicate function for idempotencyrecord builders.
type IdempotencyRecord func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobAccountAssignment is the predicate function for jobaccountassignment builders.
type JobAccountAssignment func(*sql.Selector)

// JobStepProgress is the predicate function for jobstepprogress builders.
type JobStepProgress func(*sql.Selector)

// Match is the predicate function for match builders.
type Match func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// OperationLog is the predicate function for operationlog builders.
type OperationLog func(*sql.Selector)

// OutboundAction is the predicate function for outboundaction builders.
type OutboundAction func(*sql.Selector)

// PreResumeEvent is the predicate function for preresumeevent builders.
type PreResumeEvent func(*sql.Selector)

// PreResumeSession is the predicate function for preresumesession builders.
type PreResumeSession func(*sql.Selector)

// SenderAccount is the predicate function for senderaccount builders.
type SenderAccount func(*sql.Selector)

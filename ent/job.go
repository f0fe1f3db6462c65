// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/job"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Job description text; mutable after creation
	JdText string `json:"jd_text,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// PreferredLanguages holds the value of the "preferred_languages" field.
	PreferredLanguages []string `json:"preferred_languages,omitempty"`
	// Explicit seniority band; inferred from JD when empty
	Seniority string `json:"seniority,omitempty"`
	// auto: any connected sender account; manual: assigned accounts only
	RoutingMode job.RoutingMode `json:"routing_mode,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// Matches holds the value of the matches edge.
	Matches []*Match `json:"matches,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// OutboundActions holds the value of the outbound_actions edge.
	OutboundActions []*OutboundAction `json:"outbound_actions,omitempty"`
	// StepProgress holds the value of the step_progress edge.
	StepProgress []*JobStepProgress `json:"step_progress,omitempty"`
	// AccountAssignments holds the value of the account_assignments edge.
	AccountAssignments []*JobAccountAssignment `json:"account_assignments,omitempty"`
	// Signals holds the value of the signals edge.
	Signals []*CandidateSignal `json:"signals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// MatchesOrErr returns the Matches value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) MatchesOrErr() ([]*Match, error) {
	if e.loadedTypes[0] {
		return e.Matches, nil
	}
	return nil, &NotLoadedError{edge: "matches"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[1] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// OutboundActionsOrErr returns the OutboundActions value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) OutboundActionsOrErr() ([]*OutboundAction, error) {
	if e.loadedTypes[2] {
		return e.OutboundActions, nil
	}
	return nil, &NotLoadedError{edge: "outbound_actions"}
}

// StepProgressOrErr returns the StepProgress value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) StepProgressOrErr() ([]*JobStepProgress, error) {
	if e.loadedTypes[3] {
		return e.StepProgress, nil
	}
	return nil, &NotLoadedError{edge: "step_progress"}
}

// AccountAssignmentsOrErr returns the AccountAssignments value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) AccountAssignmentsOrErr() ([]*JobAccountAssignment, error) {
	if e.loadedTypes[4] {
		return e.AccountAssignments, nil
	}
	return nil, &NotLoadedError{edge: "account_assignments"}
}

// SignalsOrErr returns the Signals value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) SignalsOrErr() ([]*CandidateSignal, error) {
	if e.loadedTypes[5] {
		return e.Signals, nil
	}
	return nil, &NotLoadedError{edge: "signals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldPreferredLanguages:
			values[i] = new([]byte)
		case job.FieldID, job.FieldTitle, job.FieldJdText, job.FieldLocation, job.FieldSeniority, job.FieldRoutingMode:
			values[i] = new(sql.NullString)
		case job.FieldCreatedAt, job.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case job.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case job.FieldJdText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jd_text", values[i])
			} else if value.Valid {
				_m.JdText = value.String
			}
		case job.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case job.FieldPreferredLanguages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_languages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredLanguages); err != nil {
					return fmt.Errorf("unmarshal field preferred_languages: %w", err)
				}
			}
		case job.FieldSeniority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seniority", values[i])
			} else if value.Valid {
				_m.Seniority = value.String
			}
		case job.FieldRoutingMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field routing_mode", values[i])
			} else if value.Valid {
				_m.RoutingMode = job.RoutingMode(value.String)
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMatches queries the "matches" edge of the Job entity.
func (_m *Job) QueryMatches() *MatchQuery {
	return NewJobClient(_m.config).QueryMatches(_m)
}

// QueryConversations queries the "conversations" edge of the Job entity.
func (_m *Job) QueryConversations() *ConversationQuery {
	return NewJobClient(_m.config).QueryConversations(_m)
}

// QueryOutboundActions queries the "outbound_actions" edge of the Job entity.
func (_m *Job) QueryOutboundActions() *OutboundActionQuery {
	return NewJobClient(_m.config).QueryOutboundActions(_m)
}

// QueryStepProgress queries the "step_progress" edge of the Job entity.
func (_m *Job) QueryStepProgress() *JobStepProgressQuery {
	return NewJobClient(_m.config).QueryStepProgress(_m)
}

// QueryAccountAssignments queries the "account_assignments" edge of the Job entity.
func (_m *Job) QueryAccountAssignments() *JobAccountAssignmentQuery {
	return NewJobClient(_m.config).QueryAccountAssignments(_m)
}

// QuerySignals queries the "signals" edge of the Job entity.
func (_m *Job) QuerySignals() *CandidateSignalQuery {
	return NewJobClient(_m.config).QuerySignals(_m)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("jd_text=")
	builder.WriteString(_m.JdText)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("preferred_languages=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredLanguages))
	builder.WriteString(", ")
	builder.WriteString("seniority=")
	builder.WriteString(_m.Seniority)
	builder.WriteString(", ")
	builder.WriteString("routing_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoutingMode))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job

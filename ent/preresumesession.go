// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/preresumesession"
)

// PreResumeSession is the model entity for the PreResumeSession schema.
type PreResumeSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Set when the session is bound to a conversation
	ConversationID *string `json:"conversation_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID string `json:"candidate_id,omitempty"`
	// Status holds the value of the "status" field.
	Status preresumesession.Status `json:"status,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// FollowupsSent holds the value of the "followups_sent" field.
	FollowupsSent int `json:"followups_sent,omitempty"`
	// Inbound messages processed
	Turns int `json:"turns,omitempty"`
	// LastIntent holds the value of the "last_intent" field.
	LastIntent string `json:"last_intent,omitempty"`
	// ResumeLinks holds the value of the "resume_links" field.
	ResumeLinks []string `json:"resume_links,omitempty"`
	// Null in terminal states
	NextFollowupAt *time.Time `json:"next_followup_at,omitempty"`
	// Full serialized FSM state, written on every transition
	State map[string]interface{} `json:"state,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PreResumeSessionQuery when eager-loading is set.
	Edges        PreResumeSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PreResumeSessionEdges holds the relations/edges for other nodes in the graph.
type PreResumeSessionEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// Events holds the value of the events edge.
	Events []*PreResumeEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PreResumeSessionEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e PreResumeSessionEdges) EventsOrErr() ([]*PreResumeEvent, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PreResumeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case preresumesession.FieldResumeLinks, preresumesession.FieldState:
			values[i] = new([]byte)
		case preresumesession.FieldFollowupsSent, preresumesession.FieldTurns:
			values[i] = new(sql.NullInt64)
		case preresumesession.FieldID, preresumesession.FieldConversationID, preresumesession.FieldJobID, preresumesession.FieldCandidateID, preresumesession.FieldStatus, preresumesession.FieldLanguage, preresumesession.FieldLastIntent, preresumesession.FieldLastError:
			values[i] = new(sql.NullString)
		case preresumesession.FieldNextFollowupAt, preresumesession.FieldCreatedAt, preresumesession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PreResumeSession fields.
func (_m *PreResumeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case preresumesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case preresumesession.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = new(string)
				*_m.ConversationID = value.String
			}
		case preresumesession.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case preresumesession.FieldCandidateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value.Valid {
				_m.CandidateID = value.String
			}
		case preresumesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = preresumesession.Status(value.String)
			}
		case preresumesession.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case preresumesession.FieldFollowupsSent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field followups_sent", values[i])
			} else if value.Valid {
				_m.FollowupsSent = int(value.Int64)
			}
		case preresumesession.FieldTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turns", values[i])
			} else if value.Valid {
				_m.Turns = int(value.Int64)
			}
		case preresumesession.FieldLastIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_intent", values[i])
			} else if value.Valid {
				_m.LastIntent = value.String
			}
		case preresumesession.FieldResumeLinks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resume_links", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResumeLinks); err != nil {
					return fmt.Errorf("unmarshal field resume_links: %w", err)
				}
			}
		case preresumesession.FieldNextFollowupAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_followup_at", values[i])
			} else if value.Valid {
				_m.NextFollowupAt = new(time.Time)
				*_m.NextFollowupAt = value.Time
			}
		case preresumesession.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case preresumesession.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case preresumesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case preresumesession.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PreResumeSession.
// This includes values selected through modifiers, order, etc.
func (_m *PreResumeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the PreResumeSession entity.
func (_m *PreResumeSession) QueryConversation() *ConversationQuery {
	return NewPreResumeSessionClient(_m.config).QueryConversation(_m)
}

// QueryEvents queries the "events" edge of the PreResumeSession entity.
func (_m *PreResumeSession) QueryEvents() *PreResumeEventQuery {
	return NewPreResumeSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this PreResumeSession.
// Note that you need to call PreResumeSession.Unwrap() before calling this method if this PreResumeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PreResumeSession) Update() *PreResumeSessionUpdateOne {
	return NewPreResumeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PreResumeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PreResumeSession) Unwrap() *PreResumeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PreResumeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PreResumeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PreResumeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ConversationID; v != nil {
		builder.WriteString("conversation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("candidate_id=")
	builder.WriteString(_m.CandidateID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("followups_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowupsSent))
	builder.WriteString(", ")
	builder.WriteString("turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turns))
	builder.WriteString(", ")
	builder.WriteString("last_intent=")
	builder.WriteString(_m.LastIntent)
	builder.WriteString(", ")
	builder.WriteString("resume_links=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResumeLinks))
	builder.WriteString(", ")
	if v := _m.NextFollowupAt; v != nil {
		builder.WriteString("next_followup_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PreResumeSessions is a parsable slice of PreResumeSession.
type PreResumeSessions []*PreResumeSession

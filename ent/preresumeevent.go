// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/preresumeevent"
	"github.com/hireflow/scout/ent/preresumesession"
)

// PreResumeEvent is the model entity for the PreResumeEvent schema.
type PreResumeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID string `json:"candidate_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType preresumeevent.EventType `json:"event_type,omitempty"`
	// Intent holds the value of the "intent" field.
	Intent string `json:"intent,omitempty"`
	// InboundText holds the value of the "inbound_text" field.
	InboundText string `json:"inbound_text,omitempty"`
	// OutboundText holds the value of the "outbound_text" field.
	OutboundText string `json:"outbound_text,omitempty"`
	// Session status after the transition
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PreResumeEventQuery when eager-loading is set.
	Edges        PreResumeEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PreResumeEventEdges holds the relations/edges for other nodes in the graph.
type PreResumeEventEdges struct {
	// Session holds the value of the session edge.
	Session *PreResumeSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PreResumeEventEdges) SessionOrErr() (*PreResumeSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: preresumesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PreResumeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case preresumeevent.FieldID:
			values[i] = new(sql.NullInt64)
		case preresumeevent.FieldSessionID, preresumeevent.FieldJobID, preresumeevent.FieldCandidateID, preresumeevent.FieldEventType, preresumeevent.FieldIntent, preresumeevent.FieldInboundText, preresumeevent.FieldOutboundText, preresumeevent.FieldStatus:
			values[i] = new(sql.NullString)
		case preresumeevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PreResumeEvent fields.
func (_m *PreResumeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case preresumeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case preresumeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case preresumeevent.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case preresumeevent.FieldCandidateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value.Valid {
				_m.CandidateID = value.String
			}
		case preresumeevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = preresumeevent.EventType(value.String)
			}
		case preresumeevent.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case preresumeevent.FieldInboundText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inbound_text", values[i])
			} else if value.Valid {
				_m.InboundText = value.String
			}
		case preresumeevent.FieldOutboundText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outbound_text", values[i])
			} else if value.Valid {
				_m.OutboundText = value.String
			}
		case preresumeevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case preresumeevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PreResumeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PreResumeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the PreResumeEvent entity.
func (_m *PreResumeEvent) QuerySession() *PreResumeSessionQuery {
	return NewPreResumeEventClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this PreResumeEvent.
// Note that you need to call PreResumeEvent.Unwrap() before calling this method if this PreResumeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PreResumeEvent) Update() *PreResumeEventUpdateOne {
	return NewPreResumeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PreResumeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PreResumeEvent) Unwrap() *PreResumeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PreResumeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PreResumeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PreResumeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("candidate_id=")
	builder.WriteString(_m.CandidateID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("inbound_text=")
	builder.WriteString(_m.InboundText)
	builder.WriteString(", ")
	builder.WriteString("outbound_text=")
	builder.WriteString(_m.OutboundText)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PreResumeEvents is a parsable slice of PreResumeEvent.
type PreResumeEvents []*PreResumeEvent

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/candidatesignal"
	"github.com/hireflow/scout/ent/job"
)

// CandidateSignal is the model entity for the CandidateSignal schema.
type CandidateSignal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID string `json:"candidate_id,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType candidatesignal.SourceType `json:"source_type,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// SignalType holds the value of the "signal_type" field.
	SignalType string `json:"signal_type,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// Impact holds the value of the "impact" field.
	Impact float64 `json:"impact,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SignalMeta holds the value of the "signal_meta" field.
	SignalMeta map[string]interface{} `json:"signal_meta,omitempty"`
	// ObservedAt holds the value of the "observed_at" field.
	ObservedAt time.Time `json:"observed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CandidateSignalQuery when eager-loading is set.
	Edges        CandidateSignalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CandidateSignalEdges holds the relations/edges for other nodes in the graph.
type CandidateSignalEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CandidateSignalEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CandidateSignal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case candidatesignal.FieldSignalMeta:
			values[i] = new([]byte)
		case candidatesignal.FieldImpact, candidatesignal.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case candidatesignal.FieldID:
			values[i] = new(sql.NullInt64)
		case candidatesignal.FieldJobID, candidatesignal.FieldCandidateID, candidatesignal.FieldSourceType, candidatesignal.FieldSourceID, candidatesignal.FieldSignalType, candidatesignal.FieldCategory, candidatesignal.FieldTitle, candidatesignal.FieldDetail:
			values[i] = new(sql.NullString)
		case candidatesignal.FieldObservedAt, candidatesignal.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CandidateSignal fields.
func (_m *CandidateSignal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case candidatesignal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case candidatesignal.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case candidatesignal.FieldCandidateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value.Valid {
				_m.CandidateID = value.String
			}
		case candidatesignal.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = candidatesignal.SourceType(value.String)
			}
		case candidatesignal.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case candidatesignal.FieldSignalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signal_type", values[i])
			} else if value.Valid {
				_m.SignalType = value.String
			}
		case candidatesignal.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case candidatesignal.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case candidatesignal.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case candidatesignal.FieldImpact:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field impact", values[i])
			} else if value.Valid {
				_m.Impact = value.Float64
			}
		case candidatesignal.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case candidatesignal.FieldSignalMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signal_meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SignalMeta); err != nil {
					return fmt.Errorf("unmarshal field signal_meta: %w", err)
				}
			}
		case candidatesignal.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		case candidatesignal.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CandidateSignal.
// This includes values selected through modifiers, order, etc.
func (_m *CandidateSignal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the CandidateSignal entity.
func (_m *CandidateSignal) QueryJob() *JobQuery {
	return NewCandidateSignalClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this CandidateSignal.
// Note that you need to call CandidateSignal.Unwrap() before calling this method if this CandidateSignal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CandidateSignal) Update() *CandidateSignalUpdateOne {
	return NewCandidateSignalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CandidateSignal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CandidateSignal) Unwrap() *CandidateSignal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CandidateSignal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CandidateSignal) String() string {
	var builder strings.Builder
	builder.WriteString("CandidateSignal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("candidate_id=")
	builder.WriteString(_m.CandidateID)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("signal_type=")
	builder.WriteString(_m.SignalType)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("impact=")
	builder.WriteString(fmt.Sprintf("%v", _m.Impact))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("signal_meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalMeta))
	builder.WriteString(", ")
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CandidateSignals is a parsable slice of CandidateSignal.
type CandidateSignals []*CandidateSignal

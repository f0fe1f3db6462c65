// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/jobaccountassignment"
)

// JobAccountAssignment is the model entity for the JobAccountAssignment schema.
type JobAccountAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobAccountAssignmentQuery when eager-loading is set.
	Edges        JobAccountAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobAccountAssignmentEdges holds the relations/edges for other nodes in the graph.
type JobAccountAssignmentEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobAccountAssignmentEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobAccountAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobaccountassignment.FieldID:
			values[i] = new(sql.NullInt64)
		case jobaccountassignment.FieldJobID, jobaccountassignment.FieldAccountID:
			values[i] = new(sql.NullString)
		case jobaccountassignment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobAccountAssignment fields.
func (_m *JobAccountAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobaccountassignment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case jobaccountassignment.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case jobaccountassignment.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case jobaccountassignment.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the JobAccountAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *JobAccountAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobAccountAssignment entity.
func (_m *JobAccountAssignment) QueryJob() *JobQuery {
	return NewJobAccountAssignmentClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobAccountAssignment.
// Note that you need to call JobAccountAssignment.Unwrap() before calling this method if this JobAccountAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobAccountAssignment) Update() *JobAccountAssignmentUpdateOne {
	return NewJobAccountAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobAccountAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobAccountAssignment) Unwrap() *JobAccountAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobAccountAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobAccountAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("JobAccountAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobAccountAssignments is a parsable slice of JobAccountAssignment.
type JobAccountAssignments []*JobAccountAssignment

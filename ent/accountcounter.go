// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hireflow/scout/ent/accountcounter"
)

// AccountCounter is the model entity for the AccountCounter schema.
type AccountCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Period holds the value of the "period" field.
	Period accountcounter.Period `json:"period,omitempty"`
	// UTC midnight for day, UTC Monday midnight for week
	PeriodStart time.Time `json:"period_start,omitempty"`
	// NewThreadsSent holds the value of the "new_threads_sent" field.
	NewThreadsSent int `json:"new_threads_sent,omitempty"`
	// ConnectsSent holds the value of the "connects_sent" field.
	ConnectsSent int `json:"connects_sent,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AccountCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case accountcounter.FieldID, accountcounter.FieldNewThreadsSent, accountcounter.FieldConnectsSent:
			values[i] = new(sql.NullInt64)
		case accountcounter.FieldAccountID, accountcounter.FieldPeriod:
			values[i] = new(sql.NullString)
		case accountcounter.FieldPeriodStart, accountcounter.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AccountCounter fields.
func (_m *AccountCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case accountcounter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case accountcounter.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case accountcounter.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = accountcounter.Period(value.String)
			}
		case accountcounter.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				_m.PeriodStart = value.Time
			}
		case accountcounter.FieldNewThreadsSent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_threads_sent", values[i])
			} else if value.Valid {
				_m.NewThreadsSent = int(value.Int64)
			}
		case accountcounter.FieldConnectsSent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field connects_sent", values[i])
			} else if value.Valid {
				_m.ConnectsSent = int(value.Int64)
			}
		case accountcounter.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AccountCounter.
// This includes values selected through modifiers, order, etc.
func (_m *AccountCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AccountCounter.
// Note that you need to call AccountCounter.Unwrap() before calling this method if this AccountCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AccountCounter) Update() *AccountCounterUpdateOne {
	return NewAccountCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AccountCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AccountCounter) Unwrap() *AccountCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AccountCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AccountCounter) String() string {
	var builder strings.Builder
	builder.WriteString("AccountCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(fmt.Sprintf("%v", _m.Period))
	builder.WriteString(", ")
	builder.WriteString("period_start=")
	builder.WriteString(_m.PeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("new_threads_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewThreadsSent))
	builder.WriteString(", ")
	builder.WriteString("connects_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConnectsSent))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AccountCounters is a parsable slice of AccountCounter.
type AccountCounters []*AccountCounter

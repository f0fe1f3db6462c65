// Code generated by ent, DO NOT EDIT.

package accountcounter

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the accountcounter type in the database.
	Label = "account_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldPeriodStart holds the string denoting the period_start field in the database.
	FieldPeriodStart = "period_start"
	// FieldNewThreadsSent holds the string denoting the new_threads_sent field in the database.
	FieldNewThreadsSent = "new_threads_sent"
	// FieldConnectsSent holds the string denoting the connects_sent field in the database.
	FieldConnectsSent = "connects_sent"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the accountcounter in the database.
	Table = "account_counters"
)

// Columns holds all SQL columns for accountcounter fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldPeriod,
	FieldPeriodStart,
	FieldNewThreadsSent,
	FieldConnectsSent,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultNewThreadsSent holds the default value on creation for the "new_threads_sent" field.
	DefaultNewThreadsSent int
	// DefaultConnectsSent holds the default value on creation for the "connects_sent" field.
	DefaultConnectsSent int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Period defines the type for the "period" enum field.
type Period string

// Period values.
const (
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
)

func (pe Period) String() string {
	return string(pe)
}

// PeriodValidator is a validator for the "period" field enum values. It is called by the builders before save.
func PeriodValidator(pe Period) error {
	switch pe {
	case PeriodDay, PeriodWeek:
		return nil
	default:
		return fmt.Errorf("accountcounter: invalid enum value for period field: %q", pe)
	}
}

// OrderOption defines the ordering options for the AccountCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByPeriodStart orders the results by the period_start field.
func ByPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodStart, opts...).ToFunc()
}

// ByNewThreadsSent orders the results by the new_threads_sent field.
func ByNewThreadsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewThreadsSent, opts...).ToFunc()
}

// ByConnectsSent orders the results by the connects_sent field.
func ByConnectsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectsSent, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

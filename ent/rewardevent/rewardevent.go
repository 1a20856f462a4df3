// Code generated by ent, DO NOT EDIT.

package rewardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rewardevent type in the database.
	Label = "reward_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// Table holds the table name of the rewardevent in the database.
	Table = "reward_events"
)

// Columns holds all SQL columns for rewardevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldDay,
	FieldStreak,
	FieldXpAwarded,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
)

// OrderOption defines the ordering options for the RewardEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}

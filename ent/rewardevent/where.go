// Code generated by ent, DO NOT EDIT.

package rewardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/skilylabs/skily/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldDay, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldStreak, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldTimestamp, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldDay, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldStreak, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.NotPredicates(p))
}

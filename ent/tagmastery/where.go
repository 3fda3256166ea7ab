// Code generated by ent, DO NOT EDIT.

package tagmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ankur/codedrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLTE(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldTopic, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldTotalAttempts, v))
}

// SuccessfulAttempts applies equality check predicate on the "successful_attempts" field. It's identical to SuccessfulAttemptsEQ.
func SuccessfulAttempts(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldSuccessfulAttempts, v))
}

// DecayScore applies equality check predicate on the "decay_score" field. It's identical to DecayScoreEQ.
func DecayScore(v float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldDecayScore, v))
}

// Mastered applies equality check predicate on the "mastered" field. It's identical to MasteredEQ.
func Mastered(v bool) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldMastered, v))
}

// LastSuccessAt applies equality check predicate on the "last_success_at" field. It's identical to LastSuccessAtEQ.
func LastSuccessAt(v time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldLastSuccessAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldContainsFold(FieldTopic, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLTE(FieldTotalAttempts, v))
}

// SuccessfulAttemptsEQ applies the EQ predicate on the "successful_attempts" field.
func SuccessfulAttemptsEQ(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldSuccessfulAttempts, v))
}

// SuccessfulAttemptsNEQ applies the NEQ predicate on the "successful_attempts" field.
func SuccessfulAttemptsNEQ(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNEQ(FieldSuccessfulAttempts, v))
}

// SuccessfulAttemptsIn applies the In predicate on the "successful_attempts" field.
func SuccessfulAttemptsIn(vs ...int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldIn(FieldSuccessfulAttempts, vs...))
}

// SuccessfulAttemptsNotIn applies the NotIn predicate on the "successful_attempts" field.
func SuccessfulAttemptsNotIn(vs ...int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNotIn(FieldSuccessfulAttempts, vs...))
}

// SuccessfulAttemptsGT applies the GT predicate on the "successful_attempts" field.
func SuccessfulAttemptsGT(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGT(FieldSuccessfulAttempts, v))
}

// SuccessfulAttemptsGTE applies the GTE predicate on the "successful_attempts" field.
func SuccessfulAttemptsGTE(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGTE(FieldSuccessfulAttempts, v))
}

// SuccessfulAttemptsLT applies the LT predicate on the "successful_attempts" field.
func SuccessfulAttemptsLT(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLT(FieldSuccessfulAttempts, v))
}

// SuccessfulAttemptsLTE applies the LTE predicate on the "successful_attempts" field.
func SuccessfulAttemptsLTE(v int) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLTE(FieldSuccessfulAttempts, v))
}

// DecayScoreEQ applies the EQ predicate on the "decay_score" field.
func DecayScoreEQ(v float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldDecayScore, v))
}

// DecayScoreNEQ applies the NEQ predicate on the "decay_score" field.
func DecayScoreNEQ(v float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNEQ(FieldDecayScore, v))
}

// DecayScoreIn applies the In predicate on the "decay_score" field.
func DecayScoreIn(vs ...float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldIn(FieldDecayScore, vs...))
}

// DecayScoreNotIn applies the NotIn predicate on the "decay_score" field.
func DecayScoreNotIn(vs ...float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNotIn(FieldDecayScore, vs...))
}

// DecayScoreGT applies the GT predicate on the "decay_score" field.
func DecayScoreGT(v float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGT(FieldDecayScore, v))
}

// DecayScoreGTE applies the GTE predicate on the "decay_score" field.
func DecayScoreGTE(v float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGTE(FieldDecayScore, v))
}

// DecayScoreLT applies the LT predicate on the "decay_score" field.
func DecayScoreLT(v float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLT(FieldDecayScore, v))
}

// DecayScoreLTE applies the LTE predicate on the "decay_score" field.
func DecayScoreLTE(v float64) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLTE(FieldDecayScore, v))
}

// MasteredEQ applies the EQ predicate on the "mastered" field.
func MasteredEQ(v bool) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldMastered, v))
}

// MasteredNEQ applies the NEQ predicate on the "mastered" field.
func MasteredNEQ(v bool) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNEQ(FieldMastered, v))
}

// LastSuccessAtEQ applies the EQ predicate on the "last_success_at" field.
func LastSuccessAtEQ(v time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtNEQ applies the NEQ predicate on the "last_success_at" field.
func LastSuccessAtNEQ(v time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtIn applies the In predicate on the "last_success_at" field.
func LastSuccessAtIn(vs ...time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtNotIn applies the NotIn predicate on the "last_success_at" field.
func LastSuccessAtNotIn(vs ...time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNotIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtGT applies the GT predicate on the "last_success_at" field.
func LastSuccessAtGT(v time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGT(FieldLastSuccessAt, v))
}

// LastSuccessAtGTE applies the GTE predicate on the "last_success_at" field.
func LastSuccessAtGTE(v time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldGTE(FieldLastSuccessAt, v))
}

// LastSuccessAtLT applies the LT predicate on the "last_success_at" field.
func LastSuccessAtLT(v time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLT(FieldLastSuccessAt, v))
}

// LastSuccessAtLTE applies the LTE predicate on the "last_success_at" field.
func LastSuccessAtLTE(v time.Time) predicate.TagMastery {
	return predicate.TagMastery(sql.FieldLTE(FieldLastSuccessAt, v))
}

// LastSuccessAtIsNil applies the IsNil predicate on the "last_success_at" field.
func LastSuccessAtIsNil() predicate.TagMastery {
	return predicate.TagMastery(sql.FieldIsNull(FieldLastSuccessAt))
}

// LastSuccessAtNotNil applies the NotNil predicate on the "last_success_at" field.
func LastSuccessAtNotNil() predicate.TagMastery {
	return predicate.TagMastery(sql.FieldNotNull(FieldLastSuccessAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TagMastery) predicate.TagMastery {
	return predicate.TagMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TagMastery) predicate.TagMastery {
	return predicate.TagMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TagMastery) predicate.TagMastery {
	return predicate.TagMastery(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package learnerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ankur/codedrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldID, id))
}

// SingletonID applies equality check predicate on the "singleton_id" field. It's identical to SingletonIDEQ.
func SingletonID(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldSingletonID, v))
}

// SessionsCompleted applies equality check predicate on the "sessions_completed" field. It's identical to SessionsCompletedEQ.
func SessionsCompleted(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldSessionsCompleted, v))
}

// LastAccuracy applies equality check predicate on the "last_accuracy" field. It's identical to LastAccuracyEQ.
func LastAccuracy(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLastAccuracy, v))
}

// LastEfficiency applies equality check predicate on the "last_efficiency" field. It's identical to LastEfficiencyEQ.
func LastEfficiency(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLastEfficiency, v))
}

// TagCount applies equality check predicate on the "tag_count" field. It's identical to TagCountEQ.
func TagCount(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldTagCount, v))
}

// PerformanceLevel applies equality check predicate on the "performance_level" field. It's identical to PerformanceLevelEQ.
func PerformanceLevel(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPerformanceLevel, v))
}

// LastProgressDate applies equality check predicate on the "last_progress_date" field. It's identical to LastProgressDateEQ.
func LastProgressDate(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLastProgressDate, v))
}

// SingletonIDEQ applies the EQ predicate on the "singleton_id" field.
func SingletonIDEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldSingletonID, v))
}

// SingletonIDNEQ applies the NEQ predicate on the "singleton_id" field.
func SingletonIDNEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldSingletonID, v))
}

// SingletonIDIn applies the In predicate on the "singleton_id" field.
func SingletonIDIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldSingletonID, vs...))
}

// SingletonIDNotIn applies the NotIn predicate on the "singleton_id" field.
func SingletonIDNotIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldSingletonID, vs...))
}

// SingletonIDGT applies the GT predicate on the "singleton_id" field.
func SingletonIDGT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldSingletonID, v))
}

// SingletonIDGTE applies the GTE predicate on the "singleton_id" field.
func SingletonIDGTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldSingletonID, v))
}

// SingletonIDLT applies the LT predicate on the "singleton_id" field.
func SingletonIDLT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldSingletonID, v))
}

// SingletonIDLTE applies the LTE predicate on the "singleton_id" field.
func SingletonIDLTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldSingletonID, v))
}

// SessionsCompletedEQ applies the EQ predicate on the "sessions_completed" field.
func SessionsCompletedEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldSessionsCompleted, v))
}

// SessionsCompletedNEQ applies the NEQ predicate on the "sessions_completed" field.
func SessionsCompletedNEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldSessionsCompleted, v))
}

// SessionsCompletedIn applies the In predicate on the "sessions_completed" field.
func SessionsCompletedIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldSessionsCompleted, vs...))
}

// SessionsCompletedNotIn applies the NotIn predicate on the "sessions_completed" field.
func SessionsCompletedNotIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldSessionsCompleted, vs...))
}

// SessionsCompletedGT applies the GT predicate on the "sessions_completed" field.
func SessionsCompletedGT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldSessionsCompleted, v))
}

// SessionsCompletedGTE applies the GTE predicate on the "sessions_completed" field.
func SessionsCompletedGTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldSessionsCompleted, v))
}

// SessionsCompletedLT applies the LT predicate on the "sessions_completed" field.
func SessionsCompletedLT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldSessionsCompleted, v))
}

// SessionsCompletedLTE applies the LTE predicate on the "sessions_completed" field.
func SessionsCompletedLTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldSessionsCompleted, v))
}

// LastAccuracyEQ applies the EQ predicate on the "last_accuracy" field.
func LastAccuracyEQ(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLastAccuracy, v))
}

// LastAccuracyNEQ applies the NEQ predicate on the "last_accuracy" field.
func LastAccuracyNEQ(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldLastAccuracy, v))
}

// LastAccuracyIn applies the In predicate on the "last_accuracy" field.
func LastAccuracyIn(vs ...float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldLastAccuracy, vs...))
}

// LastAccuracyNotIn applies the NotIn predicate on the "last_accuracy" field.
func LastAccuracyNotIn(vs ...float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldLastAccuracy, vs...))
}

// LastAccuracyGT applies the GT predicate on the "last_accuracy" field.
func LastAccuracyGT(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldLastAccuracy, v))
}

// LastAccuracyGTE applies the GTE predicate on the "last_accuracy" field.
func LastAccuracyGTE(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldLastAccuracy, v))
}

// LastAccuracyLT applies the LT predicate on the "last_accuracy" field.
func LastAccuracyLT(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldLastAccuracy, v))
}

// LastAccuracyLTE applies the LTE predicate on the "last_accuracy" field.
func LastAccuracyLTE(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldLastAccuracy, v))
}

// LastEfficiencyEQ applies the EQ predicate on the "last_efficiency" field.
func LastEfficiencyEQ(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLastEfficiency, v))
}

// LastEfficiencyNEQ applies the NEQ predicate on the "last_efficiency" field.
func LastEfficiencyNEQ(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldLastEfficiency, v))
}

// LastEfficiencyIn applies the In predicate on the "last_efficiency" field.
func LastEfficiencyIn(vs ...float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldLastEfficiency, vs...))
}

// LastEfficiencyNotIn applies the NotIn predicate on the "last_efficiency" field.
func LastEfficiencyNotIn(vs ...float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldLastEfficiency, vs...))
}

// LastEfficiencyGT applies the GT predicate on the "last_efficiency" field.
func LastEfficiencyGT(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldLastEfficiency, v))
}

// LastEfficiencyGTE applies the GTE predicate on the "last_efficiency" field.
func LastEfficiencyGTE(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldLastEfficiency, v))
}

// LastEfficiencyLT applies the LT predicate on the "last_efficiency" field.
func LastEfficiencyLT(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldLastEfficiency, v))
}

// LastEfficiencyLTE applies the LTE predicate on the "last_efficiency" field.
func LastEfficiencyLTE(v float64) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldLastEfficiency, v))
}

// FocusTagsIsNil applies the IsNil predicate on the "focus_tags" field.
func FocusTagsIsNil() predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIsNull(FieldFocusTags))
}

// FocusTagsNotNil applies the NotNil predicate on the "focus_tags" field.
func FocusTagsNotNil() predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotNull(FieldFocusTags))
}

// TagCountEQ applies the EQ predicate on the "tag_count" field.
func TagCountEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldTagCount, v))
}

// TagCountNEQ applies the NEQ predicate on the "tag_count" field.
func TagCountNEQ(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldTagCount, v))
}

// TagCountIn applies the In predicate on the "tag_count" field.
func TagCountIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldTagCount, vs...))
}

// TagCountNotIn applies the NotIn predicate on the "tag_count" field.
func TagCountNotIn(vs ...int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldTagCount, vs...))
}

// TagCountGT applies the GT predicate on the "tag_count" field.
func TagCountGT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldTagCount, v))
}

// TagCountGTE applies the GTE predicate on the "tag_count" field.
func TagCountGTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldTagCount, v))
}

// TagCountLT applies the LT predicate on the "tag_count" field.
func TagCountLT(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldTagCount, v))
}

// TagCountLTE applies the LTE predicate on the "tag_count" field.
func TagCountLTE(v int) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldTagCount, v))
}

// PerformanceLevelEQ applies the EQ predicate on the "performance_level" field.
func PerformanceLevelEQ(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldPerformanceLevel, v))
}

// PerformanceLevelNEQ applies the NEQ predicate on the "performance_level" field.
func PerformanceLevelNEQ(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldPerformanceLevel, v))
}

// PerformanceLevelIn applies the In predicate on the "performance_level" field.
func PerformanceLevelIn(vs ...string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldPerformanceLevel, vs...))
}

// PerformanceLevelNotIn applies the NotIn predicate on the "performance_level" field.
func PerformanceLevelNotIn(vs ...string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldPerformanceLevel, vs...))
}

// PerformanceLevelGT applies the GT predicate on the "performance_level" field.
func PerformanceLevelGT(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldPerformanceLevel, v))
}

// PerformanceLevelGTE applies the GTE predicate on the "performance_level" field.
func PerformanceLevelGTE(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldPerformanceLevel, v))
}

// PerformanceLevelLT applies the LT predicate on the "performance_level" field.
func PerformanceLevelLT(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldPerformanceLevel, v))
}

// PerformanceLevelLTE applies the LTE predicate on the "performance_level" field.
func PerformanceLevelLTE(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldPerformanceLevel, v))
}

// PerformanceLevelContains applies the Contains predicate on the "performance_level" field.
func PerformanceLevelContains(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldContains(FieldPerformanceLevel, v))
}

// PerformanceLevelHasPrefix applies the HasPrefix predicate on the "performance_level" field.
func PerformanceLevelHasPrefix(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldHasPrefix(FieldPerformanceLevel, v))
}

// PerformanceLevelHasSuffix applies the HasSuffix predicate on the "performance_level" field.
func PerformanceLevelHasSuffix(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldHasSuffix(FieldPerformanceLevel, v))
}

// PerformanceLevelEqualFold applies the EqualFold predicate on the "performance_level" field.
func PerformanceLevelEqualFold(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEqualFold(FieldPerformanceLevel, v))
}

// PerformanceLevelContainsFold applies the ContainsFold predicate on the "performance_level" field.
func PerformanceLevelContainsFold(v string) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldContainsFold(FieldPerformanceLevel, v))
}

// DifficultyTimeStatsIsNil applies the IsNil predicate on the "difficulty_time_stats" field.
func DifficultyTimeStatsIsNil() predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIsNull(FieldDifficultyTimeStats))
}

// DifficultyTimeStatsNotNil applies the NotNil predicate on the "difficulty_time_stats" field.
func DifficultyTimeStatsNotNil() predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotNull(FieldDifficultyTimeStats))
}

// LastProgressDateEQ applies the EQ predicate on the "last_progress_date" field.
func LastProgressDateEQ(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldEQ(FieldLastProgressDate, v))
}

// LastProgressDateNEQ applies the NEQ predicate on the "last_progress_date" field.
func LastProgressDateNEQ(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNEQ(FieldLastProgressDate, v))
}

// LastProgressDateIn applies the In predicate on the "last_progress_date" field.
func LastProgressDateIn(vs ...time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIn(FieldLastProgressDate, vs...))
}

// LastProgressDateNotIn applies the NotIn predicate on the "last_progress_date" field.
func LastProgressDateNotIn(vs ...time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotIn(FieldLastProgressDate, vs...))
}

// LastProgressDateGT applies the GT predicate on the "last_progress_date" field.
func LastProgressDateGT(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGT(FieldLastProgressDate, v))
}

// LastProgressDateGTE applies the GTE predicate on the "last_progress_date" field.
func LastProgressDateGTE(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldGTE(FieldLastProgressDate, v))
}

// LastProgressDateLT applies the LT predicate on the "last_progress_date" field.
func LastProgressDateLT(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLT(FieldLastProgressDate, v))
}

// LastProgressDateLTE applies the LTE predicate on the "last_progress_date" field.
func LastProgressDateLTE(v time.Time) predicate.LearnerState {
	return predicate.LearnerState(sql.FieldLTE(FieldLastProgressDate, v))
}

// LastProgressDateIsNil applies the IsNil predicate on the "last_progress_date" field.
func LastProgressDateIsNil() predicate.LearnerState {
	return predicate.LearnerState(sql.FieldIsNull(FieldLastProgressDate))
}

// LastProgressDateNotNil applies the NotNil predicate on the "last_progress_date" field.
func LastProgressDateNotNil() predicate.LearnerState {
	return predicate.LearnerState(sql.FieldNotNull(FieldLastProgressDate))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerState) predicate.LearnerState {
	return predicate.LearnerState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerState) predicate.LearnerState {
	return predicate.LearnerState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerState) predicate.LearnerState {
	return predicate.LearnerState(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ankur/codedrill/ent/attempt"
	"github.com/ankur/codedrill/ent/decisionevent"
	"github.com/ankur/codedrill/ent/learnerstate"
	"github.com/ankur/codedrill/ent/practicesession"
	"github.com/ankur/codedrill/ent/schema"
	"github.com/ankur/codedrill/ent/sessionevent"
	"github.com/ankur/codedrill/ent/tagmastery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescProblemID is the schema descriptor for problem_id field.
	attemptDescProblemID := attemptFields[0].Descriptor()
	// attempt.ProblemIDValidator is a validator for the "problem_id" field. It is called by the builders before save.
	attempt.ProblemIDValidator = attemptDescProblemID.Validators[0].(func(string) error)
	// attemptDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	attemptDescTimeSpentMs := attemptFields[3].Descriptor()
	// attempt.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	attempt.DefaultTimeSpentMs = attemptDescTimeSpentMs.Default.(int)
	// attemptDescDifficulty is the schema descriptor for difficulty field.
	attemptDescDifficulty := attemptFields[4].Descriptor()
	// attempt.DefaultDifficulty holds the default value on creation for the difficulty field.
	attempt.DefaultDifficulty = attemptDescDifficulty.Default.(string)
	// attemptDescSessionID is the schema descriptor for session_id field.
	attemptDescSessionID := attemptFields[5].Descriptor()
	// attempt.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attempt.SessionIDValidator = attemptDescSessionID.Validators[0].(func(string) error)
	// attemptDescTimestamp is the schema descriptor for timestamp field.
	attemptDescTimestamp := attemptFields[6].Descriptor()
	// attempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	attempt.DefaultTimestamp = attemptDescTimestamp.Default.(func() time.Time)
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	learnerstateFields := schema.LearnerState{}.Fields()
	_ = learnerstateFields
	// learnerstateDescSessionsCompleted is the schema descriptor for sessions_completed field.
	learnerstateDescSessionsCompleted := learnerstateFields[1].Descriptor()
	// learnerstate.DefaultSessionsCompleted holds the default value on creation for the sessions_completed field.
	learnerstate.DefaultSessionsCompleted = learnerstateDescSessionsCompleted.Default.(int)
	// learnerstateDescLastAccuracy is the schema descriptor for last_accuracy field.
	learnerstateDescLastAccuracy := learnerstateFields[2].Descriptor()
	// learnerstate.DefaultLastAccuracy holds the default value on creation for the last_accuracy field.
	learnerstate.DefaultLastAccuracy = learnerstateDescLastAccuracy.Default.(float64)
	// learnerstateDescLastEfficiency is the schema descriptor for last_efficiency field.
	learnerstateDescLastEfficiency := learnerstateFields[3].Descriptor()
	// learnerstate.DefaultLastEfficiency holds the default value on creation for the last_efficiency field.
	learnerstate.DefaultLastEfficiency = learnerstateDescLastEfficiency.Default.(float64)
	// learnerstateDescTagCount is the schema descriptor for tag_count field.
	learnerstateDescTagCount := learnerstateFields[5].Descriptor()
	// learnerstate.DefaultTagCount holds the default value on creation for the tag_count field.
	learnerstate.DefaultTagCount = learnerstateDescTagCount.Default.(int)
	// learnerstateDescPerformanceLevel is the schema descriptor for performance_level field.
	learnerstateDescPerformanceLevel := learnerstateFields[6].Descriptor()
	// learnerstate.DefaultPerformanceLevel holds the default value on creation for the performance_level field.
	learnerstate.DefaultPerformanceLevel = learnerstateDescPerformanceLevel.Default.(string)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescSessionID is the schema descriptor for session_id field.
	practicesessionDescSessionID := practicesessionFields[0].Descriptor()
	// practicesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practicesession.SessionIDValidator = practicesessionDescSessionID.Validators[0].(func(string) error)
	// practicesessionDescStatus is the schema descriptor for status field.
	practicesessionDescStatus := practicesessionFields[1].Descriptor()
	// practicesession.DefaultStatus holds the default value on creation for the status field.
	practicesession.DefaultStatus = practicesessionDescStatus.Default.(string)
	// practicesessionDescSessionType is the schema descriptor for session_type field.
	practicesessionDescSessionType := practicesessionFields[2].Descriptor()
	// practicesession.DefaultSessionType holds the default value on creation for the session_type field.
	practicesession.DefaultSessionType = practicesessionDescSessionType.Default.(string)
	// practicesessionDescOrigin is the schema descriptor for origin field.
	practicesessionDescOrigin := practicesessionFields[3].Descriptor()
	// practicesession.DefaultOrigin holds the default value on creation for the origin field.
	practicesession.DefaultOrigin = practicesessionDescOrigin.Default.(string)
	// practicesessionDescCurrentIndex is the schema descriptor for current_index field.
	practicesessionDescCurrentIndex := practicesessionFields[5].Descriptor()
	// practicesession.DefaultCurrentIndex holds the default value on creation for the current_index field.
	practicesession.DefaultCurrentIndex = practicesessionDescCurrentIndex.Default.(int)
	// practicesessionDescLastActivity is the schema descriptor for last_activity field.
	practicesessionDescLastActivity := practicesessionFields[6].Descriptor()
	// practicesession.DefaultLastActivity holds the default value on creation for the last_activity field.
	practicesession.DefaultLastActivity = practicesessionDescLastActivity.Default.(func() time.Time)
	// practicesessionDescAccuracy is the schema descriptor for accuracy field.
	practicesessionDescAccuracy := practicesessionFields[7].Descriptor()
	// practicesession.DefaultAccuracy holds the default value on creation for the accuracy field.
	practicesession.DefaultAccuracy = practicesessionDescAccuracy.Default.(float64)
	// practicesessionDescDurationSecs is the schema descriptor for duration_secs field.
	practicesessionDescDurationSecs := practicesessionFields[8].Descriptor()
	// practicesession.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	practicesession.DefaultDurationSecs = practicesessionDescDurationSecs.Default.(int)
	// practicesessionDescCreatedAt is the schema descriptor for created_at field.
	practicesessionDescCreatedAt := practicesessionFields[9].Descriptor()
	// practicesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicesession.DefaultCreatedAt = practicesessionDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescSessionType is the schema descriptor for session_type field.
	sessioneventDescSessionType := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultSessionType holds the default value on creation for the session_type field.
	sessionevent.DefaultSessionType = sessioneventDescSessionType.Default.(string)
	// sessioneventDescAccuracy is the schema descriptor for accuracy field.
	sessioneventDescAccuracy := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	sessionevent.DefaultAccuracy = sessioneventDescAccuracy.Default.(float64)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	tagmasteryFields := schema.TagMastery{}.Fields()
	_ = tagmasteryFields
	// tagmasteryDescTopic is the schema descriptor for topic field.
	tagmasteryDescTopic := tagmasteryFields[0].Descriptor()
	// tagmastery.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	tagmastery.TopicValidator = tagmasteryDescTopic.Validators[0].(func(string) error)
	// tagmasteryDescTotalAttempts is the schema descriptor for total_attempts field.
	tagmasteryDescTotalAttempts := tagmasteryFields[1].Descriptor()
	// tagmastery.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	tagmastery.DefaultTotalAttempts = tagmasteryDescTotalAttempts.Default.(int)
	// tagmastery.TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	tagmastery.TotalAttemptsValidator = tagmasteryDescTotalAttempts.Validators[0].(func(int) error)
	// tagmasteryDescSuccessfulAttempts is the schema descriptor for successful_attempts field.
	tagmasteryDescSuccessfulAttempts := tagmasteryFields[2].Descriptor()
	// tagmastery.DefaultSuccessfulAttempts holds the default value on creation for the successful_attempts field.
	tagmastery.DefaultSuccessfulAttempts = tagmasteryDescSuccessfulAttempts.Default.(int)
	// tagmastery.SuccessfulAttemptsValidator is a validator for the "successful_attempts" field. It is called by the builders before save.
	tagmastery.SuccessfulAttemptsValidator = tagmasteryDescSuccessfulAttempts.Validators[0].(func(int) error)
	// tagmasteryDescDecayScore is the schema descriptor for decay_score field.
	tagmasteryDescDecayScore := tagmasteryFields[3].Descriptor()
	// tagmastery.DefaultDecayScore holds the default value on creation for the decay_score field.
	tagmastery.DefaultDecayScore = tagmasteryDescDecayScore.Default.(float64)
	// tagmasteryDescMastered is the schema descriptor for mastered field.
	tagmasteryDescMastered := tagmasteryFields[4].Descriptor()
	// tagmastery.DefaultMastered holds the default value on creation for the mastered field.
	tagmastery.DefaultMastered = tagmasteryDescMastered.Default.(bool)
}

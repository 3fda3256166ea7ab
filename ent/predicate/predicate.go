// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// DecisionEvent is the predicate function for decisionevent builders.
type DecisionEvent func(*sql.Selector)

// LearnerState is the predicate function for learnerstate builders.
type LearnerState func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// TagMastery is the predicate function for tagmastery builders.
type TagMastery func(*sql.Selector)

// UserSettings is the predicate function for usersettings builders.
type UserSettings func(*sql.Selector)

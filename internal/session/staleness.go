package session

import (
	"time"

	"github.com/ankur/codedrill/internal/store"
)

// Classification is the staleness label for a non-completed session.
type Classification string

const (
	ClassActive                Classification = "active"
	ClassDraftExpired          Classification = "draft_expired"
	ClassAbandonedAtStart      Classification = "abandoned_at_start"
	ClassAutoCompleteCandidate Classification = "auto_complete_candidate"
	ClassStalledWithProgress   Classification = "stalled_with_progress"
	ClassTrackingStale         Classification = "tracking_stale"
	ClassTrackingOnlyUser      Classification = "tracking_only_user"
	ClassInterviewStale        Classification = "interview_stale"
	ClassInterviewAbandoned    Classification = "interview_abandoned"
	ClassUnclear               Classification = "unclear"
)

// Action is the recommended remediation for a classification. The
// classifier only recommends; Sweep applies.
type Action string

const (
	ActionNone         Action = "none"
	ActionExpire       Action = "expire"
	ActionAutoComplete Action = "auto_complete"
	ActionFlagForUser  Action = "flag_for_user"
	ActionRegenerate   Action = "regenerate"
)

// RecommendedAction maps each classification to its single remediation.
func RecommendedAction(c Classification) Action {
	switch c {
	case ClassDraftExpired:
		return ActionExpire
	case ClassAbandonedAtStart:
		return ActionRegenerate
	case ClassAutoCompleteCandidate:
		return ActionAutoComplete
	case ClassStalledWithProgress:
		return ActionFlagForUser
	case ClassTrackingStale:
		return ActionFlagForUser
	case ClassTrackingOnlyUser:
		return ActionFlagForUser
	case ClassInterviewStale:
		return ActionExpire
	case ClassInterviewAbandoned:
		return ActionExpire
	default:
		return ActionNone
	}
}

// StalenessConfig carries the classifier thresholds.
type StalenessConfig struct {
	StandardStaleHours  float64
	InterviewStaleHours float64
	DraftExpireHours    float64
}

// DefaultStalenessConfig mirrors the config package defaults.
func DefaultStalenessConfig() StalenessConfig {
	return StalenessConfig{
		StandardStaleHours:  6,
		InterviewStaleHours: 3,
		DraftExpireHours:    24,
	}
}

// autoCompleteFraction is the attempted-problem fraction above which a
// stale session is close enough to finished to complete on the
// learner's behalf.
const autoCompleteFraction = 0.8

// Classify labels one non-completed session. Multi-factor: hours since
// last activity, attempt count and the fraction of scheduled problems
// attempted, with interview types held to the stricter threshold.
// Completed and expired sessions are out of scope and come back unclear.
func Classify(s *store.SessionData, attemptCount int, attemptedFraction float64, now time.Time, cfg StalenessConfig) Classification {
	if s.Status == store.StatusCompleted || s.Status == store.StatusExpired {
		return ClassUnclear
	}

	hours := now.Sub(s.LastActivity).Hours()
	typ, _ := ParseType(s.SessionType)

	threshold := cfg.StandardStaleHours
	if typ.IsInterview() {
		threshold = cfg.InterviewStaleHours
	}

	if hours < threshold {
		return ClassActive
	}

	// Tracking sessions have no generated problem schedule to measure
	// progress against.
	if s.Origin == store.OriginTracking {
		if len(s.Problems) == 0 {
			return ClassTrackingOnlyUser
		}
		return ClassTrackingStale
	}

	if s.Status == store.StatusDraft {
		if hours >= cfg.DraftExpireHours {
			return ClassDraftExpired
		}
		return ClassUnclear
	}

	// In-progress past the staleness threshold.
	if attemptCount == 0 {
		if typ.IsInterview() {
			return ClassInterviewAbandoned
		}
		return ClassAbandonedAtStart
	}

	if typ.IsInterview() {
		return ClassInterviewStale
	}

	if attemptedFraction >= autoCompleteFraction {
		return ClassAutoCompleteCandidate
	}
	if attemptedFraction > 0 {
		return ClassStalledWithProgress
	}

	return ClassUnclear
}

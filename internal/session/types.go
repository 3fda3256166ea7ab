package session

import (
	"github.com/ankur/codedrill/internal/store"
)

// Type is the session type. Distinct interview variants are never
// compatible with each other or with standard practice.
type Type string

const (
	TypeStandard      Type = store.TypeStandard
	TypeInterviewLike Type = store.TypeInterviewLike
	TypeFullInterview Type = store.TypeFullInterview
)

// ParseType maps a stored type name to a Type.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeStandard, TypeInterviewLike, TypeFullInterview:
		return Type(s), true
	}
	return TypeStandard, false
}

// IsInterview reports whether t is one of the interview variants.
func (t Type) IsInterview() bool {
	return t == TypeInterviewLike || t == TypeFullInterview
}

// CompatibleTypes returns the session types a resume call for t may hand
// back. Standard sessions are interchangeable regardless of origin;
// interview variants only ever match themselves, since resuming a
// full_interview as interview_like would silently hand the learner the
// wrong session.
func CompatibleTypes(t Type) []string {
	switch t {
	case TypeInterviewLike:
		return []string{store.TypeInterviewLike}
	case TypeFullInterview:
		return []string{store.TypeFullInterview}
	default:
		return []string{store.TypeStandard}
	}
}

// Origin distinguishes generated sessions from externally tracked ones.
type Origin string

const (
	OriginGenerator Origin = store.OriginGenerator
	OriginTracking  Origin = store.OriginTracking
)

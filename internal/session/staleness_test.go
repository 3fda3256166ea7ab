package session

import (
	"testing"
	"time"

	"github.com/ankur/codedrill/internal/store"
)

func staleSession(status, typ, origin string, problems int, hoursAgo float64) *store.SessionData {
	s := &store.SessionData{
		SessionID:    "s1",
		Status:       status,
		SessionType:  typ,
		Origin:       origin,
		LastActivity: time.Now().Add(-time.Duration(hoursAgo * float64(time.Hour))),
	}
	for i := 0; i < problems; i++ {
		s.Problems = append(s.Problems, store.ProblemSlot{ProblemID: "p", Topic: "arrays"})
	}
	return s
}

func TestClassify_Table(t *testing.T) {
	cfg := DefaultStalenessConfig()
	now := time.Now()

	tests := []struct {
		name     string
		session  *store.SessionData
		attempts int
		fraction float64
		want     Classification
	}{
		{"recent activity",
			staleSession(store.StatusInProgress, store.TypeStandard, store.OriginGenerator, 4, 1),
			2, 0.5, ClassActive},
		{"stale draft under expiry",
			staleSession(store.StatusDraft, store.TypeStandard, store.OriginGenerator, 4, 8),
			0, 0, ClassUnclear},
		{"draft past expiry",
			staleSession(store.StatusDraft, store.TypeStandard, store.OriginGenerator, 4, 30),
			0, 0, ClassDraftExpired},
		{"abandoned at start",
			staleSession(store.StatusInProgress, store.TypeStandard, store.OriginGenerator, 4, 8),
			0, 0, ClassAbandonedAtStart},
		{"nearly finished",
			staleSession(store.StatusInProgress, store.TypeStandard, store.OriginGenerator, 5, 8),
			4, 0.8, ClassAutoCompleteCandidate},
		{"stalled mid-session",
			staleSession(store.StatusInProgress, store.TypeStandard, store.OriginGenerator, 4, 8),
			1, 0.25, ClassStalledWithProgress},
		{"interview stale with progress",
			staleSession(store.StatusInProgress, store.TypeInterviewLike, store.OriginGenerator, 4, 4),
			2, 0.5, ClassInterviewStale},
		{"interview abandoned",
			staleSession(store.StatusInProgress, store.TypeFullInterview, store.OriginGenerator, 4, 4),
			0, 0, ClassInterviewAbandoned},
		{"interview under its stricter threshold",
			staleSession(store.StatusInProgress, store.TypeInterviewLike, store.OriginGenerator, 4, 2),
			0, 0, ClassActive},
		{"tracking with schedule",
			staleSession(store.StatusInProgress, store.TypeStandard, store.OriginTracking, 3, 8),
			1, 0.3, ClassTrackingStale},
		{"tracking without schedule",
			staleSession(store.StatusInProgress, store.TypeStandard, store.OriginTracking, 0, 8),
			1, 0, ClassTrackingOnlyUser},
		{"completed out of scope",
			staleSession(store.StatusCompleted, store.TypeStandard, store.OriginGenerator, 4, 100),
			4, 1.0, ClassUnclear},
	}

	for _, tt := range tests {
		got := Classify(tt.session, tt.attempts, tt.fraction, now, cfg)
		if got != tt.want {
			t.Errorf("%s: Classify = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRecommendedAction_Mapping(t *testing.T) {
	tests := []struct {
		class Classification
		want  Action
	}{
		{ClassDraftExpired, ActionExpire},
		{ClassAbandonedAtStart, ActionRegenerate},
		{ClassAutoCompleteCandidate, ActionAutoComplete},
		{ClassStalledWithProgress, ActionFlagForUser},
		{ClassTrackingStale, ActionFlagForUser},
		{ClassTrackingOnlyUser, ActionFlagForUser},
		{ClassInterviewStale, ActionExpire},
		{ClassInterviewAbandoned, ActionExpire},
		{ClassActive, ActionNone},
		{ClassUnclear, ActionNone},
	}
	for _, tt := range tests {
		if got := RecommendedAction(tt.class); got != tt.want {
			t.Errorf("RecommendedAction(%q) = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestCompatibleTypes_Matrix(t *testing.T) {
	tests := []struct {
		typ  Type
		want []string
	}{
		{TypeStandard, []string{store.TypeStandard}},
		{TypeInterviewLike, []string{store.TypeInterviewLike}},
		{TypeFullInterview, []string{store.TypeFullInterview}},
	}
	for _, tt := range tests {
		got := CompatibleTypes(tt.typ)
		if len(got) != len(tt.want) {
			t.Fatalf("CompatibleTypes(%q) = %v, want %v", tt.typ, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("CompatibleTypes(%q)[%d] = %q, want %q", tt.typ, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseType(t *testing.T) {
	if _, ok := ParseType("full_interview"); !ok {
		t.Error("full_interview should parse")
	}
	if _, ok := ParseType("speedrun"); ok {
		t.Error("unknown type should not parse")
	}
}

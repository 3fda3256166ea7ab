package focus

import (
	"github.com/ankur/codedrill/internal/topics"
)

// Graduation blending weights. When a preferred topic graduates to
// mastered it leaves the session-scoped preference list, and system
// suggestions are blended in at roughly a 70/30 user/system split.
const (
	blendUserWeight   = 0.7
	blendSystemWeight = 0.3

	// maxBlendAdditions caps system-suggested replacements so the
	// preference list cannot grow without bound.
	maxBlendAdditions = 3
)

// blendResult reports what graduation blending did, for the reasoning
// trail.
type blendResult struct {
	retained  []string
	graduated []string
	added     []string
}

// blendGraduated removes mastered topics from a copy of the user's
// preference list and blends in system-suggested replacements drawn from
// the ranked candidates. The persisted settings are never touched; only
// the session-scoped copy mutates.
func blendGraduated(prefs []string, mastered map[string]bool, candidates []topics.Candidate) blendResult {
	var res blendResult
	seen := make(map[string]bool, len(prefs))

	for _, p := range prefs {
		if seen[p] {
			continue
		}
		seen[p] = true
		if mastered[p] {
			res.graduated = append(res.graduated, p)
			continue
		}
		res.retained = append(res.retained, p)
	}

	if len(res.graduated) == 0 {
		return res
	}

	// System share of the blended list, capped.
	want := int(blendSystemWeight*float64(len(res.retained)+len(res.graduated)) + 0.5)
	if want < 1 {
		want = 1
	}
	if want > len(res.graduated) {
		want = len(res.graduated)
	}
	if want > maxBlendAdditions {
		want = maxBlendAdditions
	}

	for _, cand := range candidates {
		if len(res.added) >= want {
			break
		}
		if seen[cand.Topic] || mastered[cand.Topic] {
			continue
		}
		seen[cand.Topic] = true
		res.added = append(res.added, cand.Topic)
	}

	return res
}

// sessionPrefs is the blended, session-scoped preference list: retained
// user choices first, system additions after.
func (r blendResult) sessionPrefs() []string {
	out := make([]string, 0, len(r.retained)+len(r.added))
	out = append(out, r.retained...)
	out = append(out, r.added...)
	return out
}

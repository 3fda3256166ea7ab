package topics

import "sort"

// Candidate is one ranked focus candidate.
type Candidate struct {
	Topic string
	Score float64
}

// RankInput carries the learner context a ranking needs.
type RankInput struct {
	// Focus is the current focus tag list, ordered.
	Focus []string
	// Mastered marks topics the mastery engine considers mastered.
	Mastered map[string]bool
	// Decay maps topic to its decay score (1.0 = fresh).
	Decay map[string]float64
	// Level is the learner's performance level: struggling, building,
	// proficient or advanced.
	Level string
}

// Ranker produces the system-ranked candidate list the focus engine
// consumes as opaque input.
type Ranker interface {
	// Rank returns every catalog topic ordered by descending relevance.
	Rank(in RankInput) []Candidate

	// RankTier ranks only the topics of one tier, ignoring level. Serves
	// the explicit tier override, which bypasses the level-derived pool.
	RankTier(tier Tier, mastered map[string]bool) []Candidate
}

// DefaultRanker ranks catalog topics by tier fit, relatedness to the
// current focus, mastery status and staleness. Deterministic: equal
// scores tie-break alphabetically.
type DefaultRanker struct{}

// NewRanker returns the default tag-relationship ranker.
func NewRanker() *DefaultRanker {
	return &DefaultRanker{}
}

func (r *DefaultRanker) Rank(in RankInput) []Candidate {
	target := targetTier(in.Level)

	focusSet := make(map[string]bool, len(in.Focus))
	relatedSet := make(map[string]bool)
	for _, f := range in.Focus {
		focusSet[f] = true
		for _, rel := range Related(f) {
			relatedSet[rel] = true
		}
	}

	out := make([]Candidate, 0, len(c.topics))
	for _, t := range All() {
		score := 1.0

		// Mastered topics sink: focus belongs on the frontier.
		if in.Mastered[t.ID] {
			score -= 0.8
		}

		switch tierDistance(t.Tier, target) {
		case 0:
			score += 0.5
		case 1:
			score += 0.25
		}

		if relatedSet[t.ID] {
			score += 0.3
		}
		if focusSet[t.ID] {
			score += 0.15
		}

		// Stale topics regain a little relevance.
		if d, ok := in.Decay[t.ID]; ok && d < 1.0 {
			score += 0.2 * (1.0 - d)
		}

		out = append(out, Candidate{Topic: t.ID, Score: score})
	}

	sortCandidates(out)
	return out
}

func (r *DefaultRanker) RankTier(tier Tier, mastered map[string]bool) []Candidate {
	out := make([]Candidate, 0)
	for _, t := range ByTier(tier) {
		score := 1.0
		if mastered[t.ID] {
			score -= 0.8
		}
		out = append(out, Candidate{Topic: t.ID, Score: score})
	}
	sortCandidates(out)
	return out
}

func sortCandidates(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Score != cs[j].Score {
			return cs[i].Score > cs[j].Score
		}
		return cs[i].Topic < cs[j].Topic
	})
}

// targetTier maps a performance level to the tier the learner should
// mostly draw from.
func targetTier(level string) Tier {
	switch level {
	case "proficient":
		return TierIntermediate
	case "advanced":
		return TierAdvanced
	default: // struggling, building, unknown
		return TierFundamental
	}
}

// tierDistance returns how many tiers apart a and b are.
func tierDistance(a, b Tier) int {
	d := tierIndex(a) - tierIndex(b)
	if d < 0 {
		return -d
	}
	return d
}

func tierIndex(t Tier) int {
	switch t {
	case TierIntermediate:
		return 1
	case TierAdvanced:
		return 2
	default:
		return 0
	}
}

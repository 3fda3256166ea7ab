package mastery

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// ThresholdRule is one rung of the mastery ladder. Zero-valued gates are
// inactive: a rule applies when success rate meets MinSuccessRate and
// every configured volume gate is met.
type ThresholdRule struct {
	Label             string  `yaml:"label"`
	MinSuccessRate    float64 `yaml:"min_success_rate"`
	MinAttempts       int     `yaml:"min_attempts"`
	MinFailedAttempts int     `yaml:"min_failed_attempts"`
}

// Ladder is an ordered rule list, evaluated first-match-wins.
type Ladder struct {
	Rules []ThresholdRule `yaml:"rules"`
}

// DefaultLadder returns the built-in ladder parsed from rules.yaml.
// Panics on a malformed embedded file; that is a build defect, not a
// runtime condition.
func DefaultLadder() Ladder {
	l, err := ParseLadder(rulesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded rules.yaml: %v", err))
	}
	return l
}

// ParseLadder parses a ladder definition and validates it.
func ParseLadder(data []byte) (Ladder, error) {
	var l Ladder
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Ladder{}, fmt.Errorf("parse ladder: %w", err)
	}
	if len(l.Rules) == 0 {
		return Ladder{}, fmt.Errorf("parse ladder: no rules defined")
	}
	for i, r := range l.Rules {
		if r.Label == "" {
			return Ladder{}, fmt.Errorf("parse ladder: rule %d has no label", i)
		}
		if r.MinSuccessRate <= 0 || r.MinSuccessRate > 1 {
			return Ladder{}, fmt.Errorf("parse ladder: rule %q: min_success_rate %v out of (0,1]", r.Label, r.MinSuccessRate)
		}
	}
	return l, nil
}

// Evaluate applies the ladder to aggregate counts. Returns whether the
// topic is mastered and the label of the matched rule. A topic with zero
// attempts is never mastered.
func (l Ladder) Evaluate(totalAttempts, successfulAttempts int) (bool, string) {
	if totalAttempts == 0 {
		return false, ""
	}

	rate := float64(successfulAttempts) / float64(totalAttempts)
	failed := totalAttempts - successfulAttempts

	for _, r := range l.Rules {
		if rate < r.MinSuccessRate {
			continue
		}
		if r.MinAttempts > 0 && totalAttempts < r.MinAttempts {
			continue
		}
		if r.MinFailedAttempts > 0 && failed < r.MinFailedAttempts {
			continue
		}
		return true, r.Label
	}
	return false, ""
}

package session

import (
	"context"

	"github.com/ankur/codedrill/internal/store"
)

// Finding is one classified session from a sweep.
type Finding struct {
	Session        store.SessionData
	Classification Classification
	Action         Action
	Applied        bool
}

// SweepResult summarizes one staleness sweep.
type SweepResult struct {
	Findings      []Finding
	Expired       int
	AutoCompleted int
	Flagged       int
}

// Sweep classifies every non-terminal session and applies the
// recommended remediation: expirations and auto-completions run here,
// flag-for-user and regenerate findings are surfaced for the caller. A
// failure on one session logs and does not abort the rest. With dryRun
// set nothing is applied.
func (m *Manager) Sweep(ctx context.Context, dryRun bool) (*SweepResult, error) {
	sessions, err := m.sessions.NonTerminal(ctx)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{}
	now := m.now()

	for i := range sessions {
		s := sessions[i]

		all, err := m.attempts.BySession(ctx, s.SessionID)
		if err != nil {
			m.log.Warn("sweep: load attempts failed, skipping session",
				"session_id", s.SessionID, "error", err)
			continue
		}

		class := Classify(&s, len(all), attemptedFraction(s.Problems, all), now, m.staleCfg)
		action := RecommendedAction(class)
		f := Finding{Session: s, Classification: class, Action: action}

		if !dryRun {
			switch action {
			case ActionExpire:
				if err := m.Expire(ctx, &s); err != nil {
					m.log.Warn("sweep: expire failed", "session_id", s.SessionID, "error", err)
					break
				}
				f.Applied = true
				res.Expired++

			case ActionAutoComplete:
				if err := m.complete(ctx, &s, all); err != nil {
					m.log.Warn("sweep: auto-complete failed", "session_id", s.SessionID, "error", err)
					break
				}
				f.Applied = true
				res.AutoCompleted++
			}
		}

		if action == ActionFlagForUser || action == ActionRegenerate {
			res.Flagged++
		}
		if class != ClassActive && class != ClassUnclear {
			res.Findings = append(res.Findings, f)
		}
	}

	return res, nil
}

// attemptedFraction is the share of scheduled problems with at least one
// attempt. Sessions without a schedule report zero.
func attemptedFraction(problems []store.ProblemSlot, all []store.AttemptData) float64 {
	if len(problems) == 0 {
		return 0
	}
	attempted := make(map[string]bool, len(all))
	for _, a := range all {
		attempted[a.ProblemID] = true
	}
	n := 0
	for _, p := range problems {
		if attempted[p.ProblemID] {
			n++
		}
	}
	return float64(n) / float64(len(problems))
}

package focus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ankur/codedrill/internal/store"
	"github.com/ankur/codedrill/internal/topics"
)

// OnboardingSessions is the completed-session count below which the
// onboarding gate applies.
const OnboardingSessions = 1

// Engine is the focus coordination decision engine. Algorithmic
// recommendation takes priority over user preference; onboarding rules
// take priority over both.
type Engine struct {
	ranker   topics.Ranker
	attempts store.AttemptRepo
	mastery  store.MasteryRepo
	state    store.StateRepo
	settings store.SettingsRepo
	events   store.EventRepo
	retryCfg store.RetryConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewEngine wires a decision engine. events may be nil; decision auditing
// is then skipped.
func NewEngine(
	ranker topics.Ranker,
	attempts store.AttemptRepo,
	masteryRepo store.MasteryRepo,
	state store.StateRepo,
	settings store.SettingsRepo,
	events store.EventRepo,
	log *slog.Logger,
) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		ranker:   ranker,
		attempts: attempts,
		mastery:  masteryRepo,
		state:    state,
		settings: settings,
		events:   events,
		retryCfg: store.DefaultRetryConfig(),
		log:      log,
		now:      time.Now,
	}
}

// Decide runs the layered pipeline and always produces a decision. Any
// error or panic inside the pipeline degrades to the fixed failsafe; a
// scheduling decision must never fail to the caller.
func (e *Engine) Decide(
	ctx context.Context,
	state *store.LearnerStateData,
	snapshot map[string]store.MasteryData,
	prefs *store.SettingsData,
) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("decision pipeline panicked, using failsafe", "panic", r)
			d = Failsafe()
		}
	}()

	if state == nil {
		state = &store.LearnerStateData{TagCount: 1}
	}
	if prefs == nil {
		prefs = &store.SettingsData{}
	}

	mastered := make(map[string]bool, len(snapshot))
	decay := make(map[string]float64, len(snapshot))
	for topic, m := range snapshot {
		mastered[topic] = m.Mastered
		decay[topic] = m.DecayScore
	}

	level := PerformanceLevel(state.LastAccuracy)
	candidates := e.ranker.Rank(topics.RankInput{
		Focus:    state.FocusTags,
		Mastered: mastered,
		Decay:    decay,
		Level:    level,
	})
	if len(candidates) == 0 {
		e.log.Warn("ranker returned no candidates, using failsafe")
		return Failsafe()
	}
	available := candidateTopics(candidates)

	// Step 1: onboarding gate. Exactly one system-ranked topic; user
	// preferences and hatches are ignored entirely.
	if state.SessionsCompleted < OnboardingSessions {
		return Decision{
			ActiveTags:       []string{candidates[0].Topic},
			TagCount:         1,
			Reasoning:        "onboarding: first session, single system-ranked topic",
			PerformanceLevel: level,
			AvailableTags:    available,
		}
	}

	daysSinceProgress := e.daysSinceProgress(state)

	// Step 2: escape-hatch detection, surfaced in reasoning only.
	reasons := detectHatches(state, daysSinceProgress)

	// Step 3: graduation blending on the session-scoped preference copy.
	blend := blendGraduated(prefs.PreferredTopics, mastered, candidates)
	if len(blend.graduated) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"graduated %s; blended in %s",
			strings.Join(blend.graduated, ","),
			strings.Join(blend.added, ",")))
	}
	sessionPrefs := blend.sessionPrefs()

	// Step 4: topic count from the banded rules.
	totalAttempts := e.totalAttempts(ctx)
	count := TopicCount(state.LastAccuracy, totalAttempts, daysSinceProgress)
	reasons = append(reasons, fmt.Sprintf(
		"count %d (accuracy %.2f, attempts %d, days-since-progress %.0f)",
		count, state.LastAccuracy, totalAttempts, daysSinceProgress))

	// Step 5: candidate selection. The algorithm owns set membership.
	pool := candidates
	tierOverride := false
	if prefs.TierOverride != "" {
		if tier, ok := topics.ParseTier(prefs.TierOverride); ok {
			pool = e.ranker.RankTier(tier, mastered)
			tierOverride = true
			reasons = append(reasons, "tier-override: "+prefs.TierOverride)
		}
	}
	if len(pool) == 0 {
		pool = candidates
		tierOverride = false
	}
	chosen := topCandidates(pool, count)

	// Step 6: user ordering. Preferences reorder the chosen set, never
	// change membership or count. Without a tier override, only
	// preferences already in the candidate pool may influence order.
	poolSet := make(map[string]bool, len(pool))
	for _, c := range pool {
		poolSet[c.Topic] = true
	}
	chosen = reorderByPreference(chosen, sessionPrefs, poolSet, tierOverride)

	if len(chosen) == 0 {
		e.log.Warn("empty chosen set after pipeline, using failsafe")
		return Failsafe()
	}

	return Decision{
		ActiveTags:       chosen,
		TagCount:         len(chosen),
		Reasoning:        strings.Join(reasons, "; "),
		PerformanceLevel: level,
		AvailableTags:    available,
	}
}

// DecideAndSave loads the inputs, decides, persists the focus-owned state
// fields and appends a decision audit event. The decision is returned
// even when persistence fails.
func (e *Engine) DecideAndSave(ctx context.Context) (Decision, error) {
	state, err := e.state.Load(ctx)
	if err != nil {
		e.log.Error("load learner state failed, using failsafe", "error", err)
		return Failsafe(), err
	}

	snapshot, err := e.masterySnapshot(ctx)
	if err != nil {
		e.log.Warn("load mastery snapshot failed, deciding without it", "error", err)
		snapshot = map[string]store.MasteryData{}
	}

	prefs, err := e.settings.Load(ctx)
	if err != nil {
		e.log.Warn("load settings failed, deciding without preferences", "error", err)
		prefs = &store.SettingsData{}
	}

	d := e.Decide(ctx, state, snapshot, prefs)

	if err := e.state.SaveFocus(ctx, store.FocusFields{
		FocusTags:        d.ActiveTags,
		TagCount:         d.TagCount,
		PerformanceLevel: d.PerformanceLevel,
	}); err != nil {
		return d, fmt.Errorf("persist focus decision: %w", err)
	}

	e.auditDecision(ctx, d)
	return d, nil
}

// auditDecision appends a DecisionEvent with bounded retry. Non-critical:
// failures log and are abandoned.
func (e *Engine) auditDecision(ctx context.Context, d Decision) {
	if e.events == nil {
		return
	}
	err := store.Retry(ctx, e.retryCfg, func(ctx context.Context) error {
		return e.events.AppendDecisionEvent(ctx, store.DecisionEventData{
			Tags:             d.ActiveTags,
			TagCount:         d.TagCount,
			Reasoning:        d.Reasoning,
			PerformanceLevel: d.PerformanceLevel,
		})
	})
	if err != nil {
		e.log.Warn("decision audit write abandoned", "error", err)
	}
}

func (e *Engine) masterySnapshot(ctx context.Context) (map[string]store.MasteryData, error) {
	records, err := e.mastery.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]store.MasteryData, len(records))
	for _, r := range records {
		out[r.Topic] = r
	}
	return out, nil
}

// totalAttempts returns the historical attempt volume. A store failure
// degrades to zero, which pushes the decision toward the conservative
// single-topic band.
func (e *Engine) totalAttempts(ctx context.Context) int {
	if e.attempts == nil {
		return 0
	}
	n, err := e.attempts.TotalCount(ctx)
	if err != nil {
		e.log.Warn("count attempts failed, assuming low volume", "error", err)
		return 0
	}
	return n
}

func (e *Engine) daysSinceProgress(state *store.LearnerStateData) float64 {
	if state.LastProgressDate == nil {
		return 0
	}
	return e.now().Sub(*state.LastProgressDate).Hours() / 24
}

func candidateTopics(cs []topics.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Topic
	}
	return out
}

func topCandidates(cs []topics.Candidate, n int) []string {
	if n > len(cs) {
		n = len(cs)
	}
	out := make([]string, 0, n)
	for _, c := range cs[:n] {
		out = append(out, c.Topic)
	}
	return out
}

// reorderByPreference sorts preferred topics first without changing set
// membership. Preferences outside the candidate pool are ignored unless
// the tier override is active.
func reorderByPreference(chosen, prefs []string, pool map[string]bool, overridden bool) []string {
	chosenSet := make(map[string]bool, len(chosen))
	for _, t := range chosen {
		chosenSet[t] = true
	}

	out := make([]string, 0, len(chosen))
	taken := make(map[string]bool, len(chosen))

	for _, p := range prefs {
		if !chosenSet[p] || taken[p] {
			continue
		}
		if !overridden && !pool[p] {
			continue
		}
		out = append(out, p)
		taken[p] = true
	}
	for _, t := range chosen {
		if !taken[t] {
			out = append(out, t)
			taken[t] = true
		}
	}
	return out
}

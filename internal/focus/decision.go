package focus

// Performance levels derived from recent accuracy.
const (
	LevelStruggling = "struggling"
	LevelBuilding   = "building"
	LevelProficient = "proficient"
	LevelAdvanced   = "advanced"
)

// Decision is the engine's output: the topic set and count for the next
// session. Embedded into the learner state and surfaced to callers; never
// persisted as its own record.
type Decision struct {
	// ActiveTags is the ordered focus topic list. Always ≥ 1 entry.
	ActiveTags []string

	// TagCount is the chosen topic count. Always ≥ 1.
	TagCount int

	// Reasoning is the pipeline's reasoning trail for downstream session
	// generation (difficulty easing consults the hatch markers here).
	Reasoning string

	// PerformanceLevel is the derived level the decision was made at.
	PerformanceLevel string

	// AvailableTags is the full ranked candidate pool the set was drawn
	// from, for callers that present alternatives.
	AvailableTags []string
}

// failsafeTopic is used when even the ranker yields nothing.
const failsafeTopic = "arrays"

// Failsafe is the fixed degraded decision: a scheduling decision must
// always be producible, whatever broke inside the pipeline.
func Failsafe() Decision {
	return Decision{
		ActiveTags:       []string{failsafeTopic},
		TagCount:         1,
		Reasoning:        "failsafe",
		PerformanceLevel: LevelBuilding,
		AvailableTags:    []string{failsafeTopic},
	}
}

// PerformanceLevel maps recent accuracy to a level band.
func PerformanceLevel(accuracy float64) string {
	switch {
	case accuracy < 0.40:
		return LevelStruggling
	case accuracy < 0.65:
		return LevelBuilding
	case accuracy < 0.85:
		return LevelProficient
	default:
		return LevelAdvanced
	}
}

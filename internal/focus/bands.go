package focus

const (
	// MinTopicCount is the floor on the number of focus topics.
	MinTopicCount = 1

	// MaxTopicCount is the ceiling, also used by the stagnation override.
	MaxTopicCount = 4

	// MinAttemptVolume gates the bands: below this many recorded
	// attempts the count is always 1, whatever the accuracy says.
	MinAttemptVolume = 4

	// StagnationDays is the days-without-progress threshold that forces
	// the maximum band to break a plateau.
	StagnationDays = 14
)

// VolumeStep grants a count once attempt volume reaches MinAttempts.
// Steps are ordered ascending; the last reachable step wins.
type VolumeStep struct {
	MinAttempts int
	Count       int
}

// Band maps an accuracy floor to its volume steps. Bands are ordered by
// descending MinAccuracy and evaluated first-match-wins, so the
// thresholds are data, not code.
type Band struct {
	MinAccuracy float64
	Steps       []VolumeStep
}

// countBands is the topic-count selection table.
var countBands = []Band{
	{MinAccuracy: 0.80, Steps: []VolumeStep{{0, 2}, {10, 3}, {20, 4}}},
	{MinAccuracy: 0.75, Steps: []VolumeStep{{0, 2}, {10, 3}}},
	{MinAccuracy: 0.60, Steps: []VolumeStep{{0, 2}}},
	{MinAccuracy: 0.55, Steps: []VolumeStep{{0, 2}}},
	{MinAccuracy: 0.40, Steps: []VolumeStep{{0, 1}}},
	{MinAccuracy: 0.00, Steps: []VolumeStep{{0, 1}}},
}

// TopicCount derives the focus topic count from recent accuracy, total
// historical attempt volume and days since last measurable progress.
// Stagnation overrides every other rule; the attempt-volume gate
// overrides accuracy.
func TopicCount(accuracy float64, totalAttempts int, daysSinceProgress float64) int {
	if daysSinceProgress >= StagnationDays {
		return MaxTopicCount
	}
	if totalAttempts < MinAttemptVolume {
		return MinTopicCount
	}

	for _, b := range countBands {
		if accuracy < b.MinAccuracy {
			continue
		}
		count := MinTopicCount
		for _, s := range b.Steps {
			if totalAttempts >= s.MinAttempts {
				count = s.Count
			}
		}
		return count
	}
	return MinTopicCount
}

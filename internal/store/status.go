package store

// Session status values as persisted.
const (
	StatusDraft      = "draft"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusExpired    = "expired"
)

// Session type values as persisted.
const (
	TypeStandard      = "standard"
	TypeInterviewLike = "interview_like"
	TypeFullInterview = "full_interview"
)

// Session origin values as persisted.
const (
	OriginGenerator = "generator"
	OriginTracking  = "tracking"
)

// Difficulty values as persisted on attempts and problem slots.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

package topics

// Tier groups topics by the experience level they suit.
type Tier string

const (
	TierFundamental  Tier = "fundamental"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// AllTiers returns all tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierFundamental, TierIntermediate, TierAdvanced}
}

// ParseTier maps a stored tier name to a Tier. Unknown names fall back to
// fundamental so a stale override can never select an empty pool.
func ParseTier(s string) (Tier, bool) {
	switch Tier(s) {
	case TierFundamental, TierIntermediate, TierAdvanced:
		return Tier(s), true
	}
	return TierFundamental, false
}

// Topic is a named problem category used as the unit of mastery tracking
// and focus selection.
type Topic struct {
	ID      string
	Name    string
	Tier    Tier
	Related []string
}

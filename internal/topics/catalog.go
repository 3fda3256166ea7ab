package topics

import (
	"fmt"
	"sort"
)

// catalog holds the topic set with precomputed indices.
type catalog struct {
	topics []Topic
	byID   map[string]*Topic
	byTier map[Tier][]Topic
}

// c is the package-level catalog singleton, built by init().
var c *catalog

func init() {
	c = buildCatalog(seedTopics())
}

func buildCatalog(ts []Topic) *catalog {
	cat := &catalog{
		topics: ts,
		byID:   make(map[string]*Topic, len(ts)),
		byTier: make(map[Tier][]Topic),
	}
	for i := range cat.topics {
		t := &cat.topics[i]
		cat.byID[t.ID] = t
		cat.byTier[t.Tier] = append(cat.byTier[t.Tier], *t)
	}
	for _, tier := range AllTiers() {
		sort.Slice(cat.byTier[tier], func(i, j int) bool {
			return cat.byTier[tier][i].ID < cat.byTier[tier][j].ID
		})
	}
	return cat
}

// All returns every topic, ordered by ID.
func All() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllIDs returns every topic ID, sorted.
func AllIDs() []string {
	ids := make([]string, 0, len(c.topics))
	for _, t := range c.topics {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the topic with the given ID.
func Get(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic: %s", id)
	}
	return *t, nil
}

// Exists reports whether id names a catalog topic.
func Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ByTier returns the topics of one tier, ordered by ID.
func ByTier(tier Tier) []Topic {
	ts := c.byTier[tier]
	out := make([]Topic, len(ts))
	copy(out, ts)
	return out
}

// Related returns the related-topic IDs of id, or nil for unknown topics.
func Related(id string) []string {
	t, ok := c.byID[id]
	if !ok {
		return nil
	}
	out := make([]string, len(t.Related))
	copy(out, t.Related)
	return out
}

// seedTopics is the built-in coding-practice topic catalog.
func seedTopics() []Topic {
	return []Topic{
		{ID: "arrays", Name: "Arrays", Tier: TierFundamental,
			Related: []string{"two-pointers", "sorting", "sliding-window"}},
		{ID: "strings", Name: "Strings", Tier: TierFundamental,
			Related: []string{"two-pointers", "sliding-window", "trie"}},
		{ID: "hash-map", Name: "Hash Maps", Tier: TierFundamental,
			Related: []string{"arrays", "strings"}},
		{ID: "linked-list", Name: "Linked Lists", Tier: TierFundamental,
			Related: []string{"two-pointers", "stack"}},
		{ID: "stack", Name: "Stacks", Tier: TierFundamental,
			Related: []string{"queue", "strings"}},
		{ID: "queue", Name: "Queues", Tier: TierFundamental,
			Related: []string{"stack", "bfs"}},
		{ID: "sorting", Name: "Sorting", Tier: TierFundamental,
			Related: []string{"arrays", "binary-search", "intervals"}},
		{ID: "math", Name: "Math & Logic", Tier: TierFundamental,
			Related: []string{"bit-manipulation"}},
		{ID: "two-pointers", Name: "Two Pointers", Tier: TierIntermediate,
			Related: []string{"arrays", "strings", "sliding-window"}},
		{ID: "sliding-window", Name: "Sliding Window", Tier: TierIntermediate,
			Related: []string{"two-pointers", "hash-map"}},
		{ID: "binary-search", Name: "Binary Search", Tier: TierIntermediate,
			Related: []string{"sorting", "arrays"}},
		{ID: "trees", Name: "Binary Trees", Tier: TierIntermediate,
			Related: []string{"bfs", "dfs", "heap"}},
		{ID: "bfs", Name: "Breadth-First Search", Tier: TierIntermediate,
			Related: []string{"trees", "graphs", "queue"}},
		{ID: "dfs", Name: "Depth-First Search", Tier: TierIntermediate,
			Related: []string{"trees", "graphs", "backtracking"}},
		{ID: "heap", Name: "Heaps & Priority Queues", Tier: TierIntermediate,
			Related: []string{"sorting", "greedy"}},
		{ID: "intervals", Name: "Intervals", Tier: TierIntermediate,
			Related: []string{"sorting", "greedy"}},
		{ID: "greedy", Name: "Greedy", Tier: TierIntermediate,
			Related: []string{"intervals", "heap", "sorting"}},
		{ID: "graphs", Name: "Graphs", Tier: TierAdvanced,
			Related: []string{"bfs", "dfs", "union-find"}},
		{ID: "backtracking", Name: "Backtracking", Tier: TierAdvanced,
			Related: []string{"dfs", "dynamic-programming"}},
		{ID: "dynamic-programming", Name: "Dynamic Programming", Tier: TierAdvanced,
			Related: []string{"backtracking", "greedy"}},
		{ID: "trie", Name: "Tries", Tier: TierAdvanced,
			Related: []string{"strings", "hash-map"}},
		{ID: "union-find", Name: "Union-Find", Tier: TierAdvanced,
			Related: []string{"graphs"}},
		{ID: "bit-manipulation", Name: "Bit Manipulation", Tier: TierAdvanced,
			Related: []string{"math"}},
	}
}

package topics

import "testing"

func TestRank_ReturnsWholeCatalog(t *testing.T) {
	r := NewRanker()
	got := r.Rank(RankInput{Level: "building"})
	if len(got) != len(All()) {
		t.Errorf("ranked %d candidates, want %d", len(got), len(All()))
	}
}

func TestRank_Deterministic(t *testing.T) {
	r := NewRanker()
	in := RankInput{Level: "building", Focus: []string{"arrays"}}
	a := r.Rank(in)
	b := r.Rank(in)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rank order differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRank_MasteredSink(t *testing.T) {
	r := NewRanker()
	mastered := map[string]bool{"arrays": true}
	got := r.Rank(RankInput{Level: "struggling", Mastered: mastered})

	var arraysPos, stringsPos int
	for i, c := range got {
		switch c.Topic {
		case "arrays":
			arraysPos = i
		case "strings":
			stringsPos = i
		}
	}
	if arraysPos < stringsPos {
		t.Error("mastered topic should rank below an unmastered peer")
	}
}

func TestRank_TargetTierWins(t *testing.T) {
	r := NewRanker()
	got := r.Rank(RankInput{Level: "advanced"})
	top, err := Get(got[0].Topic)
	if err != nil {
		t.Fatalf("Get(%s): %v", got[0].Topic, err)
	}
	if top.Tier != TierAdvanced {
		t.Errorf("advanced learner's top candidate is %s tier, want advanced", top.Tier)
	}
}

func TestRank_StaleTopicsRegainRelevance(t *testing.T) {
	r := NewRanker()
	fresh := r.Rank(RankInput{Level: "building"})
	decayed := r.Rank(RankInput{
		Level: "building",
		Decay: map[string]float64{"arrays": 0.3},
	})

	score := func(cs []Candidate, id string) float64 {
		for _, c := range cs {
			if c.Topic == id {
				return c.Score
			}
		}
		t.Fatalf("topic %s missing from ranking", id)
		return 0
	}
	if score(decayed, "arrays") <= score(fresh, "arrays") {
		t.Error("decayed topic should score higher than when fresh")
	}
}

func TestRankTier_OnlyThatTier(t *testing.T) {
	r := NewRanker()
	got := r.RankTier(TierIntermediate, nil)
	if len(got) != len(ByTier(TierIntermediate)) {
		t.Fatalf("ranked %d, want %d", len(got), len(ByTier(TierIntermediate)))
	}
	for _, c := range got {
		topic, err := Get(c.Topic)
		if err != nil {
			t.Fatalf("Get(%s): %v", c.Topic, err)
		}
		if topic.Tier != TierIntermediate {
			t.Errorf("topic %s is %s tier", c.Topic, topic.Tier)
		}
	}
}

func TestRankTier_MasteredLast(t *testing.T) {
	r := NewRanker()
	inter := ByTier(TierIntermediate)
	mastered := map[string]bool{inter[0].ID: true}
	got := r.RankTier(TierIntermediate, mastered)
	if got[len(got)-1].Topic != inter[0].ID {
		t.Errorf("mastered topic %s should rank last, got order %v", inter[0].ID, got)
	}
}

package topics

import "testing"

func TestCatalog_RelatedReferencesExist(t *testing.T) {
	for _, topic := range All() {
		for _, rel := range topic.Related {
			if !Exists(rel) {
				t.Errorf("topic %s relates to unknown topic %s", topic.ID, rel)
			}
			if rel == topic.ID {
				t.Errorf("topic %s relates to itself", topic.ID)
			}
		}
	}
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if seen[topic.ID] {
			t.Errorf("duplicate topic ID %s", topic.ID)
		}
		seen[topic.ID] = true
	}
}

func TestCatalog_EveryTierPopulated(t *testing.T) {
	for _, tier := range AllTiers() {
		if len(ByTier(tier)) == 0 {
			t.Errorf("tier %s has no topics", tier)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("no-such-topic"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestGet_Known(t *testing.T) {
	topic, err := Get("arrays")
	if err != nil {
		t.Fatalf("Get(arrays): %v", err)
	}
	if topic.Tier != TierFundamental {
		t.Errorf("arrays tier = %s, want fundamental", topic.Tier)
	}
}

func TestRelated_UnknownReturnsNil(t *testing.T) {
	if got := Related("no-such-topic"); got != nil {
		t.Errorf("Related(unknown) = %v, want nil", got)
	}
}

func TestAllIDs_MatchesAll(t *testing.T) {
	if len(AllIDs()) != len(All()) {
		t.Errorf("AllIDs has %d entries, All has %d", len(AllIDs()), len(All()))
	}
}

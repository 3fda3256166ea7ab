package focus

import (
	"testing"

	"github.com/ankur/codedrill/internal/topics"
)

func cands(ids ...string) []topics.Candidate {
	out := make([]topics.Candidate, len(ids))
	for i, id := range ids {
		out[i] = topics.Candidate{Topic: id, Score: 1.0}
	}
	return out
}

func TestBlendGraduated_NothingGraduated(t *testing.T) {
	res := blendGraduated([]string{"arrays", "strings"}, map[string]bool{}, cands("graphs"))
	if len(res.graduated) != 0 || len(res.added) != 0 {
		t.Errorf("got graduated=%v added=%v, want none", res.graduated, res.added)
	}
	prefs := res.sessionPrefs()
	if len(prefs) != 2 || prefs[0] != "arrays" || prefs[1] != "strings" {
		t.Errorf("session prefs = %v, want [arrays strings]", prefs)
	}
}

func TestBlendGraduated_ReplacesMastered(t *testing.T) {
	mastered := map[string]bool{"arrays": true}
	res := blendGraduated([]string{"arrays", "strings", "stack"}, mastered, cands("graphs", "trees"))

	if len(res.graduated) != 1 || res.graduated[0] != "arrays" {
		t.Errorf("graduated = %v, want [arrays]", res.graduated)
	}
	// round(0.3 * 3) = 1 system addition.
	if len(res.added) != 1 || res.added[0] != "graphs" {
		t.Errorf("added = %v, want [graphs]", res.added)
	}
	prefs := res.sessionPrefs()
	for _, p := range prefs {
		if p == "arrays" {
			t.Error("graduated topic must leave the session prefs")
		}
	}
}

func TestBlendGraduated_SkipsMasteredCandidates(t *testing.T) {
	mastered := map[string]bool{"arrays": true, "graphs": true}
	res := blendGraduated([]string{"arrays"}, mastered, cands("graphs", "trees"))
	if len(res.added) != 1 || res.added[0] != "trees" {
		t.Errorf("added = %v, want [trees] (mastered candidates skipped)", res.added)
	}
}

func TestBlendGraduated_AdditionsCapped(t *testing.T) {
	mastered := map[string]bool{}
	prefs := make([]string, 0, 12)
	for _, p := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		prefs = append(prefs, p)
		mastered[p] = true
	}
	res := blendGraduated(prefs, mastered, cands("m", "n", "o", "p", "q"))
	if len(res.added) > maxBlendAdditions {
		t.Errorf("added %d topics, cap is %d", len(res.added), maxBlendAdditions)
	}
}

func TestBlendGraduated_PersistedPrefsUntouched(t *testing.T) {
	orig := []string{"arrays", "strings"}
	blendGraduated(orig, map[string]bool{"arrays": true}, cands("graphs"))
	if orig[0] != "arrays" || orig[1] != "strings" {
		t.Errorf("input preference slice mutated: %v", orig)
	}
}

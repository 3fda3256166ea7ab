package mastery

import "testing"

func TestDefaultLadder_Loads(t *testing.T) {
	l := DefaultLadder()
	if len(l.Rules) != 4 {
		t.Errorf("got %d rules, want 4", len(l.Rules))
	}
	if l.Rules[0].Label != "no-escape" {
		t.Errorf("first rule = %q, want no-escape", l.Rules[0].Label)
	}
}

func TestEvaluate_ZeroAttempts(t *testing.T) {
	l := DefaultLadder()
	mastered, label := l.Evaluate(0, 0)
	if mastered {
		t.Error("zero attempts should never be mastered")
	}
	if label != "" {
		t.Errorf("got label %q, want empty", label)
	}
}

func TestEvaluate_Ladder(t *testing.T) {
	l := DefaultLadder()
	tests := []struct {
		name       string
		total      int
		successful int
		mastered   bool
		label      string
	}{
		{"high rate low volume", 10, 9, true, "no-escape"},
		{"exactly at top threshold", 5, 4, true, "no-escape"},
		{"light struggle with volume", 8, 6, true, "light-struggle"},
		{"light struggle rate without volume", 4, 3, false, ""},
		{"moderate struggle with volume", 14, 10, true, "moderate-struggle"},
		{"moderate struggle rate without volume", 10, 7, false, ""},
		{"heavy struggle with failures", 40, 24, true, "heavy-struggle"},
		{"heavy struggle rate too few failures", 10, 6, false, ""},
		{"below every rung", 6, 3, false, ""},
		{"all failures", 20, 0, false, ""},
	}
	for _, tt := range tests {
		mastered, label := l.Evaluate(tt.total, tt.successful)
		if mastered != tt.mastered || label != tt.label {
			t.Errorf("%s: Evaluate(%d, %d) = (%v, %q), want (%v, %q)",
				tt.name, tt.total, tt.successful, mastered, label, tt.mastered, tt.label)
		}
	}
}

func TestEvaluate_FirstMatchWins(t *testing.T) {
	// 16/20 = 0.80 satisfies every rung; the strictest label must win.
	l := DefaultLadder()
	mastered, label := l.Evaluate(20, 16)
	if !mastered || label != "no-escape" {
		t.Errorf("got (%v, %q), want (true, no-escape)", mastered, label)
	}
}

func TestParseLadder_RejectsEmpty(t *testing.T) {
	if _, err := ParseLadder([]byte("rules: []")); err == nil {
		t.Error("expected error for empty rule list")
	}
}

func TestParseLadder_RejectsMissingLabel(t *testing.T) {
	data := []byte("rules:\n  - min_success_rate: 0.8\n")
	if _, err := ParseLadder(data); err == nil {
		t.Error("expected error for rule without label")
	}
}

func TestParseLadder_RejectsBadRate(t *testing.T) {
	data := []byte("rules:\n  - label: broken\n    min_success_rate: 1.5\n")
	if _, err := ParseLadder(data); err == nil {
		t.Error("expected error for success rate above 1")
	}
}

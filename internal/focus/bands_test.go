package focus

import "testing"

func TestTopicCount_LowVolumeGate(t *testing.T) {
	// Below the volume gate the count is 1, whatever the accuracy.
	for _, acc := range []float64{0.0, 0.5, 0.9, 1.0} {
		if got := TopicCount(acc, 3, 0); got != 1 {
			t.Errorf("TopicCount(%.2f, 3, 0) = %d, want 1", acc, got)
		}
	}
}

func TestTopicCount_Bands(t *testing.T) {
	tests := []struct {
		accuracy float64
		attempts int
		want     int
	}{
		{0.90, 5, 2},
		{0.90, 10, 3},
		{0.90, 25, 4},
		{0.80, 20, 4},
		{0.78, 5, 2},
		{0.78, 15, 3},
		{0.78, 50, 3},
		{0.70, 50, 2},
		{0.55, 50, 2},
		{0.50, 50, 1},
		{0.40, 50, 1},
		{0.10, 50, 1},
	}
	for _, tt := range tests {
		got := TopicCount(tt.accuracy, tt.attempts, 0)
		if got != tt.want {
			t.Errorf("TopicCount(%.2f, %d, 0) = %d, want %d", tt.accuracy, tt.attempts, got, tt.want)
		}
	}
}

func TestTopicCount_MonotoneInAccuracy(t *testing.T) {
	// At fixed volume, higher accuracy never yields fewer topics.
	prev := 0
	for acc := 0.0; acc <= 1.0; acc += 0.01 {
		got := TopicCount(acc, 100, 0)
		if got < prev {
			t.Fatalf("count dropped from %d to %d at accuracy %.2f", prev, got, acc)
		}
		prev = got
	}
}

func TestTopicCount_StagnationOverride(t *testing.T) {
	// Stagnation forces the maximum regardless of accuracy or volume.
	if got := TopicCount(0.10, 0, StagnationDays); got != MaxTopicCount {
		t.Errorf("stagnated TopicCount = %d, want %d", got, MaxTopicCount)
	}
	if got := TopicCount(0.95, 2, 30); got != MaxTopicCount {
		t.Errorf("stagnated low-volume TopicCount = %d, want %d", got, MaxTopicCount)
	}
}

func TestTopicCount_JustBelowStagnation(t *testing.T) {
	if got := TopicCount(0.50, 50, StagnationDays-1); got != 1 {
		t.Errorf("TopicCount just below stagnation = %d, want 1", got)
	}
}

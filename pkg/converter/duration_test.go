package converter

import (
	"testing"
)

func TestDurationToken(t *testing.T) {
	tests := []struct {
		name     string
		delta    int64
		expected int
	}{
		{"zero", 0, GraceToken},
		{"just under grace threshold", 9, GraceToken},
		{"small grace", 5, GraceToken},
		{"first bucket", 10, 1},
		{"mid bucket rounds down", 25, 2},
		{"last linear value", 500, 50},
		{"just over sustain threshold", 501, SustainToken},
		{"huge delta", 10000, SustainToken},
		{"negative clamps to grace", -380, GraceToken},
		{"slightly negative clamps to grace", -1, GraceToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DurationToken(tt.delta)
			if result != tt.expected {
				t.Errorf("DurationToken(%d) = %d, want %d", tt.delta, result, tt.expected)
			}
		})
	}
}

func TestDurationTokenIdempotent(t *testing.T) {
	for _, d := range []int64{0, 9, 10, 480, 501, -50} {
		if DurationToken(d) != DurationToken(d) {
			t.Errorf("DurationToken(%d) not stable across calls", d)
		}
	}
}

package model

import (
	"testing"
	"time"
)

// TestNormalize verifies session lengths are clamped into bounds.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   Config
		want Config
	}{
		{Config{StudyMinutes: 30, BreakMinutes: 5}, Config{StudyMinutes: 30, BreakMinutes: 5}},
		{Config{StudyMinutes: 0, BreakMinutes: 0}, Config{StudyMinutes: 1, BreakMinutes: 1}},
		{Config{StudyMinutes: -10, BreakMinutes: -1}, Config{StudyMinutes: 1, BreakMinutes: 1}},
		{Config{StudyMinutes: 500, BreakMinutes: 90}, Config{StudyMinutes: 180, BreakMinutes: 60}},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

// TestDurations verifies minute-to-duration conversion.
func TestDurations(t *testing.T) {
	config := Config{StudyMinutes: 25, BreakMinutes: 5}
	if config.StudyDuration() != 25*time.Minute {
		t.Fatalf("StudyDuration = %v", config.StudyDuration())
	}
	if config.BreakDuration() != 5*time.Minute {
		t.Fatalf("BreakDuration = %v", config.BreakDuration())
	}
}

// TestDefaultConfig verifies the documented defaults.
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.StudyMinutes != 30 || config.BreakMinutes != 5 {
		t.Fatalf("DefaultConfig = %+v", config)
	}
}

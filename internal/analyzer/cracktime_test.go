package analyzer

import (
	"math"
	"testing"
)

func TestHumanizeDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.5, "less than a second"},
		{1, "1 seconds"},
		{59, "59 seconds"},
		{60, "1 minutes"},
		{3599, "59 minutes"},
		{3600, "1 hours"},
		{86399, "23 hours"},
		{2 * secondsPerDay, "2 days"},
		{5 * secondsPerYear, "5 years"},
		{99 * secondsPerYear, "99 years"},
		{100 * secondsPerYear, "centuries"},
		{math.Inf(1), "centuries"},
	}
	for _, tt := range tests {
		if got := humanizeDuration(tt.seconds); got != tt.want {
			t.Errorf("humanizeDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestCrackTimesScenarios(t *testing.T) {
	estimates := CrackTimes(0)

	for _, scenario := range []string{"online_throttled", "online_unthrottled", "offline_slow_hash", "offline_fast_hash"} {
		if _, ok := estimates[scenario]; !ok {
			t.Errorf("missing scenario %q", scenario)
		}
	}

	// 2^0 = 1 candidate: 36 seconds at 100 guesses/hour, instant offline.
	if got := estimates["online_throttled"]; got != "36 seconds" {
		t.Errorf("online_throttled at 0 bits = %q, want %q", got, "36 seconds")
	}
	if got := estimates["offline_fast_hash"]; got != "less than a second" {
		t.Errorf("offline_fast_hash at 0 bits = %q, want %q", got, "less than a second")
	}
}

func TestCrackTimesHighEntropy(t *testing.T) {
	estimates := CrackTimes(128)
	for scenario, estimate := range estimates {
		if estimate != "centuries" {
			t.Errorf("%s at 128 bits = %q, want %q", scenario, estimate, "centuries")
		}
	}
}

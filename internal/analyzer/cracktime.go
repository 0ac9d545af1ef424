package analyzer

import (
	"fmt"
	"math"
)

// Attack scenarios with assumed attacker throughput in guesses per second.
var crackScenarios = []struct {
	name             string
	guessesPerSecond float64
}{
	{"online_throttled", 100.0 / 3600},
	{"online_unthrottled", 10},
	{"offline_slow_hash", 1e4},
	{"offline_fast_hash", 1e10},
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365 * secondsPerDay
	centuryYears     = 100
)

// CrackTimes estimates, per attack scenario, how long exhausting the
// candidate space implied by the entropy would take, as a humanized duration.
func CrackTimes(entropyBits float64) map[string]string {
	estimates := make(map[string]string, len(crackScenarios))
	for _, sc := range crackScenarios {
		seconds := math.Pow(2, entropyBits) / sc.guessesPerSecond
		estimates[sc.name] = humanizeDuration(seconds)
	}
	return estimates
}

// humanizeDuration buckets a duration in seconds into a coarse display string.
func humanizeDuration(seconds float64) string {
	switch {
	case math.IsInf(seconds, 1) || seconds/secondsPerYear >= centuryYears:
		return "centuries"
	case seconds < 1:
		return "less than a second"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%d seconds", int(seconds))
	case seconds < secondsPerHour:
		return fmt.Sprintf("%d minutes", int(seconds/secondsPerMinute))
	case seconds < secondsPerDay:
		return fmt.Sprintf("%d hours", int(seconds/secondsPerHour))
	case seconds < secondsPerYear:
		return fmt.Sprintf("%d days", int(seconds/secondsPerDay))
	default:
		return fmt.Sprintf("%d years", int(seconds/secondsPerYear))
	}
}

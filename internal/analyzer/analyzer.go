// Package analyzer implements password strength analysis: entropy estimation,
// weak-pattern detection, character diversity, crack-time estimation and
// improvement recommendations.
package analyzer

import (
	"math"
	"strings"

	"github.com/securepass/securepass-go/internal/model"
)

const (
	lowercasePoolSize = 26
	uppercasePoolSize = 26
	digitPoolSize     = 10
	symbolPoolSize    = 32

	symbolChars = "!@#$%^&*()_+-=[]{};:'\",.<>?/\\|`~"
)

// Scoring calibration. The tiers, penalties and breakpoints below are the
// contract for downstream consumers; tests pin them.
const (
	lengthLong   = 16
	lengthMedium = 12
	lengthShort  = 8

	lengthLongPoints   = 30
	lengthMediumPoints = 25
	lengthShortPoints  = 15

	entropyHigh   = 60.0
	entropyMedium = 40.0
	entropyLow    = 25.0

	entropyHighPoints   = 30
	entropyMediumPoints = 20
	entropyLowPoints    = 10

	diversityPoints = 5

	penaltySequentialNumbers  = 5
	penaltySequentialLetters  = 5
	penaltyRepeatedCharacters = 10
	penaltyKeyboardPattern    = 10
	penaltyCommonWord         = 20
	penaltyDatePattern        = 5

	estimatorPointsPerLevel = 4

	veryStrongThreshold = 80
	strongThreshold     = 60
	moderateThreshold   = 40
	weakThreshold       = 20
)

// Estimator supplies a coarse 0-4 strength score with optional textual
// feedback, typically backed by an external estimator library. Tests
// substitute deterministic stubs.
type Estimator interface {
	Estimate(password string) model.StrengthEstimate
}

// Analyzer performs password strength analysis. It holds no mutable state;
// every call is independent. The zero value analyzes without an external
// estimator.
type Analyzer struct {
	estimator Estimator
}

// New returns an Analyzer without an external estimator.
func New() *Analyzer {
	return &Analyzer{}
}

// NewWithEstimator returns an Analyzer that folds the given estimator's
// score, warning and suggestions into each result.
func NewWithEstimator(est Estimator) *Analyzer {
	return &Analyzer{estimator: est}
}

// Entropy estimates password entropy in bits as length * log2(pool), where
// pool is the union size of the character classes present. This is a coarse
// alphabet-size model, not Shannon entropy of the actual distribution; the
// scoring tiers are calibrated against it.
func Entropy(password string) float64 {
	pool := 0
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		pool += lowercasePoolSize
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		pool += uppercasePoolSize
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		pool += digitPoolSize
	}
	if strings.ContainsAny(password, symbolChars) {
		pool += symbolPoolSize
	}
	if pool == 0 {
		return 0
	}
	bits := float64(len(password)) * math.Log2(float64(pool))
	return math.Round(bits*100) / 100
}

// Diversity reports which character classes appear in the password.
func Diversity(password string) model.CharacterDiversity {
	return model.CharacterDiversity{
		HasLowercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }),
		HasUppercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		HasNumbers:   strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }),
		HasSymbols:   strings.ContainsAny(password, symbolChars),
		HasSpaces:    strings.Contains(password, " "),
	}
}

// Analyze performs a complete analysis of the password. Any input is valid,
// including the empty string, which yields a zero score. The password itself
// is never retained or logged.
func (a *Analyzer) Analyze(password string) model.AnalysisResult {
	entropy := Entropy(password)
	patterns := CheckPatterns(password)
	diversity := Diversity(password)

	var estimate *model.StrengthEstimate
	if a.estimator != nil {
		e := a.estimator.Estimate(password)
		estimate = &e
	}

	score := calculateScore(password, entropy, patterns, diversity, estimate)

	return model.AnalysisResult{
		Length:             len(password),
		Score:              score,
		Strength:           strengthFor(score),
		EntropyBits:        entropy,
		Patterns:           patterns,
		Diversity:          diversity,
		CrackTimeEstimates: CrackTimes(entropy),
		Recommendations:    recommendations(password, patterns, diversity),
		Estimate:           estimate,
	}
}

// Score computes only the 0-100 score and strength label.
func (a *Analyzer) Score(password string) (int, model.Strength) {
	var estimate *model.StrengthEstimate
	if a.estimator != nil {
		e := a.estimator.Estimate(password)
		estimate = &e
	}
	score := calculateScore(password, Entropy(password), CheckPatterns(password), Diversity(password), estimate)
	return score, strengthFor(score)
}

func calculateScore(password string, entropy float64, patterns model.PatternFlags, diversity model.CharacterDiversity, estimate *model.StrengthEstimate) int {
	if password == "" {
		return 0
	}

	score := 0

	switch length := len(password); {
	case length >= lengthLong:
		score += lengthLongPoints
	case length >= lengthMedium:
		score += lengthMediumPoints
	case length >= lengthShort:
		score += lengthShortPoints
	default:
		score += length * 2
	}

	switch {
	case entropy >= entropyHigh:
		score += entropyHighPoints
	case entropy >= entropyMedium:
		score += entropyMediumPoints
	case entropy >= entropyLow:
		score += entropyLowPoints
	default:
		score += int(entropy / 2)
	}

	score += diversity.Count() * diversityPoints

	if patterns.SequentialNumbers {
		score -= penaltySequentialNumbers
	}
	if patterns.SequentialLetters {
		score -= penaltySequentialLetters
	}
	if patterns.RepeatedCharacters {
		score -= penaltyRepeatedCharacters
	}
	if patterns.KeyboardPattern {
		score -= penaltyKeyboardPattern
	}
	if patterns.CommonWord {
		score -= penaltyCommonWord
	}
	if patterns.DatePattern {
		score -= penaltyDatePattern
	}

	if estimate != nil {
		score += estimate.Score * estimatorPointsPerLevel
	}

	return max(0, min(100, score))
}

func strengthFor(score int) model.Strength {
	switch {
	case score >= veryStrongThreshold:
		return model.VeryStrong
	case score >= strongThreshold:
		return model.Strong
	case score >= moderateThreshold:
		return model.Moderate
	case score >= weakThreshold:
		return model.Weak
	default:
		return model.VeryWeak
	}
}

// recommendations builds the advisory list in a fixed order: missing
// character classes first, then detected patterns, then length.
func recommendations(password string, patterns model.PatternFlags, diversity model.CharacterDiversity) []string {
	var recs []string

	if !diversity.HasUppercase {
		recs = append(recs, "Add uppercase letters")
	}
	if !diversity.HasLowercase {
		recs = append(recs, "Add lowercase letters")
	}
	if !diversity.HasNumbers {
		recs = append(recs, "Include numbers")
	}
	if !diversity.HasSymbols {
		recs = append(recs, "Add special symbols (!@#$%^&*)")
	}

	if patterns.SequentialNumbers {
		recs = append(recs, "Avoid sequential numbers (123, 456)")
	}
	if patterns.SequentialLetters {
		recs = append(recs, "Avoid sequential letters (abc, xyz)")
	}
	if patterns.RepeatedCharacters {
		recs = append(recs, "Avoid repeating the same character multiple times")
	}
	if patterns.KeyboardPattern {
		recs = append(recs, "Avoid keyboard patterns (qwerty, asdf)")
	}
	if patterns.CommonWord {
		recs = append(recs, "This password is too common - choose something unique")
	}
	if patterns.DatePattern {
		recs = append(recs, "Avoid using dates as they're easy to guess")
	}

	if len(password) < lengthMedium {
		recs = append(recs, "Increase password length to at least 12 characters")
	}

	if len(recs) == 0 {
		recs = append(recs, "Great password! Consider using a password manager to store it securely.")
	}

	return recs
}

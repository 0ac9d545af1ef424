package model

import "fmt"

// Strength is the five-level password strength classification.
type Strength int

const (
	VeryWeak Strength = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

// String returns the human-readable strength label.
func (s Strength) String() string {
	switch s {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// MarshalJSON encodes the strength as its label rather than a bare int.
func (s Strength) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// PatternFlags reports which weak patterns were detected in a password.
// Flags are independent; several may be set at once.
type PatternFlags struct {
	SequentialNumbers  bool `json:"sequential_numbers"`
	SequentialLetters  bool `json:"sequential_letters"`
	RepeatedCharacters bool `json:"repeated_characters"`
	KeyboardPattern    bool `json:"keyboard_pattern"`
	CommonWord         bool `json:"common_word"`
	DatePattern        bool `json:"date_pattern"`
}

// CharacterDiversity reports which character classes appear in a password.
type CharacterDiversity struct {
	HasLowercase bool `json:"has_lowercase"`
	HasUppercase bool `json:"has_uppercase"`
	HasNumbers   bool `json:"has_numbers"`
	HasSymbols   bool `json:"has_symbols"`
	HasSpaces    bool `json:"has_spaces"`
}

// Count returns the number of classes present.
func (d CharacterDiversity) Count() int {
	n := 0
	for _, present := range []bool{d.HasLowercase, d.HasUppercase, d.HasNumbers, d.HasSymbols, d.HasSpaces} {
		if present {
			n++
		}
	}
	return n
}

// StrengthEstimate carries the output of an external strength estimator
// (coarse 0-4 score plus textual feedback). The analyzer folds these values
// into the result unchanged.
type StrengthEstimate struct {
	Score       int      `json:"score"`
	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// AnalysisResult is the complete output of a single password analysis.
// It is constructed once per call and never mutated afterwards.
type AnalysisResult struct {
	Length             int                `json:"password_length"`
	Score              int                `json:"score"`
	Strength           Strength           `json:"strength"`
	EntropyBits        float64            `json:"entropy_bits"`
	Patterns           PatternFlags       `json:"patterns_found"`
	Diversity          CharacterDiversity `json:"character_diversity"`
	CrackTimeEstimates map[string]string  `json:"crack_time_estimates"`
	Recommendations    []string           `json:"recommendations"`
	Estimate           *StrengthEstimate  `json:"estimator,omitempty"`
}

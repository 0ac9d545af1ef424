package model

import (
	"fmt"
	"time"
)

// RiskLevel classifies breach exposure severity from exposure counts.
type RiskLevel int

const (
	RiskSafe RiskLevel = iota
	RiskLow
	RiskModerate
	RiskHigh
	RiskCritical
)

// String returns the human-readable risk label.
func (r RiskLevel) String() string {
	switch r {
	case RiskSafe:
		return "Safe"
	case RiskLow:
		return "Low Risk"
	case RiskModerate:
		return "Moderate Risk"
	case RiskHigh:
		return "High Risk"
	case RiskCritical:
		return "Critical Risk"
	default:
		return fmt.Sprintf("RiskLevel(%d)", int(r))
	}
}

// MarshalJSON encodes the risk level as its label.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// BreachResult is the outcome of a single k-anonymity password check.
type BreachResult struct {
	Breached      bool      `json:"is_breached"`
	ExposureCount int       `json:"exposure_count"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

// BreachRecord is a single breach entry returned by the email breach API.
// Records are passed through to the caller without reinterpretation.
type BreachRecord struct {
	Name        string   `json:"name"`
	Domain      string   `json:"domain"`
	Date        string   `json:"date"`
	DataClasses []string `json:"data_types"`
	Verified    bool     `json:"verified"`
	Description string   `json:"description,omitempty"`
}

// EmailBreachResult is the outcome of an email breach lookup.
type EmailBreachResult struct {
	Email       string         `json:"email"`
	Breached    bool           `json:"breached"`
	BreachCount int            `json:"breach_count"`
	Breaches    []BreachRecord `json:"breaches,omitempty"`
}

// BreachReport aggregates a password check and an optional email check.
type BreachReport struct {
	Timestamp       time.Time          `json:"timestamp"`
	PasswordCheck   BreachResult       `json:"password_check"`
	EmailCheck      *EmailBreachResult `json:"email_check,omitempty"`
	Recommendations []string           `json:"recommendations"`
}

// BatchCheckResult is one entry of a batch password check. The password is
// masked so results can be displayed or logged safely.
type BatchCheckResult struct {
	MaskedPassword string    `json:"password"`
	Breached       bool      `json:"is_breached"`
	ExposureCount  int       `json:"exposure_count"`
	RiskLevel      RiskLevel `json:"risk_level"`
}

// BreachStats summarizes breach checks over a set of passwords.
type BreachStats struct {
	TotalChecked     int            `json:"total_checked"`
	BreachedCount    int            `json:"breached_count"`
	SafeCount        int            `json:"safe_count"`
	BreachPercentage float64        `json:"breach_percentage"`
	TotalExposures   int            `json:"total_exposures"`
	AverageExposures float64        `json:"average_exposures"`
	RiskDistribution map[string]int `json:"risk_distribution"`
}

package breach

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/securepass/securepass-go/internal/model"
)

// GenerateReport runs a password check and, when both an email and an API key
// are supplied, an email check, and merges the outcomes with recommendations.
// Any failed check aborts the report; a partial result never masquerades as a
// clean one.
func (c *Client) GenerateReport(ctx context.Context, password, email, apiKey string) (model.BreachReport, error) {
	passwordCheck, err := c.CheckPassword(ctx, password)
	if err != nil {
		return model.BreachReport{}, err
	}

	report := model.BreachReport{
		Timestamp:     time.Now().UTC(),
		PasswordCheck: passwordCheck,
	}

	if email != "" && apiKey != "" {
		emailCheck, err := c.CheckEmail(ctx, email, apiKey)
		if err != nil {
			return model.BreachReport{}, err
		}
		report.EmailCheck = &emailCheck
	}

	report.Recommendations = reportRecommendations(passwordCheck, report.EmailCheck)
	return report, nil
}

func reportRecommendations(password model.BreachResult, email *model.EmailBreachResult) []string {
	var recs []string

	if password.Breached {
		recs = append(recs,
			fmt.Sprintf("This password has been exposed %d times in data breaches", password.ExposureCount),
			"Change this password immediately",
			"Use a unique password for each account",
			"Enable two-factor authentication where possible",
		)
		if password.ExposureCount > 1000 {
			recs = append(recs, "This is an extremely common password - never use it again")
		}
	} else {
		recs = append(recs,
			"Password not found in known breaches",
			"Still, consider using a password manager",
			"Regularly update your passwords",
		)
	}

	if email != nil && email.Breached {
		recs = append(recs,
			fmt.Sprintf("Your email was found in %d breach(es)", email.BreachCount),
			"Review the affected services and update passwords",
			"Watch for phishing attempts targeting this email",
		)
	}

	return recs
}

// BatchCheck checks each password sequentially. The shared limiter spaces the
// requests; passwords are masked in the results so they can be displayed.
func (c *Client) BatchCheck(ctx context.Context, passwords []string) ([]model.BatchCheckResult, error) {
	results := make([]model.BatchCheckResult, 0, len(passwords))
	for _, password := range passwords {
		check, err := c.CheckPassword(ctx, password)
		if err != nil {
			return nil, err
		}
		results = append(results, model.BatchCheckResult{
			MaskedPassword: strings.Repeat("•", utf8.RuneCountInString(password)),
			Breached:       check.Breached,
			ExposureCount:  check.ExposureCount,
			RiskLevel:      check.RiskLevel,
		})
	}
	return results, nil
}

// Statistics aggregates breach checks over a set of passwords.
func (c *Client) Statistics(ctx context.Context, passwords []string) (model.BreachStats, error) {
	stats := model.BreachStats{
		TotalChecked: len(passwords),
		RiskDistribution: map[string]int{
			model.RiskSafe.String():     0,
			model.RiskLow.String():      0,
			model.RiskModerate.String(): 0,
			model.RiskHigh.String():     0,
			model.RiskCritical.String(): 0,
		},
	}

	for _, password := range passwords {
		check, err := c.CheckPassword(ctx, password)
		if err != nil {
			return model.BreachStats{}, err
		}
		if check.Breached {
			stats.BreachedCount++
			stats.TotalExposures += check.ExposureCount
		}
		stats.RiskDistribution[check.RiskLevel.String()]++
	}

	stats.SafeCount = stats.TotalChecked - stats.BreachedCount
	if stats.TotalChecked > 0 {
		stats.BreachPercentage = float64(stats.BreachedCount) / float64(stats.TotalChecked) * 100
	}
	if stats.BreachedCount > 0 {
		stats.AverageExposures = float64(stats.TotalExposures) / float64(stats.BreachedCount)
	}
	return stats, nil
}

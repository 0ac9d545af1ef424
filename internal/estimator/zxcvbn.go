// Package estimator adapts external password-strength estimators to the
// analyzer.Estimator interface.
package estimator

import (
	"github.com/nbutton23/zxcvbn-go"

	"github.com/securepass/securepass-go/internal/model"
)

// Zxcvbn estimates strength using the zxcvbn pattern-matching estimator.
// The zero value is ready to use.
type Zxcvbn struct{}

// Estimate returns zxcvbn's coarse 0-4 score. The Go port exposes no
// warning or suggestion feedback, so those fields stay empty.
func (Zxcvbn) Estimate(password string) model.StrengthEstimate {
	match := zxcvbn.PasswordStrength(password, nil)
	return model.StrengthEstimate{Score: match.Score}
}

package analyzer

import (
	"regexp"
	"strings"

	"github.com/securepass/securepass-go/internal/model"
)

// keyboardRows are adjacent-key sequences checked as substrings in either
// direction.
var keyboardRows = []string{
	"qwerty", "asdf", "zxcv", "1234", "0987",
	"qwertyuiop", "asdfghjkl", "zxcvbnm",
}

// commonPasswords is a small bundled list of frequently used passwords.
// Membership is an exact, lowercased match against the whole password.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"123456":      {},
	"password123": {},
	"admin":       {},
	"letmein":     {},
	"welcome":     {},
	"monkey":      {},
	"1234567890":  {},
	"qwerty":      {},
	"abc123":      {},
	"password1":   {},
	"123456789":   {},
	"welcome123":  {},
}

// datePattern matches strings resembling dates: separated forms like
// 12/31/1999 or 1999-12-31, and bare 6-8 digit runs like 31121999.
var datePattern = regexp.MustCompile(`\d{2,4}[-/]\d{2}[-/]\d{2,4}|\d{6,8}`)

// CheckPatterns detects common weak patterns in the password. Each flag is
// independent; several may be set at once.
func CheckPatterns(password string) model.PatternFlags {
	lower := strings.ToLower(password)
	return model.PatternFlags{
		SequentialNumbers:  hasSequentialRun(lower, '0', '9'),
		SequentialLetters:  hasSequentialRun(lower, 'a', 'z'),
		RepeatedCharacters: hasRepeatedRun(password),
		KeyboardPattern:    hasKeyboardPattern(lower),
		CommonWord:         isCommonPassword(lower),
		DatePattern:        datePattern.MatchString(password),
	}
}

// hasSequentialRun reports whether s contains a run of 3 or more characters
// within [lo, hi] whose codepoints ascend or descend by exactly one.
func hasSequentialRun(s string, lo, hi byte) bool {
	run := 1
	dir := 0
	for i := 1; i < len(s); i++ {
		prev, cur := s[i-1], s[i]
		if prev < lo || prev > hi || cur < lo || cur > hi {
			run, dir = 1, 0
			continue
		}
		step := int(cur) - int(prev)
		if step != 1 && step != -1 {
			run, dir = 1, 0
			continue
		}
		if step == dir {
			run++
		} else {
			run, dir = 2, step
		}
		if run >= 3 {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any character occurs 3 or more times
// consecutively.
func hasRepeatedRun(s string) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func hasKeyboardPattern(lower string) bool {
	for _, row := range keyboardRows {
		if strings.Contains(lower, row) || strings.Contains(lower, reverse(row)) {
			return true
		}
	}
	return false
}

func isCommonPassword(lower string) bool {
	_, ok := commonPasswords[lower]
	return ok
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

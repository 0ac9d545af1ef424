// Package generator produces candidate passwords using several strategies.
// All randomness comes from crypto/rand; generated output is used as a real
// credential, so a non-cryptographic source is never acceptable here.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/securepass/securepass-go/internal/model"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Characters easily confused when read or transcribed.
	ambiguousChars = "0O1lIo"

	// DefaultLength is used when a spec leaves the length unset.
	DefaultLength = 16
)

var (
	ErrInvalidLength    = errors.New("password length must be positive")
	ErrEmptyPool        = errors.New("no characters available with the specified criteria")
	ErrInvalidCount     = errors.New("batch count must be positive")
	ErrInvalidWordCount = errors.New("word count must be positive")
	ErrEmptyPattern     = errors.New("pattern must not be empty")
)

// Random generates a password of spec.Length characters drawn uniformly from
// the pool built from the enabled character classes, minus excluded and
// (optionally) ambiguous characters. When the length allows, at least one
// character from each enabled class is guaranteed.
func Random(spec model.RandomSpec) (string, error) {
	length := spec.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < 0 {
		return "", ErrInvalidLength
	}

	var pool string
	var requiredSets []string
	for _, class := range []struct {
		enabled *bool
		chars   string
	}{
		{spec.Lowercase, lowercaseChars},
		{spec.Uppercase, uppercaseChars},
		{spec.Digits, digitChars},
		{spec.Symbols, symbolChars},
	} {
		if !boolOrDefault(class.enabled, true) {
			continue
		}
		chars := class.chars
		if spec.ExcludeAmbiguous {
			chars = stripChars(chars, ambiguousChars)
		}
		chars = stripChars(chars, spec.ExcludeChars)
		if chars == "" {
			continue
		}
		pool += chars
		requiredSets = append(requiredSets, chars)
	}

	if pool == "" {
		return "", ErrEmptyPool
	}

	result := make([]byte, 0, length)

	// Guarantee one character per enabled class when the length permits.
	if length >= len(requiredSets) {
		for _, charset := range requiredSets {
			ch, err := randChar(charset)
			if err != nil {
				return "", err
			}
			result = append(result, ch)
		}
	}

	for len(result) < length {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// FromPattern generates a password from a template string. Template
// characters map to random draws: l lowercase, L uppercase, d digit,
// s symbol, a alphanumeric, * any. All other characters pass through
// literally.
func FromPattern(pattern string) (string, error) {
	if pattern == "" {
		return "", ErrEmptyPattern
	}

	var b strings.Builder
	b.Grow(len(pattern))
	for _, ch := range pattern {
		var charset string
		switch ch {
		case 'l':
			charset = lowercaseChars
		case 'L':
			charset = uppercaseChars
		case 'd':
			charset = digitChars
		case 's':
			charset = symbolChars
		case 'a':
			charset = lowercaseChars + uppercaseChars + digitChars
		case '*':
			charset = lowercaseChars + uppercaseChars + digitChars + symbolChars
		default:
			b.WriteRune(ch)
			continue
		}
		c, err := randChar(charset)
		if err != nil {
			return "", err
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// Batch generates spec.Count passwords, each from fresh independent random
// draws against spec.Random.
func Batch(spec model.BatchSpec) ([]string, error) {
	if spec.Count <= 0 {
		return nil, ErrInvalidCount
	}
	passwords := make([]string, 0, spec.Count)
	for n := 0; n < spec.Count; n++ {
		p, err := Random(spec.Random)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}

func stripChars(s, remove string) string {
	if remove == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if !strings.ContainsRune(remove, ch) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// randIndex picks a uniform index in [0, n) using crypto/rand.
func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}

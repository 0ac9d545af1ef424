package generator

import (
	"strings"

	"github.com/securepass/securepass-go/internal/model"
)

// Bundled word lists for memorable passwords and passphrases.
var (
	adjectives = []string{
		"happy", "brave", "quick", "smart", "bright", "strong", "swift", "bold",
		"fierce", "gentle", "mighty", "noble", "proud", "royal", "sharp", "wise",
	}

	nouns = []string{
		"eagle", "tiger", "mountain", "ocean", "thunder", "lightning", "dragon",
		"phoenix", "warrior", "hunter", "guardian", "champion", "legend", "hero",
	}

	verbs = []string{
		"runs", "flies", "jumps", "fights", "guards", "protects", "strikes",
		"soars", "climbs", "dives", "hunts", "explores", "conquers", "defends",
	}

	passphraseExtras = []string{
		"book", "tree", "river", "cloud", "star", "moon", "sun",
		"fire", "water", "earth", "wind", "stone", "crystal",
		"shadow", "light", "dream", "spirit", "heart", "soul",
	}
)

const (
	consonants = "bcdfghjklmnpqrstvwxyz"
	vowels     = "aeiou"
)

// Memorable generates a password by rotating through adjective, noun and
// verb words, optionally capitalizing alternating words and appending random
// digits and symbols. A word count below 2 is raised to 2.
func Memorable(spec model.MemorableSpec) (string, error) {
	wordCount := max(spec.WordCount, 2)

	var b strings.Builder
	for i := 0; i < wordCount; i++ {
		var list []string
		switch i % 3 {
		case 0:
			list = adjectives
		case 1:
			list = nouns
		default:
			list = verbs
		}
		word, err := randWord(list)
		if err != nil {
			return "", err
		}
		if spec.Capitalize && i%2 == 0 {
			word = capitalize(word)
		}
		b.WriteString(word)
	}

	if spec.AddNumbers {
		// 2-4 random digits.
		n, err := randIndex(3)
		if err != nil {
			return "", err
		}
		digits, err := randString(digitChars, n+2)
		if err != nil {
			return "", err
		}
		b.WriteString(digits)
	}

	if spec.AddSymbols {
		// 1-2 random symbols.
		n, err := randIndex(2)
		if err != nil {
			return "", err
		}
		symbols, err := randString(symbolChars, n+1)
		if err != nil {
			return "", err
		}
		b.WriteString(symbols)
	}

	return b.String(), nil
}

// Pronounceable generates a password from consonant/vowel syllable templates
// until the target length is reached, optionally reserving room for a digit
// and symbol suffix.
func Pronounceable(spec model.PronounceableSpec) (string, error) {
	length := spec.Length
	if length == 0 {
		length = 12
	}
	if length < 0 {
		return "", ErrInvalidLength
	}

	target := length
	if spec.AddNumbers {
		target -= 4
	}
	if spec.AddSymbols {
		target -= 2
	}
	target = max(target, 0)

	syllableTemplates := []string{"cv", "cvc", "vc"}

	var b strings.Builder
	for b.Len() < target {
		idx, err := randIndex(len(syllableTemplates))
		if err != nil {
			return "", err
		}
		var syllable strings.Builder
		for _, kind := range syllableTemplates[idx] {
			charset := vowels
			if kind == 'c' {
				charset = consonants
			}
			ch, err := randChar(charset)
			if err != nil {
				return "", err
			}
			syllable.WriteByte(ch)
		}
		text := syllable.String()
		capRoll, err := randIndex(3)
		if err != nil {
			return "", err
		}
		if b.Len() == 0 || capRoll == 0 {
			text = capitalize(text)
		}
		b.WriteString(text)
	}

	password := b.String()
	if len(password) > target {
		password = password[:target]
	}

	if spec.AddNumbers {
		digits, err := randString(digitChars, 4)
		if err != nil {
			return "", err
		}
		password += digits
	}
	if spec.AddSymbols {
		symbols, err := randString(symbolChars, 2)
		if err != nil {
			return "", err
		}
		password += symbols
	}

	return password, nil
}

// Passphrase generates spec.WordCount words sampled independently (with
// replacement) from the bundled word list, joined by the separator.
func Passphrase(spec model.PassphraseSpec) (string, error) {
	if spec.WordCount <= 0 {
		return "", ErrInvalidWordCount
	}

	wordList := make([]string, 0, len(adjectives)+len(nouns)+len(passphraseExtras))
	wordList = append(wordList, adjectives...)
	wordList = append(wordList, nouns...)
	wordList = append(wordList, passphraseExtras...)

	words := make([]string, 0, spec.WordCount)
	for n := 0; n < spec.WordCount; n++ {
		word, err := randWord(wordList)
		if err != nil {
			return "", err
		}
		if spec.CapitalizeWords {
			word = capitalize(word)
		}
		words = append(words, word)
	}

	return strings.Join(words, spec.Separator), nil
}

// SuggestionFor returns recommended generator settings for a purpose along
// with a freshly generated example. Unknown purposes fall back to "general".
func SuggestionFor(purpose string) (model.Suggestion, error) {
	switch purpose {
	case "high_security":
		example, err := Random(model.RandomSpec{Length: 24})
		if err != nil {
			return model.Suggestion{}, err
		}
		return model.Suggestion{
			Purpose:  purpose,
			Length:   24,
			Pattern:  "Random with all character types",
			Example:  example,
			Strength: "Very Strong",
		}, nil
	case "memorable":
		example, err := Memorable(model.MemorableSpec{WordCount: 4, AddNumbers: true, AddSymbols: true, Capitalize: true})
		if err != nil {
			return model.Suggestion{}, err
		}
		return model.Suggestion{
			Purpose:  purpose,
			Length:   len(example),
			Pattern:  "Word combination with numbers and symbols",
			Example:  example,
			Strength: "Strong",
		}, nil
	case "passphrase":
		example, err := Passphrase(model.PassphraseSpec{WordCount: 6, Separator: "-"})
		if err != nil {
			return model.Suggestion{}, err
		}
		return model.Suggestion{
			Purpose:  purpose,
			Length:   len(example),
			Pattern:  "Multiple words separated by hyphens",
			Example:  example,
			Strength: "Very Strong",
		}, nil
	case "pin":
		off := false
		example, err := Random(model.RandomSpec{Length: 6, Lowercase: &off, Uppercase: &off, Symbols: &off})
		if err != nil {
			return model.Suggestion{}, err
		}
		return model.Suggestion{
			Purpose:  purpose,
			Length:   6,
			Pattern:  "Digits only",
			Example:  example,
			Strength: "Weak (for PINs only)",
		}, nil
	default:
		example, err := Random(model.RandomSpec{Length: DefaultLength})
		if err != nil {
			return model.Suggestion{}, err
		}
		return model.Suggestion{
			Purpose:  "general",
			Length:   DefaultLength,
			Pattern:  "Random with all character types",
			Example:  example,
			Strength: "Strong",
		}, nil
	}
}

func randWord(list []string) (string, error) {
	idx, err := randIndex(len(list))
	if err != nil {
		return "", err
	}
	return list[idx], nil
}

func randString(charset string, n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		b[i] = ch
	}
	return string(b), nil
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

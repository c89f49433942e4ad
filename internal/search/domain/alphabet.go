// Package domain defines the brute-force search model: alphabets, length
// ranges, search inputs, outcomes and background search jobs.
package domain

import (
	"math/big"
	"strings"
	"unicode/utf8"
)

// Character class sets, concatenated in this order when combined.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SpecialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// DefaultCharset is used by the CLI when no charset or class is selected.
	DefaultCharset = DigitChars + LowercaseChars + UppercaseChars
)

// CharClass is a set of enabled character classes.
type CharClass uint8

const (
	Lowercase CharClass = 1 << iota
	Uppercase
	Digits
	Special
)

var charClassNames = []struct {
	class CharClass
	name  string
	chars string
}{
	{Lowercase, "lower", LowercaseChars},
	{Uppercase, "upper", UppercaseChars},
	{Digits, "digits", DigitChars},
	{Special, "special", SpecialChars},
}

// ParseCharClasses parses a comma-separated list of class names
// ("lower", "upper", "digits", "special").
func ParseCharClasses(list string) (CharClass, error) {
	var classes CharClass
	for _, part := range strings.Split(list, ",") {
		name := strings.TrimSpace(strings.ToLower(part))
		if name == "" {
			continue
		}
		found := false
		for _, c := range charClassNames {
			if c.name == name {
				classes |= c.class
				found = true
				break
			}
		}
		if !found {
			return 0, ErrUnknownCharClass
		}
	}
	return classes, nil
}

// Has reports whether c contains class.
func (c CharClass) Has(class CharClass) bool {
	return c&class != 0
}

// String returns the comma-separated class names.
func (c CharClass) String() string {
	names := make([]string, 0, len(charClassNames))
	for _, entry := range charClassNames {
		if c.Has(entry.class) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ",")
}

// Alphabet is the ordered symbol set of the odometer. Symbol order defines
// the enumeration order.
type Alphabet []rune

// ResolveAlphabet builds the search alphabet. A non-empty charset is used
// verbatim; otherwise the enabled classes are concatenated in the fixed order
// lowercase, uppercase, digits, special. Returns ErrEmptyAlphabet when
// nothing is selected and ErrInvalidCharset when charset is not valid UTF-8.
func ResolveAlphabet(charset string, classes CharClass) (Alphabet, error) {
	if charset != "" {
		if !utf8.ValidString(charset) {
			return nil, ErrInvalidCharset
		}
		return Alphabet(charset), nil
	}

	var b strings.Builder
	for _, entry := range charClassNames {
		if classes.Has(entry.class) {
			b.WriteString(entry.chars)
		}
	}
	if b.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	return Alphabet(b.String()), nil
}

// String returns the alphabet as a string.
func (a Alphabet) String() string {
	return string(a)
}

// SpaceSize returns the number of candidates in r over an alphabet of n
// symbols: the sum of n^L for L in [r.Min, r.Max].
func SpaceSize(n int, r Range) *big.Int {
	total := new(big.Int)
	base := big.NewInt(int64(n))
	for length := r.Min; length <= r.Max; length++ {
		total.Add(total, new(big.Int).Exp(base, big.NewInt(int64(length)), nil))
	}
	return total
}

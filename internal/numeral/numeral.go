// Package numeral converts between the numeral systems used by the MHLW
// treatment/sickbed report: ASCII digits, full-width digits and the Roman
// numerals (1-9 range only) that mark emergency phase levels.
package numeral

import (
	"fmt"
	"strings"
)

// System identifies one of the numeral systems observed in the source
// document. The set is closed; the report uses nothing else.
type System int

const (
	SystemASCII System = iota
	SystemFullwidth
	SystemRoman
)

func (s System) String() string {
	return [...]string{"ASCII", "Fullwidth", "Roman"}[s]
}

const (
	fullwidthZero = '０' // U+FF10
	fullwidthNine = '９' // U+FF19

	romanOne  = 'Ⅰ' // U+2160
	romanTwo  = 'Ⅱ' // U+2161
	romanFive = 'Ⅴ' // U+2164
	romanNine = 'Ⅸ' // U+2168
	romanTen  = 'Ⅹ' // U+2169
)

// SystemOf classifies a single rune. The second result is false for runes
// that are a numeral in none of the supported systems.
func SystemOf(r rune) (System, bool) {
	switch {
	case r >= '0' && r <= '9':
		return SystemASCII, true
	case r >= fullwidthZero && r <= fullwidthNine:
		return SystemFullwidth, true
	case r == 'I' || r == 'V' || r == 'X',
		r >= romanOne && r <= romanTen:
		return SystemRoman, true
	}

	return 0, false
}

// FormatError reports a rune that is a digit in neither supported system.
type FormatError struct {
	Rune rune
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("not a digit: %q", e.Rune)
}

// RomanError reports a rune the Roman decoder does not recognize.
type RomanError struct {
	Rune rune
}

func (e *RomanError) Error() string {
	return fmt.Sprintf("invalid roman numeral char %q", e.Rune)
}

// ToHalfDigits translates a string of ASCII and/or full-width digits to an
// ASCII-digit string of the same length, preserving order. Mixed input is
// fine. Any other rune (whitespace included) fails the whole call; nothing
// is dropped to salvage a partial number.
func ToHalfDigits(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch sys, ok := SystemOf(r); {
		case ok && sys == SystemASCII:
			b.WriteRune(r)
		case ok && sys == SystemFullwidth:
			b.WriteRune('0' + (r - fullwidthZero))
		default:
			return "", &FormatError{Rune: r}
		}
	}

	return b.String(), nil
}

// ParseRoman decodes a phase level written in Roman numerals. It supports
// exactly the 1-9 range: ASCII I/V/X, the single-glyph code points Ⅰ-Ⅹ and
// the subtractive pairs IV/IX built from them. Contributions are summed
// without validating canonical form, which is all the report data needs.
func ParseRoman(s string) (uint8, error) {
	var n uint8

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if sys, ok := SystemOf(r); !ok || sys != SystemRoman {
			return 0, &RomanError{Rune: r}
		}

		var k uint8
		switch {
		case r == 'I' || r == romanOne:
			k = 1
			if i+1 < len(runes) {
				switch runes[i+1] {
				case 'V', romanFive:
					k = 4
					i++
				case 'X', romanTen:
					k = 9
					i++
				}
			}
		case r == 'V':
			k = 5
		case r >= romanTwo && r <= romanNine:
			k = uint8(r-romanOne) + 1
		default:
			// X alone or Ⅹ alone never appears outside a subtractive pair.
			return 0, &RomanError{Rune: r}
		}
		n += k
	}

	return n, nil
}

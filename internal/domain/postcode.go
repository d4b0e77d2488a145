package domain

import (
	"strings"
	"unicode"
)

// NormalizePostcode removes every whitespace rune, not just the leading and
// trailing ones ("BS1 6Q" -> "BS16Q"). No other canonicalization is applied.
func NormalizePostcode(postcode string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, postcode)
}

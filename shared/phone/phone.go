// Package phone normalizes customer phone numbers before they are stored.
package phone

import (
	"strings"
	"unicode"
)

// Normalize strips every non-digit character. It is idempotent.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, raw)
}

// CountDigits returns how many ASCII digits raw contains.
func CountDigits(raw string) int {
	count := 0

	for _, r := range raw {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			count++
		}
	}

	return count
}

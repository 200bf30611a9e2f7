// Package normalize provides the text normalization shared by location lookup
// and category filtering.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold trims surrounding whitespace and applies Unicode case folding.
// A fresh Caser is built per call because Casers are stateful.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Equal reports whether a and b are equal after folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Package search ranks and filters events against faceted equality
// filters and free-text queries using ordered-subsequence matching.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes, drops combining marks and recomposes, so
// "García" and "garcia" compare equal after lowering.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and collapses whitespace.
// Stored fields and incoming queries go through the same function so
// comparisons stay symmetric.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

package lookup

import (
	"strings"
	"unicode"
)

// filler tokens that carry no product identity and only defeat matching.
var fillerTokens = map[string]struct{}{
	"ml":      {},
	"new":     {},
	"r":       {},
	"special": {},
	"edition": {},
}

// Normalize canonicalizes a description for comparison: lower-case, strip
// punctuation, drop filler tokens, collapse whitespace.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}

	fields := strings.Fields(sb.String())
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := fillerTokens[f]; drop {
			continue
		}
		kept = append(kept, f)
	}

	return strings.Join(kept, " ")
}

package domain

import (
	"strings"
	"unicode"
)

// Query represents a parsed search input.
type Query struct {
	Raw       string   // Original input, lowercased and trimmed
	Fragments []string // Whitespace-separated, normalized, non-empty
}

// ParseQuery parses user input into a structured query.
// Examples:
//   - "le guin" -> ["le", "guin"]
//   - "  Sci-Fi " -> ["scifi"]
func ParseQuery(input string) *Query {
	input = strings.TrimSpace(strings.ToLower(input))
	q := &Query{Raw: input}
	for _, field := range strings.Fields(input) {
		if frag := normalizeFragment(field); frag != "" {
			q.Fragments = append(q.Fragments, frag)
		}
	}
	return q
}

// Empty reports whether the query has nothing to match.
func (q *Query) Empty() bool {
	return q == nil || len(q.Fragments) == 0
}

// Words splits free text into normalized words for matching.
// Example: "Gödel, Escher, Bach" -> ["gödel", "escher", "bach"]
func Words(s string) []string {
	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := normalizeFragment(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// normalizeFragment keeps letters and digits, lowercased.
func normalizeFragment(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

package drill

import "strings"

// trailingPunct is the set of punctuation stripped from the end of an
// answer before comparison.
const trailingPunct = ".,;:!?"

// Normalize canonicalizes an answer for comparison: lowercase, trimmed,
// trailing punctuation stripped, whitespace runs collapsed to one space.
// Total and idempotent; applied to both learner input and every generated
// candidate answer, so matching is case- and punctuation-insensitive.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, trailingPunct)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

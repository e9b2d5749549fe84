package search

import (
	"strings"
	"unicode"
)

// Tokenize lowercases a query and splits it into alphanumeric tokens,
// dropping single-character noise.
func Tokenize(s string) []string {
	s = strings.ToLower(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	seen := make(map[string]bool)
	for _, f := range fields {
		if len(f) < 2 || seen[f] {
			continue
		}
		tokens = append(tokens, f)
		seen[f] = true
	}
	return tokens
}

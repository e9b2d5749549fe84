package utils

import (
	rndm "math/rand"
	"net/http"
	"strings"

	"cadenza/globals"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// --- Request Helpers ---

// GetUserIDFromRequest returns the authenticated user ID stored on the
// request context, or "" when the request is anonymous.
func GetUserIDFromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return id
	}
	return ""
}

// --- List Helpers ---

// SplitCSV takes a comma-separated string and returns the trimmed, non-empty
// entries in input order.
func SplitCSV(input string) []string {
	if input == "" {
		return []string{}
	}
	var out []string
	for _, p := range strings.Split(input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// SplitTags is SplitCSV plus lowercase normalization and dedup, for
// genre-like tag fields.
func SplitTags(input string) []string {
	parts := SplitCSV(input)
	seen := make(map[string]bool)
	tags := []string{}
	for _, p := range parts {
		tag := strings.ToLower(p)
		if !seen[tag] {
			tags = append(tags, tag)
			seen[tag] = true
		}
	}
	return tags
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

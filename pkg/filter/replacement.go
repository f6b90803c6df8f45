package filter

import "strings"

// ValidateReplacement parses a replacement string into its tokens and
// reports whether it is usable. A replacement is valid when it is empty,
// when it contains no comma, or when every comma is followed by exactly one
// space and preceded by none, so that the tokens rejoin byte-for-byte with
// ", ". The engine treats invalid replacements as delete-only; the
// authoring surface should flag them to the user.
func ValidateReplacement(replacement string) ([]string, bool) {
	if replacement == "" {
		return nil, true
	}
	if !strings.Contains(replacement, ",") {
		return []string{replacement}, true
	}

	tokens := strings.Split(replacement, ", ")
	for _, token := range tokens {
		if token == "" || token != strings.TrimSpace(token) || strings.Contains(token, ",") {
			return nil, false
		}
	}
	return tokens, true
}

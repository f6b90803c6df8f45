package filter

import (
	"regexp"
	"strings"
)

// Pattern is a compiled keyword: either a case-insensitive regex anchored to
// the whole tag, or a literal exact match when compilation failed. Compile
// failure is a normal fallback path, not an error state.
type Pattern struct {
	re      *regexp.Regexp
	literal string
}

// CompilePattern compiles a raw keyword. The keyword must match the entire
// tag, so an unanchored keyword like "hat" matches "hat" but not "red hat".
func CompilePattern(keyword string) Pattern {
	re, err := regexp.Compile(`(?i)^(?:` + keyword + `)$`)
	if err != nil {
		return Pattern{literal: keyword}
	}
	return Pattern{re: re}
}

// IsLiteral reports whether the keyword fell back to literal matching.
func (p Pattern) IsLiteral() bool {
	return p.re == nil
}

// Matches tests the pattern against the raw tag text.
func (p Pattern) Matches(tag string) bool {
	if p.re == nil {
		return strings.EqualFold(tag, p.literal)
	}
	return p.re.MatchString(tag)
}

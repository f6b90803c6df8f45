package filter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SimplifyMode selects the containment relation used by Simplify.
type SimplifyMode int

const (
	// SimplifyModeStrict uses whole-word and bracket-aware containment.
	// Canonical behaviour.
	SimplifyModeStrict SimplifyMode = iota

	// SimplifyModeLoose uses plain case-insensitive substring containment.
	// Legacy behaviour of the flat keyword engine, kept reachable as an
	// engine option.
	SimplifyModeLoose
)

var bracketGroup = regexp.MustCompile(`\(([^()]*)\)`)

// Simplify drops every tag that is contained in some other, strictly longer
// tag. A tag is never dropped for a case-insensitive duplicate of itself.
// Order is preserved; containment is always evaluated against the full
// input list, which makes the pass idempotent.
func Simplify(tags []string, mode SimplifyMode) []string {
	out := make([]string, 0, len(tags))
	for i, tag := range tags {
		if !containedInAny(tag, i, tags, mode) {
			out = append(out, tag)
		}
	}
	return out
}

func containedInAny(tag string, index int, tags []string, mode SimplifyMode) bool {
	for j, other := range tags {
		if j == index {
			continue
		}
		if strings.EqualFold(tag, other) {
			continue
		}
		if len(other) <= len(tag) {
			continue
		}

		if mode == SimplifyModeLoose {
			if strings.Contains(strings.ToLower(other), strings.ToLower(tag)) {
				return true
			}
			continue
		}

		if containsWord(other, tag) || containsBracketed(other, tag) {
			return true
		}
	}
	return false
}

// containsWord reports whether tag occurs in other as a whole word. A match
// glued to alphanumeric characters on both sides does not count, so
// "censored" is not contained in "uncensored".
func containsWord(other, tag string) bool {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(tag) + `\b`)
	if err != nil {
		return false
	}

	loc := re.FindStringIndex(other)
	if loc == nil {
		return false
	}

	leftGlued := false
	if loc[0] > 0 {
		r, _ := utf8.DecodeLastRuneInString(other[:loc[0]])
		leftGlued = isAlnum(r)
	}
	rightGlued := false
	if loc[1] < len(other) {
		r, _ := utf8.DecodeRuneInString(other[loc[1]:])
		rightGlued = isAlnum(r)
	}

	return !(leftGlued && rightGlued)
}

// containsBracketed handles "main (qualifier)" shapes: tag is contained in
// other when their main words are equal and every bracket group of tag is a
// substring of some bracket group of other, so "kaga (azur lane)" absorbs
// "azur lane" style variants sharing the same main word.
func containsBracketed(other, tag string) bool {
	tagMain, tagBrackets := splitBrackets(tag)
	otherMain, otherBrackets := splitBrackets(other)

	if tagMain == "" || otherMain == "" {
		return false
	}
	if !strings.EqualFold(tagMain, otherMain) {
		return false
	}

	for _, tb := range tagBrackets {
		found := false
		for _, ob := range otherBrackets {
			if strings.Contains(strings.ToLower(ob), strings.ToLower(tb)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// splitBrackets extracts all (...) groups from a tag; the remainder with
// whitespace collapsed is the main word.
func splitBrackets(tag string) (string, []string) {
	var brackets []string
	for _, m := range bracketGroup.FindAllStringSubmatch(tag, -1) {
		content := strings.TrimSpace(m[1])
		if content != "" {
			brackets = append(brackets, content)
		}
	}

	main := bracketGroup.ReplaceAllString(tag, " ")
	main = strings.Join(strings.Fields(main), " ")
	return main, brackets
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

package pipeline

import (
	"regexp"
	"strings"
)

// categoryWords are marker words that survive extraction but are never tags.
var categoryWords = map[string]struct{}{
	"artist":    {},
	"character": {},
	"copyright": {},
	"tag":       {},
	"metadata":  {},
	"general":   {},
}

// weightSuffix matches a trailing post-count weight like " 1.4M" or " 169".
var weightSuffix = regexp.MustCompile(`\s+\d+(\.\d+)?[kM]?\s*$`)

// CleanContent splits comma-joined content into tags: category markers and
// trailing weights are stripped, whitespace runs collapse to single spaces,
// and duplicates are removed case-insensitively keeping the first
// occurrence's original casing. Order is preserved.
func CleanContent(raw string) []string {
	pieces := strings.Split(raw, ",")

	seen := make(map[string]struct{}, len(pieces))
	tags := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		tag := strings.TrimSpace(piece)
		if _, ok := categoryWords[strings.ToLower(tag)]; ok {
			continue
		}

		tag = weightSuffix.ReplaceAllString(tag, "")
		tag = strings.Join(strings.Fields(tag), " ")
		if tag == "" {
			continue
		}

		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

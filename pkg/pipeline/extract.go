package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// categoryLabel matches a category label at the start of a Gelbooru segment.
	categoryLabel = regexp.MustCompile(`(?i)^(artist|character|copyright|metadata|tag)\s+(.*)$`)

	// labeledTrailer strips the post-count run of a labeled segment, including a
	// next-segment category label that got glued on through a missing separator.
	labeledTrailer = regexp.MustCompile(`(?i)\s+\d+\s*(artist|character|copyright|metadata|tag)?.*$`)

	// numericTrailer strips a plain trailing count run.
	numericTrailer = regexp.MustCompile(`\s+\d+.*$`)
)

// ExtractContent reduces raw input to a single comma-joined content string
// using format-specific rules. The result is not yet split into tags.
func ExtractContent(input string, format Format) string {
	switch format {
	case FormatDanbooru:
		return extractDanbooru(input)
	case FormatGelbooru:
		return extractGelbooru(input)
	default:
		return input
	}
}

// extractDanbooru keeps only lines that immediately follow a lone "?" line.
// Everything else is a category header or label and is dropped.
func extractDanbooru(input string) string {
	lines := strings.Split(input, "\n")

	var content []string
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "?" {
			continue
		}
		if i+1 < len(lines) {
			content = append(content, strings.TrimSpace(lines[i+1]))
			i++
		}
	}

	return strings.Join(content, ", ")
}

// extractGelbooru splits on "?" and salvages the tag text from each segment.
// Segments carry a trailing post count, and category labels of the following
// segment can be glued onto that count when separators are missing.
func extractGelbooru(input string) string {
	segments := strings.Split(input, "?")

	var content []string
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		if m := categoryLabel.FindStringSubmatch(segment); m != nil {
			segment = labeledTrailer.ReplaceAllString(m[2], "")
		} else {
			segment = numericTrailer.ReplaceAllString(segment, "")
		}

		segment = strings.TrimSpace(segment)
		if utf8.RuneCountInString(segment) <= 1 {
			continue
		}
		content = append(content, segment)
	}

	return strings.Join(content, ", ")
}

package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Format identifies the source a raw tag export came from.
type Format int

const (
	FormatStandard Format = iota
	FormatDanbooru
	FormatGelbooru
)

func (f Format) String() string {
	switch f {
	case FormatDanbooru:
		return "danbooru"
	case FormatGelbooru:
		return "gelbooru"
	default:
		return "standard"
	}
}

// ParseFormat maps a format name to a Format, for forcing detection from the CLI.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard":
		return FormatStandard, nil
	case "danbooru":
		return FormatDanbooru, nil
	case "gelbooru":
		return FormatGelbooru, nil
	default:
		return FormatStandard, fmt.Errorf("unknown format %q", name)
	}
}

// categoryMarker matches a category header glued to its question mark,
// the shape Gelbooru exports use ("Artist? ...", "Tag? ...").
var categoryMarker = regexp.MustCompile(`(?i)(artist|character|copyright|tag|metadata)\?`)

// DetectFormat classifies raw input into one of the three source formats.
// Every string maps to a format; empty input falls through to standard.
func DetectFormat(input string) Format {
	hasNewline := strings.Contains(input, "\n")
	hasQuery := strings.Contains(input, "?")

	switch {
	case !hasNewline && categoryMarker.MatchString(input):
		return FormatGelbooru
	case hasNewline && hasQuery:
		return FormatDanbooru
	case !hasNewline && hasQuery:
		return FormatGelbooru
	default:
		return FormatStandard
	}
}

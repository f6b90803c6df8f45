package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "danbooru weights are stripped",
			input:    "1boy 1.4M, 1girl 6.1M, original 2.8M",
			expected: []string{"1boy", "1girl", "original"},
		},
		{
			name:     "gelbooru counts and category markers are stripped",
			input:    "Artist, nekotokage, shirayuki tomoe, 1girl, long hair, smile",
			expected: []string{"nekotokage", "shirayuki tomoe", "1girl", "long hair", "smile"},
		},
		{
			name:     "plain list passes through",
			input:    "masterpiece, best quality, 1girl, long hair, blue eyes, school uniform",
			expected: []string{"masterpiece", "best quality", "1girl", "long hair", "blue eyes", "school uniform"},
		},
		{
			name:     "duplicates dedupe case-insensitively keeping first casing",
			input:    "Long Hair, long hair, LONG HAIR, smile",
			expected: []string{"Long Hair", "smile"},
		},
		{
			name:     "whitespace runs collapse",
			input:    "  long \t hair , smile  ",
			expected: []string{"long hair", "smile"},
		},
		{
			name:     "k suffix weights",
			input:    "smile 320k, 1girl 12",
			expected: []string{"smile", "1girl"},
		},
		{
			name:     "category markers match case-insensitively",
			input:    "GENERAL, Tag, metadata, 1girl",
			expected: []string{"1girl"},
		},
		{
			name:     "empty pieces are dropped",
			input:    ", , 1girl, ,",
			expected: []string{"1girl"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanContent(tt.input))
		})
	}
}

func TestCleanContent_Idempotent(t *testing.T) {
	inputs := []string{
		"1boy 1.4M, 1girl 6.1M, original 2.8M",
		"masterpiece, best quality, 1girl",
		"Artist, nekotokage, shirayuki tomoe 939",
	}

	for _, input := range inputs {
		once := CleanContent(input)
		twice := CleanContent(strings.Join(once, ", "))
		assert.Equal(t, once, twice, "clean must be a fixed point for %q", input)
	}
}

func TestCleanContent_NoCaseInsensitiveDuplicates(t *testing.T) {
	tags := CleanContent("Smile, SMILE, smile 12, 1girl, 1Girl")

	seen := map[string]bool{}
	for _, tag := range tags {
		key := strings.ToLower(tag)
		assert.False(t, seen[key], "duplicate tag %q", tag)
		seen[key] = true
	}
}

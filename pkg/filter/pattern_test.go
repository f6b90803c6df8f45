package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		tag      string
		expected bool
	}{
		{
			name:     "plain keyword matches only the whole tag",
			keyword:  "hat",
			tag:      "hat",
			expected: true,
		},
		{
			name:     "plain keyword does not match inside a longer tag",
			keyword:  "hat",
			tag:      "red hat",
			expected: false,
		},
		{
			name:     "matching is case-insensitive",
			keyword:  "hat",
			tag:      "HAT",
			expected: true,
		},
		{
			name:     "regex metacharacters work",
			keyword:  "h.t",
			tag:      "hot",
			expected: true,
		},
		{
			name:     "alternation is contained by the anchors",
			keyword:  "1girl|1boy",
			tag:      "1boy",
			expected: true,
		},
		{
			name:     "wildcard keyword",
			keyword:  "wm.*",
			tag:      "wm logo",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CompilePattern(tt.keyword)
			assert.False(t, p.IsLiteral())
			assert.Equal(t, tt.expected, p.Matches(tt.tag))
		})
	}
}

func TestCompilePattern_LiteralFallback(t *testing.T) {
	// Invalid regex falls back to literal exact matching
	p := CompilePattern("ta[g")
	assert.True(t, p.IsLiteral())

	assert.True(t, p.Matches("ta[g"))
	assert.True(t, p.Matches("TA[G"))
	assert.False(t, p.Matches("tag"))
	assert.False(t, p.Matches("xta[gx"))
}

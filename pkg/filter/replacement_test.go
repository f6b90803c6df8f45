package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReplacement(t *testing.T) {
	tests := []struct {
		name        string
		replacement string
		tokens      []string
		valid       bool
	}{
		{
			name:        "empty is valid with no tokens",
			replacement: "",
			tokens:      nil,
			valid:       true,
		},
		{
			name:        "single token without comma",
			replacement: "clean",
			tokens:      []string{"clean"},
			valid:       true,
		},
		{
			name:        "two tokens",
			replacement: "clean, safe",
			tokens:      []string{"clean", "safe"},
			valid:       true,
		},
		{
			name:        "three tokens",
			replacement: "a, b c, d",
			tokens:      []string{"a", "b c", "d"},
			valid:       true,
		},
		{
			name:        "comma without space",
			replacement: "a,b",
			valid:       false,
		},
		{
			name:        "space before comma",
			replacement: "a , b",
			valid:       false,
		},
		{
			name:        "two spaces after comma",
			replacement: "a,  b",
			valid:       false,
		},
		{
			name:        "trailing comma",
			replacement: "a, ",
			valid:       false,
		},
		{
			name:        "leading separator",
			replacement: ", a",
			valid:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, valid := ValidateReplacement(tt.replacement)
			assert.Equal(t, tt.valid, valid)
			if tt.valid {
				assert.Equal(t, tt.tokens, tokens)
			}
		})
	}
}

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.MasterEnabled)
	assert.False(t, cfg.SimplifyEnabled)
	assert.Empty(t, cfg.Groups)
	assert.Equal(t, SchemaVersion, cfg.SchemaVersion)
}

func TestNewGroup(t *testing.T) {
	g := NewGroup("watermarks", "watermark")

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "watermarks", g.Name)
	assert.True(t, g.Enabled)
	assert.Equal(t, []string{"watermark"}, g.Keywords)

	other := NewGroup("watermarks")
	assert.NotEqual(t, g.ID, other.ID)
}

func TestNewGroup_PlaceholderName(t *testing.T) {
	g := NewGroup("   ")

	require.NotEmpty(t, g.ID)
	assert.Equal(t, "Group "+g.ID[:8], g.Name)
}

func TestMigrateLegacyKeywords(t *testing.T) {
	g := MigrateLegacyKeywords([]string{" watermark ", "", "signature", "   "})

	assert.Equal(t, "Imported keywords", g.Name)
	assert.True(t, g.Enabled)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, []string{"watermark", "signature"}, g.Keywords)
	assert.Empty(t, g.Replacement)
}

func TestMigrateLegacyKeywords_Empty(t *testing.T) {
	g := MigrateLegacyKeywords(nil)

	assert.Equal(t, "Imported keywords", g.Name)
	assert.Empty(t, g.Keywords)
}

package filter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	group := NewGroup("watermarks", "watermark", "signature")
	group.Replacement = "clean"
	cfg := Config{
		MasterEnabled:   true,
		SimplifyEnabled: true,
		Groups:          []Group{group},
		SchemaVersion:   SchemaVersion,
	}
	exportedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	data, err := Export(cfg, exportedAt)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, SchemaVersion, doc.SchemaVersion)
	assert.Equal(t, exportedAt, doc.ExportedAt)
	assert.True(t, doc.MasterEnabled)
	assert.True(t, doc.SimplifyEnabled)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, group.ID, doc.Groups[0].ID)
	assert.Equal(t, []string{"watermark", "signature"}, doc.Groups[0].Keywords)
	assert.Equal(t, "clean", doc.Groups[0].Replacement)
}

func TestImport_Replace(t *testing.T) {
	current := Config{
		MasterEnabled: true,
		Groups:        []Group{NewGroup("old", "hat")},
		SchemaVersion: SchemaVersion,
	}
	data := []byte(`{
		"master_enabled": false,
		"simplify_enabled": true,
		"groups": [
			{"id": "g-1", "name": "watermarks", "keywords": ["watermark"], "replacement": "clean"}
		]
	}`)

	result := Import(current, data, ImportReplace)

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1, result.Added)
	assert.False(t, result.Config.MasterEnabled)
	assert.True(t, result.Config.SimplifyEnabled)
	require.Len(t, result.Config.Groups, 1)
	assert.Equal(t, "g-1", result.Config.Groups[0].ID)
	assert.Equal(t, "watermarks", result.Config.Groups[0].Name)
	assert.True(t, result.Config.Groups[0].Enabled, "enabled defaults to true when absent")
	assert.Equal(t, "clean", result.Config.Groups[0].Replacement)
}

func TestImport_Append(t *testing.T) {
	existing := NewGroup("old", "hat")
	current := Config{
		MasterEnabled:   true,
		SimplifyEnabled: true,
		Groups:          []Group{existing},
		SchemaVersion:   SchemaVersion,
	}
	data := []byte(`{
		"master_enabled": false,
		"groups": [
			{"id": "g-1", "name": "a", "keywords": ["x"]},
			{"id": "g-2", "name": "b", "keywords": ["y"]}
		]
	}`)

	result := Import(current, data, ImportAppend)

	require.True(t, result.Success)
	assert.Equal(t, 2, result.Added)
	// Append keeps the current settings.
	assert.True(t, result.Config.MasterEnabled)
	assert.True(t, result.Config.SimplifyEnabled)
	require.Len(t, result.Config.Groups, 3)
	assert.Equal(t, existing.ID, result.Config.Groups[0].ID)
	// Appended groups get fresh ids to avoid collisions.
	assert.NotEqual(t, "g-1", result.Config.Groups[1].ID)
	assert.NotEqual(t, "g-2", result.Config.Groups[2].ID)
	assert.NotEqual(t, result.Config.Groups[1].ID, result.Config.Groups[2].ID)
	// The current config is not mutated.
	assert.Len(t, current.Groups, 1)
}

func TestImport_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"missing master_enabled", `{"groups": []}`},
		{"missing groups", `{"master_enabled": true}`},
		{"group missing id", `{"master_enabled": true, "groups": [{"name": "a", "keywords": []}]}`},
		{"group empty id", `{"master_enabled": true, "groups": [{"id": "", "name": "a", "keywords": []}]}`},
		{"group missing name", `{"master_enabled": true, "groups": [{"id": "g-1", "keywords": []}]}`},
		{"group missing keywords", `{"master_enabled": true, "groups": [{"id": "g-1", "name": "a"}]}`},
		{"duplicate group id", `{"master_enabled": true, "groups": [
			{"id": "g-1", "name": "a", "keywords": []},
			{"id": "g-1", "name": "b", "keywords": []}
		]}`},
	}

	current := Config{
		MasterEnabled: true,
		Groups:        []Group{NewGroup("kept", "hat")},
		SchemaVersion: SchemaVersion,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Import(current, []byte(tt.data), ImportReplace)

			assert.False(t, result.Success)
			assert.NotEmpty(t, result.Error)
			assert.Zero(t, result.Added)
			// A failed import echoes back the untouched configuration.
			assert.Equal(t, current, result.Config)
		})
	}
}

func TestImport_BlankNameGetsPlaceholder(t *testing.T) {
	data := []byte(`{"master_enabled": true, "groups": [
		{"id": "0f3c9a1e-aaaa-bbbb-cccc-000000000000", "name": "", "keywords": ["x"]}
	]}`)

	result := Import(DefaultConfig(), data, ImportReplace)

	require.True(t, result.Success)
	assert.Equal(t, "Group 0f3c9a1e", result.Config.Groups[0].Name)
}

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mwantia/tagsift/pkg/db/migrations"
	"github.com/mwantia/tagsift/pkg/db/models"
	"github.com/mwantia/tagsift/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := NewSQLiteStore(SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "tagsift.db"),
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, st.Connect(ctx))
	require.NoError(t, st.Migrate(ctx))

	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSQLiteStore_LoadConfigEmpty(t *testing.T) {
	st := newTestStore(t)

	cfg, err := st.LoadConfig(context.Background())
	require.NoError(t, err)

	assert.False(t, cfg.MasterEnabled)
	assert.False(t, cfg.SimplifyEnabled)
	assert.Empty(t, cfg.Groups)
	assert.Equal(t, filter.SchemaVersion, cfg.SchemaVersion)
}

func TestSQLiteStore_SaveLoadRoundtrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := filter.NewGroup("watermarks", "watermark", "signature")
	first.Replacement = "clean"
	second := filter.NewGroup("quality", "low quality")
	second.Enabled = false

	cfg := filter.Config{
		MasterEnabled:   true,
		SimplifyEnabled: true,
		Groups:          []filter.Group{first, second},
		SchemaVersion:   filter.SchemaVersion,
	}
	require.NoError(t, st.SaveConfig(ctx, cfg))

	loaded, err := st.LoadConfig(ctx)
	require.NoError(t, err)

	assert.True(t, loaded.MasterEnabled)
	assert.True(t, loaded.SimplifyEnabled)
	require.Len(t, loaded.Groups, 2)
	assert.Equal(t, first.ID, loaded.Groups[0].ID)
	assert.Equal(t, []string{"watermark", "signature"}, loaded.Groups[0].Keywords)
	assert.Equal(t, "clean", loaded.Groups[0].Replacement)
	assert.Equal(t, second.ID, loaded.Groups[1].ID)
	assert.False(t, loaded.Groups[1].Enabled)
}

func TestSQLiteStore_SaveConfigReplacesGroups(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	old := filter.NewGroup("old", "hat")
	require.NoError(t, st.SaveConfig(ctx, filter.Config{
		MasterEnabled: true,
		Groups:        []filter.Group{old},
		SchemaVersion: filter.SchemaVersion,
	}))

	replacement := filter.NewGroup("new", "watermark")
	require.NoError(t, st.SaveConfig(ctx, filter.Config{
		MasterEnabled: true,
		Groups:        []filter.Group{replacement},
		SchemaVersion: filter.SchemaVersion,
	}))

	groups, err := st.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, replacement.ID, groups[0].ID)
}

func TestSQLiteStore_GroupCRUD(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := filter.NewGroup("a", "hat")
	b := filter.NewGroup("b", "watermark")
	require.NoError(t, st.CreateGroup(ctx, a))
	require.NoError(t, st.CreateGroup(ctx, b))

	// Creation order defines position order.
	groups, err := st.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, a.ID, groups[0].ID)
	assert.Equal(t, b.ID, groups[1].ID)

	a.Name = "renamed"
	a.Keywords = []string{"hat", "cap"}
	a.Replacement = "headwear"
	require.NoError(t, st.UpdateGroup(ctx, a))

	got, err := st.GetGroup(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, []string{"hat", "cap"}, got.Keywords)
	assert.Equal(t, "headwear", got.Replacement)

	require.NoError(t, st.SetGroupEnabled(ctx, b.ID, false))
	got, err = st.GetGroup(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	require.NoError(t, st.DeleteGroup(ctx, a.ID))
	groups, err = st.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, b.ID, groups[0].ID)
}

func TestSQLiteStore_MoveGroup(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := filter.NewGroup("a", "x")
	b := filter.NewGroup("b", "y")
	c := filter.NewGroup("c", "z")
	for _, g := range []filter.Group{a, b, c} {
		require.NoError(t, st.CreateGroup(ctx, g))
	}

	require.NoError(t, st.MoveGroup(ctx, c.ID, 0))

	groups, err := st.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, c.ID, groups[0].ID)
	assert.Equal(t, a.ID, groups[1].ID)
	assert.Equal(t, b.ID, groups[2].ID)

	// Out-of-range positions clamp to the ends.
	require.NoError(t, st.MoveGroup(ctx, c.ID, 99))
	groups, err = st.ListGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.ID, groups[2].ID)

	assert.ErrorIs(t, st.MoveGroup(ctx, "missing", 0), gorm.ErrRecordNotFound)
}

func TestSQLiteStore_UnknownGroupID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.GetGroup(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, st.DeleteGroup(ctx, "missing"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, st.SetGroupEnabled(ctx, "missing", true), gorm.ErrRecordNotFound)
}

func TestSQLiteStore_SettingsToggles(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SetMasterEnabled(ctx, true))
	require.NoError(t, st.SetSimplifyEnabled(ctx, true))

	cfg, err := st.LoadConfig(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.MasterEnabled)
	assert.True(t, cfg.SimplifyEnabled)

	require.NoError(t, st.SetMasterEnabled(ctx, false))

	cfg, err = st.LoadConfig(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.MasterEnabled)
	assert.True(t, cfg.SimplifyEnabled)
}

func TestMigrator_LiftsLegacyKeywords(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seed := []models.LegacyKeyword{
		{Keyword: "watermark"},
		{Keyword: "signature"},
	}
	for i := range seed {
		require.NoError(t, st.DB().Create(&seed[i]).Error)
	}

	migrator := migrations.NewMigrator(st.DB())
	require.NoError(t, migrator.Migrate(ctx))

	groups, err := st.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Imported keywords", groups[0].Name)
	assert.True(t, groups[0].Enabled)
	assert.Equal(t, []string{"watermark", "signature"}, groups[0].Keywords)

	var remaining int64
	require.NoError(t, st.DB().Model(&models.LegacyKeyword{}).Count(&remaining).Error)
	assert.Zero(t, remaining)

	// Running again must not duplicate the lifted group.
	require.NoError(t, migrator.Migrate(ctx))
	groups, err = st.ListGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestMigrator_Status(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	migrator := migrations.NewMigrator(st.DB())
	require.NoError(t, migrator.Migrate(ctx))

	statuses, err := migrator.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.True(t, s.Applied, "migration %d should be applied", s.Version)
	}
}

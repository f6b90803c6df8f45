package cli

import (
	"context"
	"fmt"

	config "github.com/mwantia/tagsift/internal/config/server"
	"github.com/mwantia/tagsift/pkg/db/migrations"
	"github.com/mwantia/tagsift/pkg/db/store"
)

// openStore loads the server configuration, opens the sqlite store and runs
// pending migrations. The caller owns the returned store.
func openStore(ctx context.Context) (*store.SQLiteStore, *config.BaseServerConfig, error) {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	st, err := store.NewSQLiteStore(store.SQLiteConfig{
		Path: cfg.Store.SQLite.Path,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := st.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect configuration store: %w", err)
	}
	if err := migrations.NewMigrator(st.DB()).Migrate(ctx); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to migrate configuration store: %w", err)
	}

	return st, cfg, nil
}

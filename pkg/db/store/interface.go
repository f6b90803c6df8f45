package store

import (
	"context"

	"github.com/mwantia/tagsift/pkg/filter"
)

// ConfigStore defines the persistence interface for filter configuration
type ConfigStore interface {
	// Lifecycle
	Connect(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Health(ctx context.Context) error

	// Configuration as a whole
	LoadConfig(ctx context.Context) (filter.Config, error)
	SaveConfig(ctx context.Context, cfg filter.Config) error

	// Group operations
	CreateGroup(ctx context.Context, group filter.Group) error
	GetGroup(ctx context.Context, id string) (filter.Group, error)
	ListGroups(ctx context.Context) ([]filter.Group, error)
	UpdateGroup(ctx context.Context, group filter.Group) error
	DeleteGroup(ctx context.Context, id string) error
	MoveGroup(ctx context.Context, id string, position int) error
	SetGroupEnabled(ctx context.Context, id string, enabled bool) error

	// Settings toggles
	SetMasterEnabled(ctx context.Context, enabled bool) error
	SetSimplifyEnabled(ctx context.Context, enabled bool) error
}

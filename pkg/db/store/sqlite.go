package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mwantia/tagsift/pkg/db/models"
	"github.com/mwantia/tagsift/pkg/filter"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteStore implements ConfigStore using SQLite
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// DB returns the underlying GORM database instance
func (s *SQLiteStore) DB() *gorm.DB {
	return s.db
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path         string
	MaxOpenConns int
	LogLevel     logger.LogLevel
}

// NewSQLiteStore creates a new SQLite-backed configuration store
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	// Default to silent logging
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Silent
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Connect initializes the database connection
func (s *SQLiteStore) Connect(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(1) // SQLite only supports 1 writer
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

// Migrate runs database migrations
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&models.FilterSettings{},
		&models.FilterGroup{},
		&models.LegacyKeyword{},
	)
}

// Health checks database connectivity
func (s *SQLiteStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Configuration

// LoadConfig assembles the full filter configuration. An empty database
// yields the defaults; corrupt rows surface as errors so the caller can
// fall back to defaults explicitly.
func (s *SQLiteStore) LoadConfig(ctx context.Context) (filter.Config, error) {
	cfg := filter.DefaultConfig()

	var settings models.FilterSettings
	err := s.db.WithContext(ctx).First(&settings).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First run, keep defaults
	case err != nil:
		return cfg, fmt.Errorf("failed to load filter settings: %w", err)
	default:
		cfg.MasterEnabled = settings.MasterEnabled
		cfg.SimplifyEnabled = settings.SimplifyEnabled
		cfg.SchemaVersion = settings.SchemaVersion
	}

	groups, err := s.ListGroups(ctx)
	if err != nil {
		return cfg, err
	}
	cfg.Groups = groups

	return cfg, nil
}

// SaveConfig persists the configuration wholesale: settings row plus the
// full ordered group list.
func (s *SQLiteStore) SaveConfig(ctx context.Context, cfg filter.Config) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := getOrCreateSettings(tx)
		if err != nil {
			return err
		}

		settings.MasterEnabled = cfg.MasterEnabled
		settings.SimplifyEnabled = cfg.SimplifyEnabled
		settings.SchemaVersion = cfg.SchemaVersion
		if err := tx.Save(settings).Error; err != nil {
			return fmt.Errorf("failed to save filter settings: %w", err)
		}

		// Replace the whole group list; positions are the slice order
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.FilterGroup{}).Error; err != nil {
			return fmt.Errorf("failed to clear filter groups: %w", err)
		}

		for i, group := range cfg.Groups {
			row, err := groupToRow(group, i)
			if err != nil {
				return err
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save group %s: %w", group.ID, err)
			}
		}

		return nil
	})
}

// Group operations

func (s *SQLiteStore) CreateGroup(ctx context.Context, group filter.Group) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.FilterGroup{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count filter groups: %w", err)
	}

	row, err := groupToRow(group, int(count))
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *SQLiteStore) GetGroup(ctx context.Context, id string) (filter.Group, error) {
	var row models.FilterGroup
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return filter.Group{}, err
	}
	return groupFromRow(row)
}

func (s *SQLiteStore) ListGroups(ctx context.Context) ([]filter.Group, error) {
	var rows []models.FilterGroup
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list filter groups: %w", err)
	}

	groups := make([]filter.Group, 0, len(rows))
	for _, row := range rows {
		group, err := groupFromRow(row)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *SQLiteStore) UpdateGroup(ctx context.Context, group filter.Group) error {
	var row models.FilterGroup
	if err := s.db.WithContext(ctx).Where("id = ?", group.ID).First(&row).Error; err != nil {
		return err
	}

	row.Name = group.Name
	row.Enabled = group.Enabled
	row.Replacement = group.Replacement
	if err := row.SetKeywordList(group.Keywords); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *SQLiteStore) DeleteGroup(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.FilterGroup{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MoveGroup shifts a group to the given position in the execution order and
// renumbers the remaining groups. Positions outside the list clamp to its
// ends.
func (s *SQLiteStore) MoveGroup(ctx context.Context, id string, position int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []models.FilterGroup
		if err := tx.Order("position ASC").Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to list filter groups: %w", err)
		}

		from := -1
		for i, row := range rows {
			if row.ID == id {
				from = i
				break
			}
		}
		if from < 0 {
			return gorm.ErrRecordNotFound
		}

		moved := rows[from]
		rows = append(rows[:from], rows[from+1:]...)

		if position < 0 {
			position = 0
		}
		if position > len(rows) {
			position = len(rows)
		}
		rows = append(rows[:position], append([]models.FilterGroup{moved}, rows[position:]...)...)

		for i := range rows {
			if err := tx.Model(&models.FilterGroup{}).
				Where("id = ?", rows[i].ID).
				Update("position", i).Error; err != nil {
				return fmt.Errorf("failed to renumber group %s: %w", rows[i].ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) SetGroupEnabled(ctx context.Context, id string, enabled bool) error {
	result := s.db.WithContext(ctx).
		Model(&models.FilterGroup{}).
		Where("id = ?", id).
		Update("enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Settings toggles

func (s *SQLiteStore) SetMasterEnabled(ctx context.Context, enabled bool) error {
	return s.updateSettings(ctx, func(settings *models.FilterSettings) {
		settings.MasterEnabled = enabled
	})
}

func (s *SQLiteStore) SetSimplifyEnabled(ctx context.Context, enabled bool) error {
	return s.updateSettings(ctx, func(settings *models.FilterSettings) {
		settings.SimplifyEnabled = enabled
	})
}

func (s *SQLiteStore) updateSettings(ctx context.Context, apply func(*models.FilterSettings)) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := getOrCreateSettings(tx)
		if err != nil {
			return err
		}
		apply(settings)
		return tx.Save(settings).Error
	})
}

func getOrCreateSettings(tx *gorm.DB) (*models.FilterSettings, error) {
	var settings models.FilterSettings
	err := tx.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.FilterSettings{SchemaVersion: filter.SchemaVersion}
		if err := tx.Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create filter settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load filter settings: %w", err)
	}
	return &settings, nil
}

func groupToRow(group filter.Group, position int) (models.FilterGroup, error) {
	row := models.FilterGroup{
		ID:          group.ID,
		Name:        group.Name,
		Enabled:     group.Enabled,
		Position:    position,
		Replacement: group.Replacement,
	}
	if err := row.SetKeywordList(group.Keywords); err != nil {
		return models.FilterGroup{}, err
	}
	return row, nil
}

func groupFromRow(row models.FilterGroup) (filter.Group, error) {
	keywords, err := row.KeywordList()
	if err != nil {
		return filter.Group{}, err
	}
	return filter.Group{
		ID:          row.ID,
		Name:        row.Name,
		Enabled:     row.Enabled,
		Keywords:    keywords,
		Replacement: row.Replacement,
	}, nil
}

package models

import "time"

// FilterSettings is a single-row table holding the engine toggles.
type FilterSettings struct {
	ID              uint `gorm:"primaryKey"`
	MasterEnabled   bool `gorm:"not null"`
	SimplifyEnabled bool `gorm:"not null"`
	SchemaVersion   int  `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

package models

import "time"

// LegacyKeyword is a row of the version 1 flat keyword schema. It is only
// read by the migration that lifts the flat list into a filter group.
type LegacyKeyword struct {
	ID      uint   `gorm:"primaryKey"`
	Keyword string `gorm:"type:text;not null"`

	CreatedAt time.Time
}

package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// FilterGroup persists one filter rule group. Position preserves execution
// order; keywords are stored as a JSON array in a text column.
type FilterGroup struct {
	ID          string `gorm:"primaryKey;type:text"`
	Name        string `gorm:"type:text;not null"`
	Enabled     bool   `gorm:"not null"`
	Position    int    `gorm:"not null;index"`
	Keywords    string `gorm:"type:text"`
	Replacement string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// KeywordList decodes the stored keyword array.
func (g *FilterGroup) KeywordList() ([]string, error) {
	if g.Keywords == "" {
		return nil, nil
	}

	var keywords []string
	if err := json.Unmarshal([]byte(g.Keywords), &keywords); err != nil {
		return nil, fmt.Errorf("corrupt keyword list for group %s: %w", g.ID, err)
	}
	return keywords, nil
}

// SetKeywordList encodes the keyword array into the text column.
func (g *FilterGroup) SetKeywordList(keywords []string) error {
	if keywords == nil {
		keywords = []string{}
	}

	data, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keyword list for group %s: %w", g.ID, err)
	}
	g.Keywords = string(data)
	return nil
}

package models

import (
	"github.com/google/uuid"
)

// Setting is one key/value row of site text (title, subtitle, event date,
// location). Keys absent from the table resolve to defaults at read time.
type Setting struct {
	ID    uuid.UUID `gorm:"primaryKey;type:uuid"`
	Key   string    `gorm:"size:100;uniqueIndex;not null"`
	Value string    `gorm:"type:text"`
}

func (Setting) TableName() string {
	return "settings"
}

// DefaultSettings are the values every known key resolves to when no row
// exists. GetAll merges persisted rows over this map.
var DefaultSettings = map[string]string{
	"title":      "National Gymnastics Rankings – Romania",
	"subtitle":   "Official RENC",
	"event_date": "",
	"location":   "",
}

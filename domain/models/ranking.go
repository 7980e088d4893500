package models

import (
	"time"

	"github.com/google/uuid"
)

// Ranking is one competitor's result row within a category. All score fields
// are optional: an absent or unparsable spreadsheet cell stays NULL so it
// sorts after real values, never as zero. Position is free text because it
// may carry tie markers ("2="). The auto-increment ID doubles as the
// insertion-order sort key for the administrative listing.
type Ranking struct {
	ID           uint      `gorm:"primaryKey"`
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     string    `gorm:"size:50"`
	Competitor   string    `gorm:"size:200"`
	Club         string    `gorm:"size:200"`
	Execution    *float64  `gorm:"type:numeric(8,3)"`
	Artistry     *float64  `gorm:"type:numeric(8,3)"`
	Difficulty   *float64  `gorm:"type:numeric(8,3)"`
	LinePenalty  *float64  `gorm:"type:numeric(8,3)"`
	ChairPenalty *float64  `gorm:"type:numeric(8,3)"`
	DiffPenalty  *float64  `gorm:"type:numeric(8,3)"`
	Total        *float64  `gorm:"type:numeric(8,3)"`
	CreatedAt    time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Ranking) TableName() string {
	return "rankings"
}

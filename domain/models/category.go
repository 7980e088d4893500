package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a competition division. Slug is always the normalized form of
// the name that produced it and is the public identifier in URLs.
type Category struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null"`
	Name      string    `gorm:"size:300;not null"`
	CreatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}

package repositories

import (
	"context"

	"gymrank/domain/models"
)

type SettingRepository interface {
	GetAll(ctx context.Context) ([]*models.Setting, error)
	GetByKey(ctx context.Context, key string) (*models.Setting, error)
	// Upsert updates the row for the key if present, inserts it otherwise.
	Upsert(ctx context.Context, setting *models.Setting) error
}

package services

import (
	"context"

	"gymrank/domain/models"
)

type RankingService interface {
	// ClearBySlug deletes every ranking in the category identified by slug
	// and returns the count removed. The category itself survives.
	ClearBySlug(ctx context.Context, slug string) (int64, *models.Category, error)
	// ClearByName resolves the category through slug normalization of the
	// name, then behaves like ClearBySlug.
	ClearByName(ctx context.Context, name string) (int64, *models.Category, error)
}

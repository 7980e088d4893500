package repositories

import (
	"context"

	"github.com/google/uuid"

	"gymrank/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// List returns every category ordered by display name.
	List(ctx context.Context) ([]*models.Category, error)
	// DeleteCascade removes the category's rankings and then the category row
	// itself, in that order, inside one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	CountRankings(ctx context.Context, id uuid.UUID) (int64, error)
	// GetRankingCounts returns category_id -> ranking row count in one query.
	GetRankingCounts(ctx context.Context) (map[uuid.UUID]int64, error)
}

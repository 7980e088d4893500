package repositories

import (
	"context"

	"github.com/google/uuid"

	"gymrank/domain/models"
)

// RankingOrder selects the ordering contract for listing rankings.
type RankingOrder string

const (
	// OrderDisplay sorts by total descending with missing totals last, the
	// public results ordering.
	OrderDisplay RankingOrder = "display"
	// OrderInsertion preserves the order rows were imported in, used by the
	// administrative category detail view.
	OrderInsertion RankingOrder = "insertion"
)

type RankingRepository interface {
	ListByCategory(ctx context.Context, categoryID uuid.UUID, order RankingOrder) ([]*models.Ranking, error)
	// BulkInsert persists all rows under the category in one transaction:
	// either every row lands or none do.
	BulkInsert(ctx context.Context, categoryID uuid.UUID, rows []*models.Ranking) error
	// DeleteAllInCategory removes every ranking in the category and returns
	// the number of rows deleted.
	DeleteAllInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

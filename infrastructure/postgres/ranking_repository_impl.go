package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymrank/domain/models"
	"gymrank/domain/repositories"
)

type RankingRepositoryImpl struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) repositories.RankingRepository {
	return &RankingRepositoryImpl{db: db}
}

func (r *RankingRepositoryImpl) ListByCategory(ctx context.Context, categoryID uuid.UUID, order repositories.RankingOrder) ([]*models.Ranking, error) {
	var rankings []*models.Ranking
	query := r.db.WithContext(ctx).Where("category_id = ?", categoryID)

	switch order {
	case repositories.OrderDisplay:
		// "total IS NULL, total DESC" is nulls-last in both Postgres and the
		// SQLite used by tests.
		query = query.Order("total IS NULL, total DESC")
	default:
		// Auto-increment ID is the insertion order.
		query = query.Order("id ASC")
	}

	err := query.Find(&rankings).Error
	return rankings, err
}

func (r *RankingRepositoryImpl) BulkInsert(ctx context.Context, categoryID uuid.UUID, rows []*models.Ranking) error {
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		row.CategoryID = categoryID
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

func (r *RankingRepositoryImpl) DeleteAllInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&models.Ranking{})
	return res.RowsAffected, res.Error
}

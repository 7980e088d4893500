package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymrank/domain/models"
	"gymrank/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// DeleteCascade removes rankings first, then the category row. The order is
// explicit because the foreign key has to be satisfied before the category
// disappears; both steps share one transaction.
func (r *CategoryRepositoryImpl) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Ranking{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Category{}).Error
	})
}

func (r *CategoryRepositoryImpl) CountRankings(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Ranking{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *CategoryRepositoryImpl) GetRankingCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	type result struct {
		CategoryID uuid.UUID
		Count      int64
	}
	var results []result

	err := r.db.WithContext(ctx).
		Model(&models.Ranking{}).
		Select("category_id, COUNT(*) as count").
		Group("category_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64)
	for _, res := range results {
		counts[res.CategoryID] = res.Count
	}
	return counts, nil
}

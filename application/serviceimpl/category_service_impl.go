package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymrank/domain/dto"
	"gymrank/domain/models"
	"gymrank/domain/repositories"
	"gymrank/domain/services"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	rankingRepo  repositories.RankingRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, rankingRepo repositories.RankingRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		rankingRepo:  rankingRepo,
	}
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) FindOrCreate(ctx context.Context, name string) (*models.Category, error) {
	slug := utils.Slugify(name)

	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Two concurrent uploads can both reach this point; the unique index on
	// slug makes the loser fail with a constraint error.
	category = &models.Category{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "name", name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "slug", slug)
	return category, nil
}

func (s *CategoryServiceImpl) Add(ctx context.Context, name string) (*models.Category, error) {
	slug := utils.Slugify(name)

	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Category already exists", "slug", slug)
		return nil, services.ErrDuplicateSlug
	}

	category := &models.Category{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "name", name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category added", "category_id", category.ID, "name", name)
	return category, nil
}

func (s *CategoryServiceImpl) Rename(ctx context.Context, slug, newName string) (*models.Category, error) {
	category, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	newSlug := utils.Slugify(newName)
	other, err := s.categoryRepo.GetBySlug(ctx, newSlug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if other != nil && other.ID != category.ID {
		logger.WarnContext(ctx, "Rename collides with existing category", "slug", newSlug)
		return nil, services.ErrDuplicateSlug
	}

	category.Name = newName
	category.Slug = newSlug
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to rename category", "category_id", category.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category renamed", "category_id", category.ID, "slug", newSlug)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.DeleteCascade(ctx, category.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", category.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

func (s *CategoryServiceImpl) ListWithCounts(ctx context.Context) ([]dto.CategoryInfo, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.categoryRepo.GetRankingCounts(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.CategoryInfo, len(categories))
	for i, category := range categories {
		infos[i] = dto.CategoryInfo{
			ID:           category.ID,
			Slug:         category.Slug,
			Name:         category.Name,
			RankingCount: counts[category.ID],
		}
	}
	return infos, nil
}

func (s *CategoryServiceImpl) HomeViews(ctx context.Context, selectedSlug string) ([]dto.CategoryView, error) {
	var categories []*models.Category

	if selectedSlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, selectedSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown filter renders an empty page, not an error.
				return []dto.CategoryView{}, nil
			}
			return nil, err
		}
		categories = []*models.Category{category}
	} else {
		var err error
		categories, err = s.categoryRepo.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	views := make([]dto.CategoryView, 0, len(categories))
	for _, category := range categories {
		rows, err := s.rankingRepo.ListByCategory(ctx, category.ID, repositories.OrderDisplay)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.NewCategoryView(category, rows))
	}
	return views, nil
}

func (s *CategoryServiceImpl) DetailView(ctx context.Context, slug string) (*dto.CategoryView, error) {
	category, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	rows, err := s.rankingRepo.ListByCategory(ctx, category.ID, repositories.OrderInsertion)
	if err != nil {
		return nil, err
	}

	view := dto.NewCategoryView(category, rows)
	return &view, nil
}

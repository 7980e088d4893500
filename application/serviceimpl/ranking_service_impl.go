package serviceimpl

import (
	"context"

	"gymrank/domain/models"
	"gymrank/domain/repositories"
	"gymrank/domain/services"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

type RankingServiceImpl struct {
	categoryService services.CategoryService
	rankingRepo     repositories.RankingRepository
}

func NewRankingService(categoryService services.CategoryService, rankingRepo repositories.RankingRepository) services.RankingService {
	return &RankingServiceImpl{
		categoryService: categoryService,
		rankingRepo:     rankingRepo,
	}
}

func (s *RankingServiceImpl) ClearBySlug(ctx context.Context, slug string) (int64, *models.Category, error) {
	category, err := s.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		return 0, nil, err
	}

	deleted, err := s.rankingRepo.DeleteAllInCategory(ctx, category.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete rankings", "category_id", category.ID, "error", err)
		return 0, nil, err
	}

	logger.InfoContext(ctx, "Rankings cleared", "category_id", category.ID, "deleted", deleted)
	return deleted, category, nil
}

func (s *RankingServiceImpl) ClearByName(ctx context.Context, name string) (int64, *models.Category, error) {
	return s.ClearBySlug(ctx, utils.Slugify(name))
}

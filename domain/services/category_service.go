package services

import (
	"context"

	"gymrank/domain/dto"
	"gymrank/domain/models"
)

type CategoryService interface {
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	// FindOrCreate slugifies the name, returns the existing category for that
	// slug, or creates one. Concurrent creators race on the unique slug
	// index; the loser surfaces the constraint error.
	FindOrCreate(ctx context.Context, name string) (*models.Category, error)
	// Add creates a category explicitly and fails with ErrDuplicateSlug when
	// one already exists for the normalized name.
	Add(ctx context.Context, name string) (*models.Category, error)
	// Rename regenerates the slug from newName. Rejected with
	// ErrDuplicateSlug when that slug belongs to a different category.
	Rename(ctx context.Context, slug, newName string) (*models.Category, error)
	// Delete removes the category and all its rankings.
	Delete(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	ListWithCounts(ctx context.Context) ([]dto.CategoryInfo, error)

	// HomeViews composes the public home page: every category (or just the
	// selected slug) with rankings in display order, totals descending and
	// missing totals last.
	HomeViews(ctx context.Context, selectedSlug string) ([]dto.CategoryView, error)
	// DetailView composes one category page with rankings in insertion order.
	DetailView(ctx context.Context, slug string) (*dto.CategoryView, error)
}

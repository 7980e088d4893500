package dto

import (
	"time"

	"github.com/google/uuid"

	"gymrank/domain/models"
)

// === Responses ===

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryInfo is the settings-page listing: a category plus how many ranking
// rows it currently holds.
type CategoryInfo struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	RankingCount int64     `json:"rankingCount"`
}

type RankingResponse struct {
	Position     string   `json:"position"`
	Competitor   string   `json:"competitor"`
	Club         string   `json:"club"`
	Execution    *float64 `json:"execution"`
	Artistry     *float64 `json:"artistry"`
	Difficulty   *float64 `json:"difficulty"`
	LinePenalty  *float64 `json:"linePenalty"`
	ChairPenalty *float64 `json:"chairPenalty"`
	DiffPenalty  *float64 `json:"diffPenalty"`
	Total        *float64 `json:"total"`
}

// CategoryView is the read-composition result a page renders from: one
// category and its ranking rows in the order the page asked for.
type CategoryView struct {
	Slug string            `json:"slug"`
	Name string            `json:"name"`
	Rows []RankingResponse `json:"rows"`
}

// === Mappers ===

func CategoryToResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        category.ID,
		Slug:      category.Slug,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

func CategoriesToResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToResponse(category)
	}
	return responses
}

func RankingToResponse(r *models.Ranking) RankingResponse {
	return RankingResponse{
		Position:     r.Position,
		Competitor:   r.Competitor,
		Club:         r.Club,
		Execution:    r.Execution,
		Artistry:     r.Artistry,
		Difficulty:   r.Difficulty,
		LinePenalty:  r.LinePenalty,
		ChairPenalty: r.ChairPenalty,
		DiffPenalty:  r.DiffPenalty,
		Total:        r.Total,
	}
}

func RankingsToResponses(rankings []*models.Ranking) []RankingResponse {
	responses := make([]RankingResponse, len(rankings))
	for i, r := range rankings {
		responses[i] = RankingToResponse(r)
	}
	return responses
}

func NewCategoryView(category *models.Category, rankings []*models.Ranking) CategoryView {
	return CategoryView{
		Slug: category.Slug,
		Name: category.Name,
		Rows: RankingsToResponses(rankings),
	}
}

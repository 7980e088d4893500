package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gymrank/domain/dto"
	"gymrank/domain/services"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

// CategoryHandler serves the category detail page and the password-gated
// category data deletions.
type CategoryHandler struct {
	settingService  services.SettingService
	categoryService services.CategoryService
	rankingService  services.RankingService
}

func NewCategoryHandler(settingService services.SettingService, categoryService services.CategoryService, rankingService services.RankingService) *CategoryHandler {
	return &CategoryHandler{
		settingService:  settingService,
		categoryService: categoryService,
		rankingService:  rankingService,
	}
}

// Detail shows one category with rankings in insertion order.
func (h *CategoryHandler) Detail(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	view, err := h.categoryService.DetailView(ctx, slug)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	settings, err := h.settingService.GetAll(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryPage{
		Settings: settings,
		Lang:     requestLang(c),
		Category: *view,
	})
}

// DeleteRows removes every ranking in the category but keeps the category.
func (h *CategoryHandler) DeleteRows(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	deleted, category, err := h.rankingService.ClearBySlug(ctx, slug)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteRowsResult{
		Deleted:  deleted,
		Category: dto.CategoryToResponse(category),
	})
}

// DeleteRowsByName is DeleteRows with the category resolved by name.
func (h *CategoryHandler) DeleteRowsByName(c *fiber.Ctx) error {
	ctx := c.UserContext()

	form := dto.DeleteByNameForm{
		CategoryName: strings.TrimSpace(c.FormValue("category_name")),
	}
	if err := utils.ValidateStruct(&form); err != nil {
		return utils.BadRequestResponse(c, "Enter the category name")
	}

	deleted, category, err := h.rankingService.ClearByName(ctx, form.CategoryName)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteRowsResult{
		Deleted:  deleted,
		Category: dto.CategoryToResponse(category),
	})
}

// DeleteCategory removes the category and all its rankings.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	category, err := h.categoryService.Delete(ctx, slug)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Category removed via public endpoint", "slug", slug)
	return utils.SuccessResponse(c, dto.MessageResponse{
		Message: "Category '" + category.Name + "' deleted",
	})
}

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gymrank/domain/dto"
	"gymrank/domain/services"
	"gymrank/pkg/i18n"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

// PageHandler serves the public read-only pages.
type PageHandler struct {
	settingService  services.SettingService
	categoryService services.CategoryService
}

func NewPageHandler(settingService services.SettingService, categoryService services.CategoryService) *PageHandler {
	return &PageHandler{
		settingService:  settingService,
		categoryService: categoryService,
	}
}

// Home lists every category with its rankings in display order (total
// descending, missing totals last). ?category=<slug> narrows to one.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	selected := strings.TrimSpace(c.Query("category"))

	settings, err := h.settingService.GetAll(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	allCategories, err := h.categoryService.List(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	views, err := h.categoryService.HomeViews(ctx, selected)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compose home page", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.HomePage{
		Settings:      settings,
		Lang:          requestLang(c),
		Selected:      selected,
		AllCategories: dto.CategoriesToResponses(allCategories),
		Categories:    views,
	})
}

// Privacy and Terms are static informational pages: site text plus the
// localized string table.
func (h *PageHandler) Privacy(c *fiber.Ctx) error {
	return h.staticPage(c)
}

func (h *PageHandler) Terms(c *fiber.Ctx) error {
	return h.staticPage(c)
}

func (h *PageHandler) staticPage(c *fiber.Ctx) error {
	settings, err := h.settingService.GetAll(c.UserContext())
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	lang := requestLang(c)
	return utils.SuccessResponse(c, dto.StaticPage{
		Settings: settings,
		Lang:     lang,
		Strings:  i18n.Strings(lang),
	})
}

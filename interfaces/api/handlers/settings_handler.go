package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gymrank/domain/dto"
	"gymrank/domain/services"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

// SettingsHandler is the single authoritative settings-management surface:
// site text plus category add/rename/delete, dispatched on the "action"
// field.
type SettingsHandler struct {
	settingService  services.SettingService
	categoryService services.CategoryService
}

func NewSettingsHandler(settingService services.SettingService, categoryService services.CategoryService) *SettingsHandler {
	return &SettingsHandler{
		settingService:  settingService,
		categoryService: categoryService,
	}
}

// Page shows current site text and every category with its ranking count.
func (h *SettingsHandler) Page(c *fiber.Ctx) error {
	ctx := c.UserContext()

	settings, err := h.settingService.GetAll(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	categories, err := h.categoryService.ListWithCounts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories with counts", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.SettingsPage{
		Settings:   settings,
		Lang:       requestLang(c),
		Categories: categories,
	})
}

// Action dispatches one settings mutation.
func (h *SettingsHandler) Action(c *fiber.Ctx) error {
	form := dto.SettingsAction{
		Action:      strings.TrimSpace(c.FormValue("action", "save_settings")),
		Title:       strings.TrimSpace(c.FormValue("title")),
		Subtitle:    strings.TrimSpace(c.FormValue("subtitle")),
		EventDate:   strings.TrimSpace(c.FormValue("event_date")),
		Location:    strings.TrimSpace(c.FormValue("location")),
		NewCategory: strings.TrimSpace(c.FormValue("new_category")),
		Slug:        strings.TrimSpace(c.FormValue("slug")),
		NewName:     strings.TrimSpace(c.FormValue("new_name")),
	}
	if err := utils.ValidateStruct(&form); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	switch form.Action {
	case "save_settings":
		return h.saveSettings(c, form)
	case "add_cat":
		return h.addCategory(c, form)
	case "rename_cat":
		return h.renameCategory(c, form)
	case "delete_cat":
		return h.deleteCategory(c, form)
	default:
		return utils.BadRequestResponse(c, "Unknown action")
	}
}

func (h *SettingsHandler) saveSettings(c *fiber.Ctx, form dto.SettingsAction) error {
	ctx := c.UserContext()

	err := h.settingService.SaveSiteText(ctx, form.Title, form.Subtitle, form.EventDate, form.Location)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Settings saved"})
}

func (h *SettingsHandler) addCategory(c *fiber.Ctx, form dto.SettingsAction) error {
	if form.NewCategory == "" {
		return utils.BadRequestResponse(c, "Enter a category name")
	}

	category, err := h.categoryService.Add(c.UserContext(), form.NewCategory)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.CategoryToResponse(category))
}

func (h *SettingsHandler) renameCategory(c *fiber.Ctx, form dto.SettingsAction) error {
	if form.Slug == "" || form.NewName == "" {
		return utils.BadRequestResponse(c, "Enter the category and a new name")
	}

	category, err := h.categoryService.Rename(c.UserContext(), form.Slug, form.NewName)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToResponse(category))
}

func (h *SettingsHandler) deleteCategory(c *fiber.Ctx, form dto.SettingsAction) error {
	if form.Slug == "" {
		return utils.BadRequestResponse(c, "Select a category to delete")
	}

	category, err := h.categoryService.Delete(c.UserContext(), form.Slug)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{
		Message: "Category '" + category.Name + "' deleted",
	})
}

package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gymrank/domain/dto"
	"gymrank/domain/models"
	"gymrank/domain/services"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

type UploadHandler struct {
	settingService  services.SettingService
	categoryService services.CategoryService
	importService   services.ImportService
}

func NewUploadHandler(settingService services.SettingService, categoryService services.CategoryService, importService services.ImportService) *UploadHandler {
	return &UploadHandler{
		settingService:  settingService,
		categoryService: categoryService,
		importService:   importService,
	}
}

// Form returns what the upload page needs: the category dropdown source and
// the header row the file must carry.
func (h *UploadHandler) Form(c *fiber.Ctx) error {
	ctx := c.UserContext()

	settings, err := h.settingService.GetAll(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UploadPage{
		Settings:        settings,
		Lang:            requestLang(c),
		Categories:      dto.CategoriesToResponses(categories),
		RequiredHeaders: services.RequiredHeaders,
	})
}

// Submit ingests a results file into a category. The category comes either
// as a known slug or as a name, which is resolved or created on the fly.
func (h *UploadHandler) Submit(c *fiber.Ctx) error {
	ctx := c.UserContext()

	form := dto.UploadForm{
		CategorySlug: strings.TrimSpace(c.FormValue("category_slug")),
		CategoryName: strings.TrimSpace(c.FormValue("category_name")),
	}
	if err := utils.ValidateStruct(&form); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}
	if form.CategorySlug == "" && form.CategoryName == "" {
		return utils.BadRequestResponse(c, "Please select or enter a category")
	}

	var category *models.Category
	var err error
	if form.CategorySlug != "" {
		category, err = h.categoryService.GetBySlug(ctx, form.CategorySlug)
	} else {
		category, err = h.categoryService.FindOrCreate(ctx, form.CategoryName)
	}
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Filename == "" {
		return utils.BadRequestResponse(c, "Please choose a CSV or XLSX file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open upload", "filename", fileHeader.Filename, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	count, err := h.importService.Import(ctx, category, fileHeader.Filename, file)
	if err != nil {
		var missing *services.MissingHeadersError
		if errors.Is(err, services.ErrUnsupportedFileType) || errors.As(err, &missing) {
			return serviceErrorResponse(c, err)
		}
		logger.ErrorContext(ctx, "Import failed", "filename", fileHeader.Filename, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ImportResult{
		Imported: count,
		Category: dto.CategoryToResponse(category),
	})
}

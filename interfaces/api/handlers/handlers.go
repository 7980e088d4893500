package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gymrank/domain/services"
	"gymrank/pkg/i18n"
	"gymrank/pkg/utils"
)

// Services bundles everything the handlers compose over.
type Services struct {
	Category services.CategoryService
	Ranking  services.RankingService
	Import   services.ImportService
	Setting  services.SettingService
}

type Handlers struct {
	PageHandler     *PageHandler
	CategoryHandler *CategoryHandler
	UploadHandler   *UploadHandler
	SettingsHandler *SettingsHandler
	LangHandler     *LangHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		PageHandler:     NewPageHandler(s.Setting, s.Category),
		CategoryHandler: NewCategoryHandler(s.Setting, s.Category, s.Ranking),
		UploadHandler:   NewUploadHandler(s.Setting, s.Category, s.Import),
		SettingsHandler: NewSettingsHandler(s.Setting, s.Category),
		LangHandler:     NewLangHandler(),
	}
}

// requestLang reads the language preference cookie, defaulting to English.
func requestLang(c *fiber.Ctx) string {
	return i18n.Normalize(c.Cookies(i18n.CookieName))
}

// serviceErrorResponse maps the service error taxonomy onto HTTP statuses.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var missing *services.MissingHeadersError

	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrDuplicateSlug):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrUnsupportedFileType):
		return utils.BadRequestResponse(c, err.Error())
	case errors.As(err, &missing):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeValidation,
			err.Error(), fiber.Map{"missing": missing.Missing})
	default:
		return utils.InternalServerErrorResponse(c)
	}
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"gymrank/interfaces/api/handlers"
	"gymrank/interfaces/api/middleware"
)

// SetupRoutes registers the whole HTTP surface. Mutating routes share the
// same password guard; everything else is public.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, adminPassword string) {
	guard := middleware.SharedSecret(adminPassword)

	SetupHealthRoutes(app)
	SetupPageRoutes(app, h)
	SetupCategoryRoutes(app, h, guard)
	SetupUploadRoutes(app, h, guard)
	SetupSettingsRoutes(app, h, guard)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"gymrank/interfaces/api/handlers"
)

func SetupCategoryRoutes(app *fiber.App, h *handlers.Handlers, guard fiber.Handler) {
	// Public detail page
	app.Get("/category/:slug", h.CategoryHandler.Detail)

	// Password-gated data removal
	app.Post("/category/:slug/delete", guard, h.CategoryHandler.DeleteRows)
	app.Post("/category/:slug/delete-category", guard, h.CategoryHandler.DeleteCategory)
	app.Post("/delete-by-name", guard, h.CategoryHandler.DeleteRowsByName)
}

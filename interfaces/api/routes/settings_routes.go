package routes

import (
	"github.com/gofiber/fiber/v2"

	"gymrank/interfaces/api/handlers"
)

func SetupSettingsRoutes(app *fiber.App, h *handlers.Handlers, guard fiber.Handler) {
	app.Get("/settings", h.SettingsHandler.Page)
	app.Post("/settings", guard, h.SettingsHandler.Action)
}

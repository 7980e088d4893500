package routes

import (
	"github.com/gofiber/fiber/v2"

	"gymrank/interfaces/api/handlers"
)

func SetupPageRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/", h.PageHandler.Home)
	app.Get("/privacy", h.PageHandler.Privacy)
	app.Get("/terms", h.PageHandler.Terms)
	app.Get("/set-lang/:code", h.LangHandler.SetLang)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"gymrank/interfaces/api/handlers"
)

func SetupUploadRoutes(app *fiber.App, h *handlers.Handlers, guard fiber.Handler) {
	app.Get("/upload", h.UploadHandler.Form)
	app.Post("/upload", guard, h.UploadHandler.Submit)
}

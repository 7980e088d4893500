package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gymrank/pkg/i18n"
)

type LangHandler struct{}

func NewLangHandler() *LangHandler {
	return &LangHandler{}
}

// SetLang stores the language preference for one year and sends the browser
// back where it came from.
func (h *LangHandler) SetLang(c *fiber.Ctx) error {
	code := i18n.Normalize(c.Params("code"))

	next := c.Query("next")
	if next == "" {
		next = c.Get("Referer")
	}
	if next == "" {
		next = "/"
	}

	c.Cookie(&fiber.Cookie{
		Name:    i18n.CookieName,
		Value:   code,
		Path:    "/",
		MaxAge:  i18n.CookieMaxAge,
		Expires: time.Now().Add(time.Duration(i18n.CookieMaxAge) * time.Second),
	})

	return c.Redirect(next, fiber.StatusFound)
}

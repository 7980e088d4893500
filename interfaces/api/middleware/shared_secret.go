package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

// SharedSecret gates mutating routes behind the single configured password,
// submitted as the form field "password". The comparison is constant-time.
// This is deliberately not account-based auth: one shared secret is the whole
// access-control contract.
func SharedSecret(password string) fiber.Handler {
	secret := []byte(password)

	return func(c *fiber.Ctx) error {
		supplied := strings.TrimSpace(c.FormValue("password"))

		if subtle.ConstantTimeCompare([]byte(supplied), secret) != 1 {
			logger.WarnContext(c.UserContext(), "Incorrect password",
				"path", c.Path(), "ip", c.IP())
			return utils.UnauthorizedResponse(c, "Incorrect password")
		}

		return c.Next()
	}
}

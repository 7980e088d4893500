package middleware

import (
	"github.com/gofiber/fiber/v2"

	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

// ErrorHandler is the Fiber app-level error handler: anything a handler did
// not translate itself comes out as the standard error envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled request error",
			"path", c.Path(), "status", code, "error", err)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}

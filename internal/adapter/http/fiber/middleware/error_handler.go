package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
)

// ErrorHandler is the last line of defense for errors that escape the
// handlers. Typed domain errors are mapped to their status; everything else
// is a 500 and gets logged with its cause.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		switch domain.KindOf(err) {
		case domain.ErrorKindValidation:
			code = fiber.StatusBadRequest
			message = err.Error()
		case domain.ErrorKindAuth:
			code = fiber.StatusForbidden
			message = err.Error()
		case domain.ErrorKindNotFound:
			code = fiber.StatusNotFound
			message = err.Error()
		case domain.ErrorKindConflict:
			code = fiber.StatusConflict
			message = err.Error()
		case domain.ErrorKindInsufficientFunds:
			code = fiber.StatusBadRequest
			message = err.Error()
		default:
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}

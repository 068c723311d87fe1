package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-repo/sigec-swap/internal/domain"
)

// respond wraps successful payloads in the standard envelope.
func respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondError maps the error taxonomy to HTTP once, here, so services
// never deal in status codes.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch domain.KindOf(err) {
	case domain.ErrorKindValidation:
		status = fiber.StatusBadRequest
		message = err.Error()
	case domain.ErrorKindAuth:
		status = fiber.StatusForbidden
		message = err.Error()
	case domain.ErrorKindNotFound:
		status = fiber.StatusNotFound
		message = err.Error()
	case domain.ErrorKindConflict:
		status = fiber.StatusConflict
		message = err.Error()
	case domain.ErrorKindInsufficientFunds:
		status = fiber.StatusBadRequest
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// actorFromCtx reads the authenticated actor set by the auth middleware.
func actorFromCtx(c *fiber.Ctx) domain.Actor {
	if actor, ok := c.Locals("actor").(domain.Actor); ok {
		return actor
	}
	return domain.Actor{}
}

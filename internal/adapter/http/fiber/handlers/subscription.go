package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/ports"
)

type SubscriptionHandler struct {
	service ports.SubscriptionService
	log     *zap.Logger
}

func NewSubscriptionHandler(service ports.SubscriptionService, log *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		log:     log,
	}
}

func (h *SubscriptionHandler) ListPackages(c *fiber.Ctx) error {
	pkgs, err := h.service.ListPackages(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, pkgs)
}

type SubscribeBody struct {
	PackageID string `json:"package_id"`
	AutoRenew bool   `json:"auto_renew"`
}

func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	var body SubscribeBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if body.PackageID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "package_id is required"})
	}

	sub, err := h.service.Subscribe(c.Context(), actorFromCtx(c), body.PackageID, body.AutoRenew)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, sub)
}

func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	sub, err := h.service.Cancel(c.Context(), actorFromCtx(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, sub)
}

func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	subs, err := h.service.List(c.Context(), actorFromCtx(c))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, subs)
}

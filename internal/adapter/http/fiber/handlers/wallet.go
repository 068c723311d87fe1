package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

type WalletHandler struct {
	service ports.WalletService
	log     *zap.Logger
}

func NewWalletHandler(service ports.WalletService, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		service: service,
		log:     log,
	}
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	wallet, err := h.service.GetWallet(c.Context(), actorFromCtx(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, wallet)
}

type TopUpBody struct {
	Amount int64  `json:"amount"` // Minor currency units
	Method string `json:"method"`
}

func (h *WalletHandler) TopUp(c *fiber.Ctx) error {
	var body TopUpBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	method := domain.PaymentMethod(body.Method)
	if method == "" {
		method = domain.PaymentMethodCash
	}

	wallet, err := h.service.TopUp(c.Context(), actorFromCtx(c).ID, body.Amount, method)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, wallet)
}

func (h *WalletHandler) GetTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	entries, err := h.service.GetTransactions(c.Context(), actorFromCtx(c).ID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, entries)
}

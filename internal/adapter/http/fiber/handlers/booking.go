package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

type BookingHandler struct {
	service ports.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service ports.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

type CreateBookingBody struct {
	VehicleID   string    `json:"vehicle_id"`
	StationID   string    `json:"station_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var body CreateBookingBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	booking, err := h.service.Create(c.Context(), actorFromCtx(c), &ports.CreateBookingRequest{
		VehicleID:   body.VehicleID,
		StationID:   body.StationID,
		ScheduledAt: body.ScheduledAt,
		Notes:       body.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, booking)
}

type CancelBookingBody struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	var body CancelBookingBody
	// Body is optional for cancellation
	_ = c.BodyParser(&body)

	booking, err := h.service.Cancel(c.Context(), actorFromCtx(c), c.Params("id"), body.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, booking)
}

func (h *BookingHandler) CheckIn(c *fiber.Ctx) error {
	booking, err := h.service.CheckIn(c.Context(), actorFromCtx(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, booking)
}

type CompleteSwapBody struct {
	OldBatteryID string `json:"old_battery_id"`
	NewBatteryID string `json:"new_battery_id"`
	Amount       int64  `json:"amount"` // Minor currency units
	Method       string `json:"method"`
}

func (h *BookingHandler) Complete(c *fiber.Ctx) error {
	var body CompleteSwapBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	swap, err := h.service.Complete(c.Context(), actorFromCtx(c), &ports.CompleteSwapRequest{
		BookingID:    c.Params("id"),
		OldBatteryID: body.OldBatteryID,
		NewBatteryID: body.NewBatteryID,
		Amount:       body.Amount,
		Method:       domain.PaymentMethod(body.Method),
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, swap)
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	booking, err := h.service.Get(c.Context(), actorFromCtx(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, booking)
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.service.List(c.Context(), actorFromCtx(c),
		c.Query("status"), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, bookings)
}

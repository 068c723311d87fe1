package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

type ShiftHandler struct {
	service ports.ShiftService
	log     *zap.Logger
}

func NewShiftHandler(service ports.ShiftService, log *zap.Logger) *ShiftHandler {
	return &ShiftHandler{
		service: service,
		log:     log,
	}
}

type CreateShiftBody struct {
	StaffID    string    `json:"staff_id"`
	StationID  string    `json:"station_id"`
	ShiftStart time.Time `json:"shift_start"`
	ShiftEnd   time.Time `json:"shift_end"`
	Notes      string    `json:"notes"`
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var body CreateShiftBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	shift, err := h.service.Create(c.Context(), actorFromCtx(c), &ports.CreateShiftRequest{
		StaffID:    body.StaffID,
		StationID:  body.StationID,
		ShiftStart: body.ShiftStart,
		ShiftEnd:   body.ShiftEnd,
		Notes:      body.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, shift)
}

type UpdateShiftBody struct {
	StationID  *string             `json:"station_id"`
	ShiftStart *time.Time          `json:"shift_start"`
	ShiftEnd   *time.Time          `json:"shift_end"`
	Status     *domain.ShiftStatus `json:"status"`
	Notes      *string             `json:"notes"`
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var body UpdateShiftBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	shift, err := h.service.Update(c.Context(), actorFromCtx(c), c.Params("id"), &ports.UpdateShiftRequest{
		StationID:  body.StationID,
		ShiftStart: body.ShiftStart,
		ShiftEnd:   body.ShiftEnd,
		Status:     body.Status,
		Notes:      body.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, shift)
}

type UpdateShiftStatusBody struct {
	Status domain.ShiftStatus `json:"status"`
}

func (h *ShiftHandler) UpdateStatus(c *fiber.Ctx) error {
	var body UpdateShiftStatusBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	shift, err := h.service.UpdateStatus(c.Context(), actorFromCtx(c), c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, shift)
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), actorFromCtx(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

func (h *ShiftHandler) List(c *fiber.Ctx) error {
	filter := ports.ShiftFilter{
		StaffID:     c.Query("staff_id"),
		StationID:   c.Query("station_id"),
		Status:      domain.ShiftStatus(c.Query("status")),
		DateFrom:    c.Query("date_from"),
		DateTo:      c.Query("date_to"),
		IncludePast: c.QueryBool("include_past"),
		Limit:       c.QueryInt("limit", 50),
		Offset:      c.QueryInt("offset", 0),
	}

	shifts, err := h.service.List(c.Context(), actorFromCtx(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, shifts)
}

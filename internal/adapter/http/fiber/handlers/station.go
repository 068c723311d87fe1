package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/ports"
)

type StationHandler struct {
	service ports.StationService
	log     *zap.Logger
}

func NewStationHandler(service ports.StationService, log *zap.Logger) *StationHandler {
	return &StationHandler{
		service: service,
		log:     log,
	}
}

func (h *StationHandler) Get(c *fiber.Ctx) error {
	station, err := h.service.GetStation(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, station)
}

func (h *StationHandler) List(c *fiber.Ctx) error {
	filter := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if city := c.Query("city"); city != "" {
		filter["city"] = city
	}

	stations, err := h.service.ListStations(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, stations)
}

func (h *StationHandler) ListBatteries(c *fiber.Ctx) error {
	batteries, err := h.service.ListBatteries(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, batteries)
}

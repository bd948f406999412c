package handler

import (
	"github.com/gofiber/fiber/v2"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/service"
)

type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// LogError handles POST /logs/error.
func (h *LogHandler) LogError(c *fiber.Ctx) error {
	var req dto.ErrorLogRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.logService.LogError(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// LogGameSession handles POST /logs/game-session.
func (h *LogHandler) LogGameSession(c *fiber.Ctx) error {
	var req dto.GameSessionLogRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.logService.LogGameSession(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(resp)
}

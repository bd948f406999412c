package handler

import (
	"github.com/gofiber/fiber/v2"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/service"
)

type GameHandler struct {
	gameService service.GameService
}

func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// Start handles POST /game/start.
func (h *GameHandler) Start(c *fiber.Ctx) error {
	var req dto.StartGameRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.gameService.Start(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Answer handles POST /game/answer.
func (h *GameHandler) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.gameService.Answer(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Finish handles POST /game/finish.
func (h *GameHandler) Finish(c *fiber.Ctx) error {
	var req dto.FinishGameRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.gameService.Finish(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

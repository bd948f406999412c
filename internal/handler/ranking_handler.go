package handler

import (
	"github.com/gofiber/fiber/v2"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/middleware"
	"mathrush/internal/service"
)

type RankingHandler struct {
	rankingService service.RankingService
}

func NewRankingHandler(rankingService service.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

// Update handles POST /ranking/update.
func (h *RankingHandler) Update(c *fiber.Ctx) error {
	var req dto.RankingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.rankingService.Update(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Global handles GET /ranking/global.
func (h *RankingHandler) Global(c *fiber.Ctx) error {
	resp, err := h.rankingService.GlobalRanking(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Me handles GET /ranking/me (protected).
func (h *RankingHandler) Me(c *fiber.Ctx) error {
	email, _ := c.Locals(middleware.UserEmailKey).(string)
	resp, err := h.rankingService.GetMe(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/service"
)

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// Update handles POST /progress/update.
func (h *ProgressHandler) Update(c *fiber.Ctx) error {
	var req dto.ProgressUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.progressService.Update(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Get handles GET /progress/:id.
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	resp, err := h.progressService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

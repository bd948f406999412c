package handler

import (
	"github.com/gofiber/fiber/v2"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/service"
)

type UserHandler struct {
	profileService service.ProfileService
}

func NewUserHandler(profileService service.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

// CreateProfile handles POST /users/:id.
func (h *UserHandler) CreateProfile(c *fiber.Ctx) error {
	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.profileService.Create(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetProfile handles GET /users/:id.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	resp, err := h.profileService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateProfile handles PATCH /users/:id.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.profileService.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetStats handles GET /users/:id/stats.
func (h *UserHandler) GetStats(c *fiber.Ctx) error {
	resp, err := h.profileService.GetStats(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

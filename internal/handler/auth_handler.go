package handler

import (
	"github.com/gofiber/fiber/v2"

	"mathrush/internal/domain"
	"mathrush/internal/dto"
	"mathrush/internal/middleware"
	"mathrush/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// LoginGoogle handles POST /auth/google.
func (h *AuthHandler) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.authService.LoginGoogle(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Logout handles POST /auth/logout (protected).
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(middleware.SessionTokenKey).(string)
	resp, err := h.authService.Logout(c.Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Session handles GET /auth/session. It never fails on a missing or
// stale token; the response body carries the authenticated flag.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	resp, err := h.authService.Session(c.Context(), middleware.BearerToken(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.authService.ResetPassword(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

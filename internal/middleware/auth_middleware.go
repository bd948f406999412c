package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mathrush/internal/service"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID"
	UserEmailKey        = "userEmail"
	SessionTokenKey     = "sessionToken"
)

// BearerToken extracts the bearer token from the request, or "" when
// the header is absent or malformed.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get(AuthorizationHeader)
	if !strings.HasPrefix(authHeader, BearerSchema) {
		return ""
	}
	return strings.TrimPrefix(authHeader, BearerSchema)
}

// Protected requires a valid session token and stores the resolved
// user id, email and raw token in the context locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing or not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		user, err := authService.ResolveToken(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Invalid session",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(UserIDKey, user.ID)
		c.Locals(UserEmailKey, user.Email)
		c.Locals(SessionTokenKey, token)
		return c.Next()
	}
}

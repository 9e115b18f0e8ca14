package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/givehub/backend/internal/models"
	jwtPkg "github.com/givehub/backend/pkg/jwt"
)

// UserStore resolves a verified token's user ID to a live account.
type UserStore interface {
	GetByID(id uint) (*models.User, error)
}

// Auth gates protected routes. Every request re-verifies the token and
// re-fetches the user, so deleting an account invalidates its tokens
// immediately.
func Auth(tokens *jwtPkg.TokenService, users UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("No token, authorization denied"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Token is not valid"))
		}

		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Token is not valid"))
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)

		return c.Next()
	}
}

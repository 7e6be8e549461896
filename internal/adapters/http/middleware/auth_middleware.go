package middleware

import (
	"strings"

	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/jwt"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the Authorization header and stores the
// authenticated username in the request context. The full header value,
// scheme prefix included, goes through Validate; the cause is mapped to a
// response message but the token is never re-parsed here.
func AuthMiddleware(provider *jwt.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Access token required")
		}

		res := provider.Validate(authHeader)
		if !res.OK() {
			switch res.Cause {
			case jwt.CauseMissingPrefix:
				return response.Unauthorized(c, "Authorization header must use the Bearer scheme")
			case jwt.CauseExpired:
				return response.Unauthorized(c, "Access token expired")
			default:
				return response.Unauthorized(c, "Invalid access token")
			}
		}

		raw := strings.TrimSpace(authHeader[len("Bearer "):])
		username, err := provider.ExtractUsername(raw)
		if err != nil {
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("username", username)
		return c.Next()
	}
}

// Username returns the authenticated username stored by AuthMiddleware
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}

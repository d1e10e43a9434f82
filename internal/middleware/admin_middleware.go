package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/auth"
	"github.com/aulaplus/adminpanel/internal/models"
)

// RequireAdmin protects the JSON API: the session cookie must verify and its
// claims must resolve to the admin role. API callers get status codes, not
// redirects.
func RequireAdmin(secret, adminEmail string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(auth.SessionCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing session"})
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
		}

		if sessionRole(claims, adminEmail) != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admins only."})
		}

		c.Locals("email", claims.Email)
		c.Locals("role", models.RoleAdmin)
		return c.Next()
	}
}

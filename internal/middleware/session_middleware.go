package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/auth"
	"github.com/aulaplus/adminpanel/internal/models"
)

// SessionGuard gates the page paths: "/", "/login", "/register", "/app/*"
// and "/admin/*". The role is always read from the verified session token,
// never from the client-readable role cookie.
//
//	/            -> always redirected to /login
//	login pages  -> pass through, unless a valid session bounces the user
//	               to their landing page (/admin for admins, /app otherwise)
//	/app, /admin -> require a valid session; /admin additionally requires
//	               the admin role, else the request lands on /app
//
// Paths outside the matcher (static assets, the API groups with their own
// guard) pass through untouched.
func SessionGuard(secret, adminEmail string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if path == "/" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		public := path == "/login" || path == "/register"
		protected := strings.HasPrefix(path, "/app") || strings.HasPrefix(path, "/admin")
		if !public && !protected {
			return c.Next()
		}

		claims, err := auth.ParseToken(c.Cookies(auth.SessionCookie), secret)

		if public {
			if err == nil {
				if sessionRole(claims, adminEmail) == models.RoleAdmin {
					return c.Redirect("/admin", fiber.StatusFound)
				}
				return c.Redirect("/app", fiber.StatusFound)
			}
			return c.Next()
		}

		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}

		role := sessionRole(claims, adminEmail)
		if strings.HasPrefix(path, "/admin") && role != models.RoleAdmin {
			return c.Redirect("/app", fiber.StatusFound)
		}

		c.Locals("email", claims.Email)
		c.Locals("role", role)
		return c.Next()
	}
}

func sessionRole(claims *auth.Claims, adminEmail string) string {
	if adminEmail != "" && claims.Email == adminEmail {
		return models.RoleAdmin
	}
	if claims.Role != "" {
		return claims.Role
	}
	return models.RoleUser
}

package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// SessionCookie holds the raw identity token, http-only.
	SessionCookie = "__session"
	// RoleCookie caches the resolved role for client-side rendering. The
	// middleware never trusts it; role checks read the verified token.
	RoleCookie = "role"

	cookieMaxAge = 7 * 24 * time.Hour
)

// SetSessionCookies issues the session and role cookies for a verified login.
// Both are scoped to the whole site with a 7-day lifetime and Strict
// same-site policy; Secure is set in production only.
func SetSessionCookies(c *fiber.Ctx, token, role string, secure bool) {
	expires := time.Now().Add(cookieMaxAge)
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(cookieMaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     RoleCookie,
		Value:    role,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(cookieMaxAge.Seconds()),
		HTTPOnly: false,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ClearSessionCookies expires both cookies on logout.
func ClearSessionCookies(c *fiber.Ctx) {
	for _, name := range []string{SessionCookie, RoleCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			MaxAge:   -1,
			SameSite: fiber.CookieSameSiteStrictMode,
		})
	}
}

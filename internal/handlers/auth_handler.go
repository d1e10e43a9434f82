package handlers

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/auth"
)

type LoginService interface {
	Login(ctx context.Context, token string) (role, email string, err error)
}

type AuthHandler struct {
	service  LoginService
	validate *validator.Validate
	secure   bool
}

func NewAuthHandler(service LoginService, secure bool) *AuthHandler {
	return &AuthHandler{service: service, validate: validator.New(), secure: secure}
}

// Login verifies an identity token and issues the session and role cookies.
// Expired and malformed tokens answer 401 with distinct codes so the client
// can tell a stale session from a broken one.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "token is required"})
	}

	role, _, err := h.service.Login(c.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token expired",
				"code":  "auth/id-token-expired",
			})
		case errors.Is(err, auth.ErrTokenMalformed):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
				"code":  "auth/argument-error",
			})
		default:
			return serviceError(c, err, "Login failed")
		}
	}

	auth.SetSessionCookies(c, req.Token, role, h.secure)
	return c.JSON(fiber.Map{"ok": true, "role": role})
}

// Logout expires both session cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.ClearSessionCookies(c)
	return c.JSON(fiber.Map{"ok": true})
}

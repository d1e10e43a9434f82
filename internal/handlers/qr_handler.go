package handlers

import (
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/models"
)

type QRService interface {
	Get(ctx context.Context) (models.QRConfig, error)
	SetURL(ctx context.Context, url string) error
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type QRHandler struct {
	service  QRService
	validate *validator.Validate
}

func NewQRHandler(service QRService) *QRHandler {
	return &QRHandler{service: service, validate: validator.New()}
}

func (h *QRHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.service.Get(c.Context())
	if err != nil {
		return serviceError(c, err, "Failed to fetch QR config")
	}
	return c.JSON(cfg)
}

// SetURL points the payment QR at an externally hosted image. The service
// probes the URL first; nothing is written when it does not serve an image.
func (h *QRHandler) SetURL(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url" validate:"required,url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}

	if err := h.service.SetURL(c.Context(), req.URL); err != nil {
		return serviceError(c, err, "Failed to update QR config")
	}
	return c.JSON(fiber.Map{"message": "QR updated", "url": req.URL})
}

// Upload accepts a multipart image, stores it and points the QR at it.
func (h *QRHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to open file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read file"})
	}

	url, err := h.service.Upload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return serviceError(c, err, "Failed to upload QR image")
	}
	return c.JSON(fiber.Map{"message": "QR updated", "url": url})
}

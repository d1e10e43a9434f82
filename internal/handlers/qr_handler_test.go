package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulaplus/adminpanel/internal/models"
	"github.com/aulaplus/adminpanel/internal/services"
)

type stubQRService struct {
	cfg       models.QRConfig
	setErr    error
	uploadErr error
	lastURL   string
}

func (s *stubQRService) Get(context.Context) (models.QRConfig, error) {
	return s.cfg, nil
}

func (s *stubQRService) SetURL(_ context.Context, url string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.lastURL = url
	return nil
}

func (s *stubQRService) Upload(_ context.Context, _ string, _ []byte) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	return "http://minio/qr-codes/obj.png", nil
}

func newQRApp(service QRService) *fiber.App {
	app := fiber.New()
	h := NewQRHandler(service)
	app.Get("/api/qr", h.Get)
	app.Post("/api/qr", h.SetURL)
	app.Post("/api/qr/upload", h.Upload)
	return app
}

func TestGetQRConfig(t *testing.T) {
	app := newQRApp(&stubQRService{cfg: models.QRConfig{ID: models.QRConfigID, URL: "http://x/qr.png"}})

	req := httptest.NewRequest(http.MethodGet, "/api/qr", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "http://x/qr.png", body["url"])
}

func TestSetQRURL(t *testing.T) {
	service := &stubQRService{}
	app := newQRApp(service)

	resp := postJSON(t, app, "/api/qr", fiber.Map{"url": "https://cdn.example.com/qr.png"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://cdn.example.com/qr.png", service.lastURL)
}

func TestSetQRURLRejectsNonImage(t *testing.T) {
	service := &stubQRService{setErr: services.ErrNotAnImage}
	app := newQRApp(service)

	resp := postJSON(t, app, "/api/qr", fiber.Map{"url": "https://example.com/page"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, service.lastURL)
}

func TestSetQRURLRequiresURL(t *testing.T) {
	app := newQRApp(&stubQRService{})

	resp := postJSON(t, app, "/api/qr", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

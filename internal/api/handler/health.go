package handler

import (
	"github.com/gofiber/fiber/v2"
)

// HealthStatus describes which dependencies are live.
type HealthStatus interface {
	ModelsLoaded() bool
	StoreAvailable() bool
}

type HealthHandler struct {
	status HealthStatus
	device string
}

func NewHealthHandler(status HealthStatus, device string) *HealthHandler {
	return &HealthHandler{status: status, device: device}
}

type HealthResponse struct {
	Status       string `json:"status"`
	ModelsLoaded bool   `json:"models_loaded"`
	Device       string `json:"device"`
	Detector     bool   `json:"detector"`
	Embedder     bool   `json:"embedder"`
	Database     bool   `json:"database"`
}

// Health GET /health - dependency status. "degraded" covers both a missing
// provider and a missing store.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	modelsLoaded := h.status.ModelsLoaded()
	database := h.status.StoreAvailable()

	status := "healthy"
	if !modelsLoaded || !database {
		status = "degraded"
	}

	return c.JSON(HealthResponse{
		Status:       status,
		ModelsLoaded: modelsLoaded,
		Device:       h.device,
		Detector:     modelsLoaded,
		Embedder:     modelsLoaded,
		Database:     database,
	})
}

// Root GET / - API metadata
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "eKYC Face Verification API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": fiber.Map{
			"POST /verify":      "Verify face between ID card and selfie",
			"POST /detect-face": "Detect faces in an image",
			"GET /health":       "Health check",
			"GET /swagger":      "API documentation (Swagger UI)",
		},
	})
}

package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ekyc-labs/ekyc-api/internal/auth"
	"github.com/ekyc-labs/ekyc-api/internal/domain"
	"github.com/ekyc-labs/ekyc-api/internal/service"
)

// AuthService interface for admin authentication
type AuthService interface {
	Login(username, password string) (*auth.TokenResult, error)
}

// AuditService interface for the admin view over the audit trail
type AuditService interface {
	ListVerifications(ctx context.Context, skip, limit int) (*service.VerificationPage, error)
	Stats(ctx context.Context) (*domain.VerificationStats, error)
	DeleteVerification(ctx context.Context, id string) error
}

// AdminHandler handles the authenticated admin surface
type AdminHandler struct {
	authService  AuthService
	auditService AuditService
	logger       *slog.Logger
}

func NewAdminHandler(authService AuthService, auditService AuditService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		auditService: auditService,
		logger:       logger,
	}
}

// LoginResponse response for the login endpoint
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// Login POST /admin/login - exchange credentials for a bearer token
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	result, err := h.authService.Login(username, password)
	if err != nil {
		return err
	}

	return c.JSON(LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		Username:    username,
	})
}

// ListVerifications GET /admin/verifications - page through the audit trail
func (h *AdminHandler) ListVerifications(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 0)

	page, err := h.auditService.ListVerifications(c.Context(), skip, limit)
	if err != nil {
		return err
	}

	return c.JSON(page)
}

// Stats GET /admin/stats - aggregate view of the audit trail
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.auditService.Stats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// DeleteVerification DELETE /admin/verifications/:id - remove one record
func (h *AdminHandler) DeleteVerification(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return domain.ErrNotFound
	}

	if err := h.auditService.DeleteVerification(c.Context(), id); err != nil {
		return err
	}

	h.logger.Info("verification record deleted", "id", id)

	return c.JSON(fiber.Map{
		"message": "Verification record deleted",
	})
}

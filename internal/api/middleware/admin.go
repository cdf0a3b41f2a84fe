package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ekyc-labs/ekyc-api/internal/auth"
	"github.com/ekyc-labs/ekyc-api/internal/domain"
)

// LocalAdminUser is the key to retrieve the admin username from context
const LocalAdminUser = "admin_user"

// AdminAuthDependencies contains dependencies for admin authentication
type AdminAuthDependencies struct {
	JWTService *auth.JWTService
	Logger     *slog.Logger
}

// AdminAuth guards the admin surface with a bearer token. Missing header,
// malformed header, bad signature and expired token all produce the same
// unauthorized response.
func AdminAuth(deps AdminAuthDependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			deps.Logger.Debug("missing authorization header for admin endpoint")
			return domain.ErrUnauthorized
		}

		claims, err := deps.JWTService.ValidateToken(token)
		if err != nil {
			deps.Logger.Warn("admin token rejected", "path", c.Path())
			return domain.ErrUnauthorized
		}

		c.Locals(LocalAdminUser, claims.Username)

		return c.Next()
	}
}

// extractBearerToken extracts token from Authorization header
func extractBearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// GetAdminUser retrieves the authenticated admin username from context
func GetAdminUser(c *fiber.Ctx) (string, error) {
	username, ok := c.Locals(LocalAdminUser).(string)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return username, nil
}

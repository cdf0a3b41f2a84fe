package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyc-labs/ekyc-api/internal/auth"
)

func newTestApp(logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(logger),
	})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func protectedApp(jwtService *auth.JWTService) *fiber.App {
	logger := testLogger()
	app := newTestApp(logger)
	app.Use(AdminAuth(AdminAuthDependencies{
		JWTService: jwtService,
		Logger:     logger,
	}))
	app.Get("/test", func(c *fiber.Ctx) error {
		username, err := GetAdminUser(c)
		if err != nil {
			return err
		}
		return c.SendString(username)
	})
	return app
}

func TestAdminAuth_Success(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "ekyc-test", 1*time.Hour)

	token, err := jwtService.GenerateToken("admin")
	require.NoError(t, err)

	app := protectedApp(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "admin", string(body))
}

func TestAdminAuth_Rejections(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "ekyc-test", 1*time.Hour)
	otherService := auth.NewJWTService("other-secret", "ekyc-test", 1*time.Hour)
	expiredService := auth.NewJWTService("test-secret", "ekyc-test", -1*time.Hour)

	wrongSecretToken, err := otherService.GenerateToken("admin")
	require.NoError(t, err)
	expiredToken, err := expiredService.GenerateToken("admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic YWRtaW46cGFzcw=="},
		{name: "malformed token", header: "Bearer not.a.token"},
		{name: "wrong secret", header: "Bearer " + wrongSecretToken},
		{name: "expired token", header: "Bearer " + expiredToken},
	}

	app := protectedApp(jwtService)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			// Every rejection carries the identical body.
			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
			assert.Equal(t, "Invalid credentials", body.Error.Message)
		})
	}
}

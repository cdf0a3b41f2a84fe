package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
)

func newTestService() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	credentials := NewStaticCredentials("admin", "s3cret")
	jwtService := NewJWTService("test-secret-key", "ekyc-test", 1*time.Hour)
	return NewService(credentials, jwtService, 1*time.Hour, logger)
}

func TestStaticCredentials_Verify(t *testing.T) {
	credentials := NewStaticCredentials("admin", "s3cret")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "correct pair", username: "admin", password: "s3cret", want: true},
		{name: "wrong password", username: "admin", password: "wrong", want: false},
		{name: "wrong username", username: "other", password: "s3cret", want: false},
		{name: "both wrong", username: "other", password: "wrong", want: false},
		{name: "empty pair", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, credentials.Verify(tt.username, tt.password))
		})
	}
}

func TestService_Login(t *testing.T) {
	service := newTestService()

	result, err := service.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, int64(3600), result.ExpiresIn)
}

func TestService_Login_Rejected(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "wrong username", username: "other", password: "s3cret"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.username, tt.password)
			require.Error(t, err)

			// Every rejection is the same error, whatever the cause.
			var appErr *domain.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "UNAUTHORIZED", appErr.Code)
			assert.Equal(t, 401, appErr.StatusCode)
			assert.Equal(t, domain.ErrUnauthorized.Message, appErr.Message)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	service := newTestService()

	result, err := service.Login("admin", "s3cret")
	require.NoError(t, err)

	username, err := service.Authenticate(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestService_Authenticate_InvalidToken(t *testing.T) {
	service := newTestService()

	_, err := service.Authenticate("not-a-token")
	require.Error(t, err)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.StatusCode)
}

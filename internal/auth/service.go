package auth

import (
	"log/slog"
	"time"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
)

// TokenResult is the successful login payload.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Service authenticates the admin account and issues session tokens.
type Service struct {
	credentials CredentialVerifier
	jwtService  *JWTService
	tokenTTL    time.Duration
	logger      *slog.Logger
}

func NewService(credentials CredentialVerifier, jwtService *JWTService, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		credentials: credentials,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login verifies the credential pair and issues a bearer token. Every failed
// attempt returns the same unauthorized error regardless of cause.
func (s *Service) Login(username, password string) (*TokenResult, error) {
	if !s.credentials.Verify(username, password) {
		s.logger.Warn("admin login rejected", "username", username)
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(username)
	if err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	s.logger.Info("admin login succeeded", "username", username)

	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// Authenticate validates a bearer token and returns the admin username.
func (s *Service) Authenticate(token string) (string, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return claims.Username, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that does not validate. Expired,
// malformed, bad signature and wrong algorithm all collapse into this one
// error so callers cannot leak which check failed.
var ErrInvalidToken = errors.New("invalid token")

// AdminClaims represents JWT claims for the admin session
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService handles JWT operations for admin authentication
type JWTService struct {
	secretKey []byte
	issuer    string
	expiresIn time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, expiresIn time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		expiresIn: expiresIn,
	}
}

// GenerateToken generates a new JWT token for the admin user
func (s *JWTService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken validates and parses a JWT token
func (s *JWTService) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

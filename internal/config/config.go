package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"8000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database. Optional: when empty or unreachable the API runs in
	// degraded mode (verification works, history is not recorded).
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Verification
	Threshold float64 `envconfig:"VERIFICATION_THRESHOLD" default:"0.4"`

	// Provider
	ProviderType string `envconfig:"FACE_PROVIDER" default:"deepface"`
	DeepFaceURL  string `envconfig:"DEEPFACE_URL" default:"http://localhost:5000"`
	AWSRegion    string `envconfig:"AWS_REGION" default:"us-east-1"`
	Device       string `envconfig:"DEVICE" default:"cpu"`

	// Admin
	AdminUsername string        `envconfig:"ADMIN_USERNAME" required:"true"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" required:"true"`
	JWTSecret     string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL      time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

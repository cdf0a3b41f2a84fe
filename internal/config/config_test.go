package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	required := map[string]string{
		"ADMIN_USERNAME": "admin",
		"ADMIN_PASSWORD": "changeme",
		"JWT_SECRET":     "secret123",
	}

	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name: "loads with all vars set",
			envVars: map[string]string{
				"PORT":                   "9000",
				"ENV":                    "production",
				"DATABASE_URL":           "postgres://localhost/ekyc",
				"VERIFICATION_THRESHOLD": "0.35",
				"FACE_PROVIDER":          "rekognition",
				"ADMIN_USERNAME":         "admin",
				"ADMIN_PASSWORD":         "changeme",
				"JWT_SECRET":             "secret123",
				"TOKEN_TTL":              "12h",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 9000 &&
					c.Environment == "production" &&
					c.DatabaseURL == "postgres://localhost/ekyc" &&
					c.Threshold == 0.35 &&
					c.ProviderType == "rekognition" &&
					c.TokenTTL == 12*time.Hour
			},
		},
		{
			name:    "uses defaults when optional vars missing",
			envVars: required,
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 8000 &&
					c.Environment == "development" &&
					c.DatabaseURL == "" &&
					c.Threshold == 0.4 &&
					c.ProviderType == "deepface" &&
					c.Device == "cpu" &&
					c.TokenTTL == 24*time.Hour
			},
		},
		{
			name: "fails when JWT_SECRET missing",
			envVars: map[string]string{
				"ADMIN_USERNAME": "admin",
				"ADMIN_PASSWORD": "changeme",
			},
			wantErr: true,
			check:   nil,
		},
		{
			name: "fails when admin credentials missing",
			envVars: map[string]string{
				"JWT_SECRET": "secret123",
			},
			wantErr: true,
			check:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error: %v", err)
				return
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Load() config check failed, got: %+v", cfg)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"development", "development", true},
		{"production", "production", false},
		{"staging", "staging", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Environment: tt.env}
			if got := c.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"production", "production", true},
		{"development", "development", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Environment: tt.env}
			if got := c.IsProduction(); got != tt.want {
				t.Errorf("IsProduction() = %v, want %v", got, tt.want)
			}
		})
	}
}

package face

import (
	"context"
	"testing"

	"github.com/ekyc-labs/ekyc-api/internal/config"
	"github.com/ekyc-labs/ekyc-api/internal/provider/deepface"
	"github.com/ekyc-labs/ekyc-api/internal/provider/mock"
)

func TestNewFaceProvider_DeepFace(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		providerType string
		deepFaceURL  string
	}{
		{
			name:         "explicit deepface provider",
			providerType: "deepface",
			deepFaceURL:  "http://localhost:5000",
		},
		{
			name:         "empty provider defaults to deepface",
			providerType: "",
			deepFaceURL:  "http://localhost:5000",
		},
		{
			name:         "custom deepface URL",
			providerType: "deepface",
			deepFaceURL:  "http://custom-host:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				ProviderType: tt.providerType,
				DeepFaceURL:  tt.deepFaceURL,
			}

			prov, err := NewFaceProvider(ctx, cfg)
			if err != nil {
				t.Fatalf("NewFaceProvider() error = %v", err)
			}

			if _, ok := prov.(*deepface.Provider); !ok {
				t.Errorf("NewFaceProvider() returned type %T, want *deepface.Provider", prov)
			}
		})
	}
}

func TestNewFaceProvider_Mock(t *testing.T) {
	cfg := &config.Config{ProviderType: "mock"}

	prov, err := NewFaceProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewFaceProvider() error = %v", err)
	}

	if _, ok := prov.(*mock.Provider); !ok {
		t.Errorf("NewFaceProvider() returned type %T, want *mock.Provider", prov)
	}
}

func TestNewFaceProvider_Unknown(t *testing.T) {
	cfg := &config.Config{ProviderType: "does-not-exist"}

	if _, err := NewFaceProvider(context.Background(), cfg); err == nil {
		t.Error("NewFaceProvider() expected error for unknown provider type")
	}
}

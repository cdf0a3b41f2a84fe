package face

import (
	"context"
	"fmt"

	"github.com/ekyc-labs/ekyc-api/internal/config"
	"github.com/ekyc-labs/ekyc-api/internal/provider"
	"github.com/ekyc-labs/ekyc-api/internal/provider/deepface"
	"github.com/ekyc-labs/ekyc-api/internal/provider/mock"
	"github.com/ekyc-labs/ekyc-api/internal/provider/rekognition"
)

// ProviderType defines supported face model provider types
type ProviderType string

const (
	// ProviderTypeDeepFace is the DeepFace provider (local model service)
	ProviderTypeDeepFace ProviderType = "deepface"
	// ProviderTypeRekognition is the AWS Rekognition provider (cloud)
	ProviderTypeRekognition ProviderType = "rekognition"
	// ProviderTypeMock is the deterministic in-process provider (dev/test)
	ProviderTypeMock ProviderType = "mock"
)

// NewFaceProvider creates a FaceProvider instance based on configuration.
//
// Environment variables:
//   - FACE_PROVIDER: "deepface", "rekognition" or "mock" (default: "deepface")
//   - DEEPFACE_URL: DeepFace API URL (default: "http://localhost:5000")
//   - AWS_REGION: AWS region for Rekognition (credentials via the AWS SDK
//     default credential chain)
func NewFaceProvider(ctx context.Context, cfg *config.Config) (provider.FaceProvider, error) {
	switch ProviderType(cfg.ProviderType) {
	case ProviderTypeRekognition:
		prov, err := rekognition.NewProvider(ctx, rekognition.Config{Region: cfg.AWSRegion})
		if err != nil {
			return nil, fmt.Errorf("create rekognition provider: %w", err)
		}
		return prov, nil

	case ProviderTypeMock:
		return mock.New(), nil

	case ProviderTypeDeepFace, "":
		deepfaceConfig := deepface.DefaultConfig()
		if cfg.DeepFaceURL != "" {
			deepfaceConfig.BaseURL = cfg.DeepFaceURL
		}
		return deepface.NewProvider(deepfaceConfig), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s (supported: %s, %s, %s)",
			cfg.ProviderType, ProviderTypeDeepFace, ProviderTypeRekognition, ProviderTypeMock)
	}
}

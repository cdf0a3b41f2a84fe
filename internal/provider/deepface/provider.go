package deepface

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
	"github.com/ekyc-labs/ekyc-api/internal/provider"
)

// Provider implements provider.FaceProvider using the DeepFace API
type Provider struct {
	client *Client
}

// NewProvider creates a new DeepFace provider
func NewProvider(config Config) *Provider {
	return &Provider{
		client: NewClient(config),
	}
}

// Name identifies the provider for health reporting
func (p *Provider) Name() string {
	return "deepface"
}

// DetectFaces detects faces in the image. Zero results is a valid outcome,
// not an error.
func (p *Provider) DetectFaces(ctx context.Context, image []byte) ([]domain.FaceDetection, error) {
	results, err := p.represent(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("detect faces: %w", err)
	}

	faces := make([]domain.FaceDetection, 0, len(results))
	for _, result := range results {
		faces = append(faces, domain.FaceDetection{
			BoundingBox: domain.BoundingBox{
				X:      float64(result.FacialArea.X),
				Y:      float64(result.FacialArea.Y),
				Width:  float64(result.FacialArea.W),
				Height: float64(result.FacialArea.H),
			},
			Confidence: result.Confidence,
		})
	}

	return faces, nil
}

// CompareFaces extracts one embedding per image and computes their cosine
// distance locally; DeepFace has no comparison endpoint.
func (p *Provider) CompareFaces(ctx context.Context, idImage, selfieImage []byte) (float64, error) {
	idEmbedding, err := p.embed(ctx, idImage)
	if err != nil {
		return 0, fmt.Errorf("embed id image: %w", err)
	}

	selfieEmbedding, err := p.embed(ctx, selfieImage)
	if err != nil {
		return 0, fmt.Errorf("embed selfie image: %w", err)
	}

	return CosineDistance(idEmbedding, selfieEmbedding), nil
}

func (p *Provider) represent(ctx context.Context, image []byte) ([]RepresentResult, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(image)

	resp, err := p.client.Represent(ctx, imageBase64)
	if err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// embed returns the embedding of the most prominent face in the image.
func (p *Provider) embed(ctx context.Context, image []byte) ([]float64, error) {
	results, err := p.represent(ctx, image)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, provider.ErrNoFaceInImage
	}

	return results[0].Embedding, nil
}

// Ensure Provider implements provider.FaceProvider
var _ provider.FaceProvider = (*Provider)(nil)

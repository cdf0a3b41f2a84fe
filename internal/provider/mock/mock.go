// Package mock implements provider.FaceProvider for tests and local
// development without a model service. Embeddings derive deterministically
// from the image hash, so identical images always verify and distinct images
// produce a stable nonzero distance.
package mock

import (
	"context"
	"crypto/sha256"
	"math"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
	"github.com/ekyc-labs/ekyc-api/internal/provider"
	"github.com/ekyc-labs/ekyc-api/internal/provider/deepface"
)

const embeddingDimension = 128

// minFaceImageSize is the size below which the mock reports no face,
// letting tests exercise the no-face outcome with tiny payloads.
const minFaceImageSize = 1000

// Provider implements provider.FaceProvider with deterministic results
type Provider struct{}

// New creates a new mock provider
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider for health reporting
func (p *Provider) Name() string {
	return "mock"
}

// DetectFaces reports a single centered face for any sufficiently large
// image and no faces for small ones.
func (p *Provider) DetectFaces(ctx context.Context, image []byte) ([]domain.FaceDetection, error) {
	if len(image) < minFaceImageSize {
		return []domain.FaceDetection{}, nil
	}

	return []domain.FaceDetection{
		{
			BoundingBox: domain.BoundingBox{
				X:      0.1,
				Y:      0.1,
				Width:  0.8,
				Height: 0.8,
			},
			Confidence: 0.99,
		},
	}, nil
}

// CompareFaces computes the cosine distance between hash-seeded embeddings
func (p *Provider) CompareFaces(ctx context.Context, idImage, selfieImage []byte) (float64, error) {
	if len(idImage) < minFaceImageSize || len(selfieImage) < minFaceImageSize {
		return 0, provider.ErrNoFaceInImage
	}

	return deepface.CosineDistance(generateEmbedding(idImage), generateEmbedding(selfieImage)), nil
}

// generateEmbedding derives a unit-norm embedding from the image hash
func generateEmbedding(image []byte) []float64 {
	hash := sha256.Sum256(image)
	embedding := make([]float64, embeddingDimension)
	hashLen := len(hash)

	for i := 0; i < embeddingDimension; i++ {
		embedding[i] = (float64(hash[i%hashLen])/255.0)*2 - 1
	}

	norm := 0.0
	for _, v := range embedding {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	for i := range embedding {
		embedding[i] /= norm
	}

	return embedding
}

var _ provider.FaceProvider = (*Provider)(nil)

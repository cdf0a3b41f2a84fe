package rekognition

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
	"github.com/ekyc-labs/ekyc-api/internal/provider"
)

const (
	// maxImageSize is the maximum image size supported by AWS Rekognition (5MB)
	maxImageSize = 5 * 1024 * 1024
	// minImageSize is the minimum image size for valid processing
	minImageSize = 100
)

// Provider implements the provider.FaceProvider interface using AWS
// Rekognition. DetectFaces maps to the DetectFaces API; CompareFaces maps to
// the CompareFaces API, with the reported similarity percentage converted to
// a distance so that lower always means more similar.
type Provider struct {
	client *Client
}

// Ensure Provider implements provider.FaceProvider interface at compile time
var _ provider.FaceProvider = (*Provider)(nil)

// NewProvider creates a new Rekognition provider
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create rekognition client: %w", err)
	}

	return &Provider{client: client}, nil
}

// Name identifies the provider for health reporting
func (p *Provider) Name() string {
	return "rekognition"
}

// validateImage checks if image data is valid for Rekognition processing
func validateImage(image []byte) error {
	if len(image) < minImageSize {
		return fmt.Errorf("%w: image too small (%d bytes, minimum %d)", ErrInvalidImage, len(image), minImageSize)
	}
	if len(image) > maxImageSize {
		return fmt.Errorf("%w: image too large (%d bytes, maximum %d)", ErrInvalidImage, len(image), maxImageSize)
	}
	return nil
}

// DetectFaces detects faces in an image using the Rekognition DetectFaces
// API. Bounding boxes are reported in Rekognition's relative coordinates.
// Returns an empty slice if no faces are detected (not an error).
func (p *Provider) DetectFaces(ctx context.Context, image []byte) ([]domain.FaceDetection, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	input := &rekognition.DetectFacesInput{
		Image: &types.Image{
			Bytes: image,
		},
		Attributes: []types.Attribute{types.AttributeDefault},
	}

	output, err := p.client.rekognition.DetectFaces(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: detect faces: %v", ErrRekognitionUnavailable, err)
	}

	faces := make([]domain.FaceDetection, 0, len(output.FaceDetails))
	for _, detail := range output.FaceDetails {
		face := domain.FaceDetection{
			Confidence: float64(aws.ToFloat32(detail.Confidence)) / 100.0,
		}
		if detail.BoundingBox != nil {
			face.BoundingBox = domain.BoundingBox{
				X:      float64(aws.ToFloat32(detail.BoundingBox.Left)),
				Y:      float64(aws.ToFloat32(detail.BoundingBox.Top)),
				Width:  float64(aws.ToFloat32(detail.BoundingBox.Width)),
				Height: float64(aws.ToFloat32(detail.BoundingBox.Height)),
			}
		}
		faces = append(faces, face)
	}

	return faces, nil
}

// CompareFaces compares the largest face of each image using the Rekognition
// CompareFaces API. The similarity percentage converts to a distance via
// distance = 1 - similarity/100.
func (p *Provider) CompareFaces(ctx context.Context, idImage, selfieImage []byte) (float64, error) {
	if err := validateImage(idImage); err != nil {
		return 0, err
	}
	if err := validateImage(selfieImage); err != nil {
		return 0, err
	}

	input := &rekognition.CompareFacesInput{
		SourceImage: &types.Image{
			Bytes: idImage,
		},
		TargetImage: &types.Image{
			Bytes: selfieImage,
		},
		// Report every match so low-similarity pairs still produce a
		// distance instead of an empty result.
		SimilarityThreshold: aws.Float32(0),
	}

	output, err := p.client.rekognition.CompareFaces(ctx, input)
	if err != nil {
		// Rekognition reports "no detectable face in source" as a
		// parameter error, which the core treats as a decidable outcome.
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case errCodeInvalidParameter:
				return 0, provider.ErrNoFaceInImage
			case errCodeInvalidImage, errCodeImageTooLarge:
				return 0, fmt.Errorf("%w: %v", ErrInvalidImage, err)
			}
		}
		return 0, fmt.Errorf("%w: compare faces: %v", ErrRekognitionUnavailable, err)
	}

	if len(output.FaceMatches) == 0 && len(output.UnmatchedFaces) == 0 {
		return 0, provider.ErrNoFaceInImage
	}

	// Best match wins; an unmatched target face means maximum distance.
	var bestSimilarity float32
	for _, match := range output.FaceMatches {
		similarity := aws.ToFloat32(match.Similarity)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
		}
	}

	return 1.0 - float64(bestSimilarity)/100.0, nil
}

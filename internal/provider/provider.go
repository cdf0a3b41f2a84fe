package provider

import (
	"context"
	"errors"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
)

// ErrNoFaceInImage is returned by CompareFaces when a face crop could not be
// produced from one of the inputs. "No face" from DetectFaces is an empty
// slice, never an error.
var ErrNoFaceInImage = errors.New("no face found in image")

// FaceProvider abstracts the external face-localization and embedding
// comparison models. Implementations are initialized once at startup and
// treated as immutable, concurrently-read shared state.
type FaceProvider interface {
	// DetectFaces locates faces in an encoded image. An image without any
	// face yields an empty slice; an error means genuine processing failure.
	DetectFaces(ctx context.Context, image []byte) ([]domain.FaceDetection, error)

	// CompareFaces computes the embedding distance between the most
	// prominent face of each image. Lower means more similar, always >= 0.
	// Returns ErrNoFaceInImage when either image has no usable face.
	CompareFaces(ctx context.Context, idImage, selfieImage []byte) (float64, error)

	// Name identifies the backing model service for health reporting.
	Name() string
}

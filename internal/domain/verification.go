package domain

import (
	"time"
)

// VerificationRecord is one completed verification attempt. Records are
// append-only: verified, confidence and threshold never change after insert.
// The ID is an opaque string at this boundary; the store adapter owns the
// conversion to its native identifier type.
type VerificationRecord struct {
	ID              string    `json:"id"`
	Verified        bool      `json:"verified"`
	Confidence      float64   `json:"confidence"`
	Threshold       float64   `json:"threshold"`
	IDImageName     string    `json:"id_image_name"`
	SelfieImageName string    `json:"selfie_image_name"`
	IDImageBlob     []byte    `json:"-"`
	SelfieImageBlob []byte    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// BoundingBox is the face area in the image, in pixel coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FaceDetection is produced per image per request and discarded after the
// pipeline completes. Never persisted.
type FaceDetection struct {
	BoundingBox BoundingBox `json:"bbox"`
	Confidence  float64     `json:"confidence"`
}

// VerificationStats aggregates the audit trail for the admin dashboard.
type VerificationStats struct {
	TotalVerifications int64   `json:"total_verifications"`
	VerifiedCount      int64   `json:"verified_count"`
	NotVerifiedCount   int64   `json:"not_verified_count"`
	VerificationRate   float64 `json:"verification_rate"`
	AverageConfidence  float64 `json:"average_confidence"`
}

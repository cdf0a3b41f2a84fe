package deepface

import (
	"math"
)

// CosineDistance calculates the cosine distance between two embedding
// vectors: 0.0 for identical direction, up to 2.0 for opposite. Lower means
// more similar. Mismatched or empty vectors yield the maximum distance.
func CosineDistance(embedding1, embedding2 []float64) float64 {
	if len(embedding1) != len(embedding2) || len(embedding1) == 0 {
		return 2.0
	}

	var dotProduct, norm1, norm2 float64
	for i := range embedding1 {
		dotProduct += embedding1[i] * embedding2[i]
		norm1 += embedding1[i] * embedding1[i]
		norm2 += embedding2[i] * embedding2[i]
	}

	if norm1 == 0 || norm2 == 0 {
		return 2.0
	}

	distance := 1.0 - dotProduct/(math.Sqrt(norm1)*math.Sqrt(norm2))
	if distance < 0 {
		// Floating point rounding can push identical vectors slightly
		// below zero; the contract guarantees distance >= 0.
		return 0
	}
	return distance
}

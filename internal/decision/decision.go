// Package decision converts an embedding distance and a threshold into a
// verification outcome. It is pure and stateless: identical inputs always
// produce identical outcomes, which keeps the audit trail reproducible.
package decision

// DefaultThreshold is the cutoff distance below which two faces are declared
// a match. Overridable per deployment via configuration, never per request.
const DefaultThreshold = 0.4

// Outcome is the result of a threshold decision.
type Outcome struct {
	Verified  bool
	Distance  float64
	Threshold float64
}

// Decide applies the matching rule: verified when distance <= threshold.
// Equal distance and threshold counts as a match.
func Decide(distance, threshold float64) Outcome {
	return Outcome{
		Verified:  distance <= threshold,
		Distance:  distance,
		Threshold: threshold,
	}
}

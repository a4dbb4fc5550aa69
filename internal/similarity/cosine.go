package similarity

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"textsim/internal/freq"
)

// Cosine computes the cosine similarity between two character frequency
// tables: the dot product over the union of their characters divided by the
// product of their magnitudes. Returns exactly 0 when either table is empty
// (zero magnitude leaves the angle undefined). The result is always in
// [0, 1] since counts are non-negative.
func Cosine(a, b freq.Table) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	keys := make(map[rune]struct{}, len(a)+len(b))
	for r := range a {
		keys[r] = struct{}{}
	}
	for r := range b {
		keys[r] = struct{}{}
	}

	va := make([]float64, 0, len(keys))
	vb := make([]float64, 0, len(keys))
	for r := range keys {
		va = append(va, float64(a[r]))
		vb = append(vb, float64(b[r]))
	}

	denom := floats.Norm(va, 2) * floats.Norm(vb, 2)
	if denom == 0 {
		return 0
	}
	// Counts are non-negative, so the ratio can only exceed 1 through
	// floating-point error.
	return math.Min(1, floats.Dot(va, vb)/denom)
}

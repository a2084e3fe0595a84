package shift

import (
	"fmt"
	"math"
)

// Similarity returns the cosine similarity of two equally sampled spectra:
// 1 for proportional curves, 0 for curves without overlap.
func Similarity(a, b []float64) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmpty
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	ea, eb := energy(a), energy(b)
	if ea == 0 || eb == 0 {
		return 0, ErrFlat
	}
	return dotAtLag(a, b, 0) / math.Sqrt(ea*eb), nil
}

// RMSE returns the root mean square difference of two equally sampled spectra.
func RMSE(a, b []float64) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmpty
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s / float64(len(a))), nil
}

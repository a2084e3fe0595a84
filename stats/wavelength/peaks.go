package wavelength

import (
	"cmp"
	"slices"
)

// Peak is a local maximum of an intensity curve.
type Peak struct {
	Index      int
	Wavelength float64 // refined by parabolic interpolation (nm)
	Intensity  float64 // sample value at Index
}

// Peaks returns the local maxima of intensity not lower than minHeight,
// ordered by decreasing intensity. A plateau reports its first sample. The
// grid end points are never peaks.
func Peaks(intensity []float64, low, step, minHeight float64) []Peak {
	var out []Peak
	for i := 1; i < len(intensity)-1; i++ {
		a, b, c := intensity[i-1], intensity[i], intensity[i+1]
		if b <= a || b < c || b < minHeight {
			continue
		}

		offset := 0.0
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
		out = append(out, Peak{
			Index:      i,
			Wavelength: at(i, low, step) + offset*step,
			Intensity:  b,
		})
	}

	slices.SortStableFunc(out, func(x, y Peak) int {
		return cmp.Compare(y.Intensity, x.Intensity)
	})
	return out
}

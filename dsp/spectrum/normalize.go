package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
)

// Normalize returns a copy of s scaled so that its largest intensity is 1.
// An all-zero spectrum is returned unchanged.
func Normalize(s Interpolated) Interpolated {
	in := s.Intensities()
	scaled := scaleToUnitPeak(in)

	out := Interpolated{
		Samples: make([]Sample, len(s.Samples)),
		Step:    s.Step,
	}
	for i, p := range s.Samples {
		out.Samples[i] = Sample{Wavelength: p.Wavelength, Intensity: scaled[i]}
	}
	return out
}

// NormalizeRaw returns a copy of r with intensities divided by the largest one.
func NormalizeRaw(r Raw) Raw {
	scaled := scaleToUnitPeak(r.Intensities())

	out := make(Raw, len(r))
	for i, l := range r {
		out[i] = Line{Wavelength: l.Wavelength, Intensity: scaled[i]}
	}
	return out
}

func scaleToUnitPeak(in []float64) []float64 {
	peak := 0.0
	for _, v := range in {
		if v > peak {
			peak = v
		}
	}

	out := make([]float64, len(in))
	if peak == 0 {
		copy(out, in)
		return out
	}

	vecmath.ScaleBlock(out, in, 1/peak)
	return out
}

package wavelength

import (
	"math"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
)

// Stats holds statistics of an intensity curve on a uniform wavelength grid.
type Stats struct {
	Count int
	Low   float64 // first grid wavelength (nm)
	Step  float64 // grid spacing (nm)
	Sum   float64 // sum of intensities
	Max   float64
	// PeakWavelength is the wavelength of the first maximum sample.
	PeakWavelength float64
	PeakIndex      int
	Min            float64
	Mean           float64
	Energy         float64 // sum of squared intensities
	Integrated     float64 // trapezoidal area (intensity * nm)
	// Shape descriptors
	Centroid float64 // intensity-weighted mean wavelength (nm)
	Spread   float64 // intensity-weighted standard deviation (nm)
	Rolloff  float64 // wavelength below which 85% of the energy lies (nm)
	FWHM     float64 // full width at half maximum around the peak (nm)
}

// DefaultRolloff is the energy fraction used by [Calculate].
const DefaultRolloff = 0.85

func at(i int, low, step float64) float64 {
	return low + float64(i)*step
}

// Of computes the statistics of a resampled spectrum.
func Of(sp spectrum.Interpolated) Stats {
	low := 0.0
	if sp.Len() > 0 {
		low = sp.Samples[0].Wavelength
	}
	return Calculate(sp.Intensities(), low, sp.Step)
}

// Calculate computes all statistics of intensity, where sample i lies at
// low + i*step nm.
func Calculate(intensity []float64, low, step float64) Stats {
	n := len(intensity)
	s := Stats{Count: n, Low: low, Step: step}
	if n == 0 {
		return s
	}

	s.Min = intensity[0]
	s.Max = intensity[0]
	for i, v := range intensity {
		s.Sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.PeakIndex = i
		}
		if v < s.Min {
			s.Min = v
		}
	}
	s.PeakWavelength = at(s.PeakIndex, low, step)
	s.Mean = s.Sum / float64(n)
	s.Integrated = integrate(intensity, step)

	s.Centroid = centroid(intensity, low, step, s.Sum)
	s.Spread = spread(intensity, low, step, s.Centroid, s.Sum)
	s.Rolloff = rolloff(intensity, low, step, DefaultRolloff, s.Energy)
	s.FWHM = fwhm(intensity, step, s.PeakIndex)

	return s
}

// Centroid returns the intensity-weighted mean wavelength in nm.
//
//	centroid = sum(w_i * I_i) / sum(I_i)
func Centroid(intensity []float64, low, step float64) float64 {
	sum := 0.0
	for _, v := range intensity {
		sum += v
	}
	return centroid(intensity, low, step, sum)
}

func centroid(intensity []float64, low, step, sum float64) float64 {
	if len(intensity) == 0 || sum == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range intensity {
		weighted += at(i, low, step) * v
	}
	return weighted / sum
}

func spread(intensity []float64, low, step, cent, sum float64) float64 {
	if len(intensity) == 0 || sum == 0 {
		return 0
	}
	sq := 0.0
	for i, v := range intensity {
		d := at(i, low, step) - cent
		sq += d * d * v
	}
	return math.Sqrt(sq / sum)
}

// Rolloff returns the wavelength below which fraction (0..1) of the energy
// lies. Energy is the sum of squared intensities.
func Rolloff(intensity []float64, low, step, fraction float64) float64 {
	energy := 0.0
	for _, v := range intensity {
		energy += v * v
	}
	return rolloff(intensity, low, step, fraction, energy)
}

func rolloff(intensity []float64, low, step, fraction, energy float64) float64 {
	n := len(intensity)
	if n == 0 || energy == 0 {
		return 0
	}
	threshold := fraction * energy
	cum := 0.0
	for i, v := range intensity {
		cum += v * v
		if cum >= threshold {
			return at(i, low, step)
		}
	}
	return at(n-1, low, step)
}

// Integrated returns the trapezoidal area under intensity.
func Integrated(intensity []float64, step float64) float64 {
	return integrate(intensity, step)
}

func integrate(intensity []float64, step float64) float64 {
	n := len(intensity)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range intensity {
		sum += v
	}
	return step * (sum - (intensity[0]+intensity[n-1])/2)
}

// FWHM returns the full width at half maximum around the highest sample, in
// nm. Crossings are located by linear interpolation between samples; a side
// that never drops to half maximum extends to the end of the grid.
func FWHM(intensity []float64, step float64) float64 {
	peak := 0
	for i, v := range intensity {
		if v > intensity[peak] {
			peak = i
		}
	}
	return fwhm(intensity, step, peak)
}

func fwhm(intensity []float64, step float64, peak int) float64 {
	n := len(intensity)
	if n < 2 || !(intensity[peak] > 0) {
		return 0
	}

	half := intensity[peak] / 2

	lower := 0.0
	for i := peak; i >= 1; i-- {
		if intensity[i-1] <= half && intensity[i] > half {
			lower = crossing(i-1, intensity[i-1], intensity[i], half)
			break
		}
	}

	upper := float64(n - 1)
	for i := peak; i < n-1; i++ {
		if intensity[i+1] <= half && intensity[i] > half {
			upper = crossing(i, intensity[i], intensity[i+1], half)
			break
		}
	}

	if upper < lower {
		return 0
	}
	return (upper - lower) * step
}

// crossing returns the fractional index between i and i+1 where the linear
// segment from a to b meets level.
func crossing(i int, a, b, level float64) float64 {
	d := b - a
	if d == 0 {
		return float64(i) + 0.5
	}
	return float64(i) + (level-a)/d
}

package spectrum

// Line is one emission record: wavelength in nm, intensity in arbitrary units.
type Line struct {
	Wavelength float64
	Intensity  float64
}

// Raw is a line list in source order. Sources deliver ascending wavelengths;
// Raw does not re-sort and does not deduplicate.
type Raw []Line

// Wavelengths returns the wavelength column.
func (r Raw) Wavelengths() []float64 {
	out := make([]float64, len(r))
	for i, l := range r {
		out[i] = l.Wavelength
	}
	return out
}

// Intensities returns the intensity column.
func (r Raw) Intensities() []float64 {
	out := make([]float64, len(r))
	for i, l := range r {
		out[i] = l.Intensity
	}
	return out
}

// Span returns the first and last wavelength. ok is false for an empty list.
func (r Raw) Span() (lo, hi float64, ok bool) {
	if len(r) == 0 {
		return 0, 0, false
	}
	return r[0].Wavelength, r[len(r)-1].Wavelength, true
}

// Sample is one point of a resampled spectrum.
type Sample struct {
	Wavelength float64
	Intensity  float64
}

// Interpolated is a spectrum on a uniform wavelength grid.
type Interpolated struct {
	Samples []Sample
	// Step is the grid spacing in nm.
	Step float64
}

// Len returns the number of samples.
func (s Interpolated) Len() int { return len(s.Samples) }

// Wavelengths returns the wavelength grid.
func (s Interpolated) Wavelengths() []float64 {
	out := make([]float64, len(s.Samples))
	for i, p := range s.Samples {
		out[i] = p.Wavelength
	}
	return out
}

// Intensities returns the intensity vector.
func (s Interpolated) Intensities() []float64 {
	out := make([]float64, len(s.Samples))
	for i, p := range s.Samples {
		out[i] = p.Intensity
	}
	return out
}

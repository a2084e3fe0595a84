package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-libs/dsp/core"
	"github.com/cwbudde/algo-libs/dsp/interp"
)

var (
	// ErrInsufficientData indicates fewer than three distinct wavelengths.
	ErrInsufficientData = errors.New("spectrum: insufficient data")
	// ErrInvalidResolution indicates a non-positive or non-finite grid step.
	ErrInvalidResolution = errors.New("spectrum: invalid resolution")
	// ErrInvalidWindow indicates low > upper or a non-finite bound.
	ErrInvalidWindow = errors.New("spectrum: invalid window")
	// ErrUnsorted indicates a raw spectrum whose wavelengths decrease.
	ErrUnsorted = errors.New("spectrum: wavelengths not ascending")
)

const (
	// DefaultResolution is the default grid step in nm.
	DefaultResolution = 0.1
	// DefaultDecimals is the number of decimals kept in the output.
	DefaultDecimals = 3
)

type config struct {
	resolution float64
	decimals   int
}

// Option configures [Reconstruct].
type Option func(*config)

// WithResolution sets the grid step in nm. Invalid values are not filtered
// here; Reconstruct rejects them with [ErrInvalidResolution].
func WithResolution(step float64) Option {
	return func(cfg *config) {
		cfg.resolution = step
	}
}

// WithDecimals sets the rounding precision. Negative values disable rounding.
func WithDecimals(n int) Option {
	return func(cfg *config) {
		cfg.decimals = n
	}
}

func defaultConfig() config {
	return config{
		resolution: DefaultResolution,
		decimals:   DefaultDecimals,
	}
}

// GridLen returns the number of samples Reconstruct produces for the window
// [low, upper) at the given step: ceil((upper-low)/step), or 0 when the
// window is empty or the step is not positive.
func GridLen(low, upper, step float64) int {
	if !(step > 0) || !(upper > low) {
		return 0
	}
	return int(math.Ceil((upper - low) / step))
}

// Grid returns the rounded wavelength grid for [low, upper) at the given step.
// It matches the wavelengths Reconstruct emits with default rounding and
// depends on nothing but its arguments.
func Grid(low, upper, step float64) []float64 {
	n := GridLen(low, upper, step)
	out := make([]float64, n)
	for i := range out {
		out[i] = core.Round(low+float64(i)*step, DefaultDecimals)
	}
	return out
}

// Reconstruct resamples raw onto the uniform grid [low, upper).
//
// raw must be ascending in wavelength. Consecutive lines with the same
// wavelength are merged, keeping the larger intensity; at least three
// distinct wavelengths must remain. Grid points outside the span of raw are
// extrapolated linearly and carry no particular confidence.
func Reconstruct(raw Raw, low, upper float64, opts ...Option) (Interpolated, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !(cfg.resolution > 0) || math.IsInf(cfg.resolution, 0) {
		return Interpolated{}, fmt.Errorf("%w: %v", ErrInvalidResolution, cfg.resolution)
	}

	if !core.Finite(low) || !core.Finite(upper) || low > upper {
		return Interpolated{}, fmt.Errorf("%w: [%v, %v)", ErrInvalidWindow, low, upper)
	}

	x, y, err := knots(raw)
	if err != nil {
		return Interpolated{}, err
	}

	spline, err := interp.NewNaturalSpline(x, y)
	if err != nil {
		return Interpolated{}, fmt.Errorf("spectrum: fit: %w", err)
	}

	n := GridLen(low, upper, cfg.resolution)
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = low + float64(i)*cfg.resolution
	}

	values := make([]float64, n)
	if err := spline.EvalInto(values, grid); err != nil {
		return Interpolated{}, fmt.Errorf("spectrum: evaluate: %w", err)
	}

	for i, v := range values {
		values[i] = core.NonNegative(v)
	}

	if n > 0 {
		values[0] = 0
		values[n-1] = 0
	}

	out := Interpolated{
		Samples: make([]Sample, n),
		Step:    cfg.resolution,
	}
	for i := range out.Samples {
		out.Samples[i] = Sample{
			Wavelength: core.Round(grid[i], cfg.decimals),
			Intensity:  core.Round(values[i], cfg.decimals),
		}
	}

	return out, nil
}

// knots extracts spline knots from raw, merging repeated wavelengths.
func knots(raw Raw) (x, y []float64, err error) {
	x = make([]float64, 0, len(raw))
	y = make([]float64, 0, len(raw))

	for i, l := range raw {
		if !core.Finite(l.Wavelength) || !core.Finite(l.Intensity) {
			return nil, nil, fmt.Errorf("spectrum: line %d: non-finite value (%v, %v)", i, l.Wavelength, l.Intensity)
		}

		last := len(x) - 1
		switch {
		case last >= 0 && l.Wavelength == x[last]:
			y[last] = math.Max(y[last], l.Intensity)
		case last >= 0 && l.Wavelength < x[last]:
			return nil, nil, fmt.Errorf("%w: line %d (%v nm) after %v nm", ErrUnsorted, i, l.Wavelength, x[last])
		default:
			x = append(x, l.Wavelength)
			y = append(y, l.Intensity)
		}
	}

	if len(x) < interp.MinKnots {
		return nil, nil, fmt.Errorf("%w: %d distinct wavelengths, need %d", ErrInsufficientData, len(x), interp.MinKnots)
	}

	return x, y, nil
}

package shift

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-libs/dsp/core"
)

// Errors returned by the estimator.
var (
	ErrEmpty          = errors.New("shift: spectrum is empty")
	ErrLengthMismatch = errors.New("shift: spectra differ in length")
	ErrInvalidStep    = errors.New("shift: step must be positive")
	ErrFlat           = errors.New("shift: spectrum has no energy")
)

// Estimate is the result of aligning a target spectrum to a reference.
type Estimate struct {
	Lag   float64 // offset in grid steps, refined
	Shift float64 // offset in nm
	Score float64 // normalized correlation at the integer lag, -1..1
}

// Estimator aligns spectra on a grid with spacing Step nm.
type Estimator struct {
	Step float64
	// MaxShift bounds the searched offset in nm. Zero searches all lags.
	MaxShift float64
}

// NewEstimator creates an estimator for the given grid step.
func NewEstimator(step float64) *Estimator {
	return &Estimator{Step: step}
}

// Estimate returns the offset of target relative to ref.
func (e *Estimator) Estimate(ref, target []float64) (Estimate, error) {
	n := len(ref)
	if n == 0 {
		return Estimate{}, ErrEmpty
	}
	if len(target) != n {
		return Estimate{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(target))
	}
	if !(e.Step > 0) || !core.Finite(e.Step) {
		return Estimate{}, ErrInvalidStep
	}

	er, et := energy(ref), energy(target)
	if er == 0 || et == 0 {
		return Estimate{}, ErrFlat
	}

	corr, err := crossCorrelate(ref, target)
	if err != nil {
		return Estimate{}, err
	}

	maxLag := n - 1
	if e.MaxShift > 0 {
		maxLag = min(maxLag, int(math.Floor(e.MaxShift/e.Step)))
	}

	best := 0
	bestVal := math.Inf(-1)
	for k := -maxLag; k <= maxLag; k++ {
		if v := corr(k); v > bestVal {
			best, bestVal = k, v
		}
	}

	lag := float64(best)
	if best > -maxLag && best < maxLag {
		a, b, c := corr(best-1), bestVal, corr(best+1)
		if d := a - 2*b + c; d < 0 {
			lag += 0.5 * (a - c) / d
		}
	}

	return Estimate{
		Lag:   lag,
		Shift: lag * e.Step,
		Score: dotAtLag(ref, target, best) / math.Sqrt(er*et),
	}, nil
}

const minFFTSize = 16

// crossCorrelate returns c(k) = sum_i ref[i]*target[i+k] for |k| < len(ref).
func crossCorrelate(ref, target []float64) (func(k int) float64, error) {
	n := len(ref)
	size := nextPowerOf2(max(2*n-1, minFFTSize))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("shift: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, size)
	b := make([]complex128, size)
	for i := range n {
		a[i] = complex(ref[i], 0)
		b[i] = complex(target[i], 0)
	}

	if err := plan.Forward(a, a); err != nil {
		return nil, fmt.Errorf("shift: forward FFT failed: %w", err)
	}
	if err := plan.Forward(b, b); err != nil {
		return nil, fmt.Errorf("shift: forward FFT failed: %w", err)
	}

	for i := range a {
		a[i] = cmplx.Conj(a[i]) * b[i]
	}

	if err := plan.Inverse(b, a); err != nil {
		return nil, fmt.Errorf("shift: inverse FFT failed: %w", err)
	}

	return func(k int) float64 {
		if k < 0 {
			k += size
		}
		return real(b[k])
	}, nil
}

func dotAtLag(ref, target []float64, k int) float64 {
	n := len(ref)
	lo, hi := max(0, -k), min(n, n-k)
	if lo >= hi {
		return 0
	}
	prod := make([]float64, hi-lo)
	vecmath.MulBlock(prod, ref[lo:hi], target[lo+k:hi+k])
	return sum(prod)
}

func energy(x []float64) float64 {
	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)
	return sum(sq)
}

func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

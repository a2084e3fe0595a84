package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrTooFewKnots indicates fewer than three knots were supplied.
	ErrTooFewKnots = errors.New("interp: need at least 3 knots")
	// ErrNotIncreasing indicates the knot abscissae are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: knots must be strictly increasing")
	// ErrLengthMismatch indicates x and y differ in length.
	ErrLengthMismatch = errors.New("interp: x and y length mismatch")
)

// MinKnots is the smallest knot count accepted by [NewNaturalSpline].
const MinKnots = 3

// NaturalSpline is a cubic spline with natural boundary conditions.
//
// On segment i (x[i] <= t <= x[i+1]) with h = t - x[i]:
//
//	S(t) = y[i] + b[i]*h + m[i]/2*h^2 + (m[i+1]-m[i])/(6*dx[i])*h^3
//
// where m are the second derivatives at the knots and m[0] = m[n-1] = 0.
type NaturalSpline struct {
	x []float64
	y []float64
	m []float64 // second derivatives at knots
	b []float64 // first derivative at the left end of each segment

	slopeLow  float64
	slopeHigh float64
}

// NewNaturalSpline fits a natural cubic spline through (x[i], y[i]).
// x must be strictly increasing and contain at least [MinKnots] values.
// The inputs are copied.
func NewNaturalSpline(x, y []float64) (*NaturalSpline, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	n := len(x)
	if n < MinKnots {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKnots, n)
	}

	for i := 1; i < n; i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("%w: x[%d]=%v after x[%d]=%v", ErrNotIncreasing, i, x[i], i-1, x[i-1])
		}
	}

	s := &NaturalSpline{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		m: make([]float64, n),
		b: make([]float64, n-1),
	}
	s.solve()

	last := n - 2
	dx := s.x[last+1] - s.x[last]
	s.slopeLow = s.b[0]
	s.slopeHigh = s.b[last] + dx*(s.m[last]+s.m[last+1])/2

	return s, nil
}

// solve computes the knot second derivatives with the Thomas algorithm.
// The interior equations for i = 1..n-2 are
//
//	dx[i-1]*m[i-1] + 2*(dx[i-1]+dx[i])*m[i] + dx[i]*m[i+1] = 6*(d[i] - d[i-1])
//
// with d the secant slopes.
func (s *NaturalSpline) solve() {
	n := len(s.x)
	inner := n - 2

	diag := make([]float64, inner)
	upper := make([]float64, inner)
	rhs := make([]float64, inner)

	for k := range inner {
		i := k + 1
		h0 := s.x[i] - s.x[i-1]
		h1 := s.x[i+1] - s.x[i]
		d0 := (s.y[i] - s.y[i-1]) / h0
		d1 := (s.y[i+1] - s.y[i]) / h1
		diag[k] = 2 * (h0 + h1)
		upper[k] = h1
		rhs[k] = 6 * (d1 - d0)
	}

	// Forward elimination; the sub-diagonal entry of row k is dx[k].
	for k := 1; k < inner; k++ {
		lower := s.x[k+1] - s.x[k]
		w := lower / diag[k-1]
		diag[k] -= w * upper[k-1]
		rhs[k] -= w * rhs[k-1]
	}

	for k := inner - 1; k >= 0; k-- {
		v := rhs[k]
		if k+1 < inner {
			v -= upper[k] * s.m[k+2]
		}
		s.m[k+1] = v / diag[k]
	}

	for i := range n - 1 {
		h := s.x[i+1] - s.x[i]
		s.b[i] = (s.y[i+1]-s.y[i])/h - h*(2*s.m[i]+s.m[i+1])/6
	}
}

// Len returns the number of knots.
func (s *NaturalSpline) Len() int { return len(s.x) }

// Min returns the first knot abscissa.
func (s *NaturalSpline) Min() float64 { return s.x[0] }

// Max returns the last knot abscissa.
func (s *NaturalSpline) Max() float64 { return s.x[len(s.x)-1] }

// SecondDerivatives returns a copy of the knot second derivatives.
func (s *NaturalSpline) SecondDerivatives() []float64 {
	return append([]float64(nil), s.m...)
}

// At evaluates the spline at t.
//
// For t outside [Min, Max] the result is a linear extrapolation using the end
// slope of the spline. NaN in gives NaN out.
func (s *NaturalSpline) At(t float64) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}

	n := len(s.x)
	if t <= s.x[0] {
		return s.y[0] + s.slopeLow*(t-s.x[0])
	}

	if t >= s.x[n-1] {
		return s.y[n-1] + s.slopeHigh*(t-s.x[n-1])
	}

	// Largest i with x[i] <= t.
	i := sort.SearchFloat64s(s.x, t)
	if i == n || s.x[i] > t {
		i--
	}

	return s.segment(i, t)
}

// EvalInto evaluates the spline at every point of xs and stores the results
// in dst. xs should be ascending; the segment search then advances
// monotonically. Unsorted xs are still evaluated correctly, just slower.
// dst and xs must have equal length.
func (s *NaturalSpline) EvalInto(dst, xs []float64) error {
	if len(dst) != len(xs) {
		return fmt.Errorf("%w: dst %d vs xs %d", ErrLengthMismatch, len(dst), len(xs))
	}

	n := len(s.x)
	seg := 0
	prev := math.Inf(-1)

	for k, t := range xs {
		switch {
		case math.IsNaN(t):
			dst[k] = math.NaN()
			continue
		case t <= s.x[0] || t >= s.x[n-1]:
			dst[k] = s.At(t)
			prev = t
			continue
		case t < prev:
			seg = 0
		}

		for seg < n-2 && s.x[seg+1] <= t {
			seg++
		}

		dst[k] = s.segment(seg, t)
		prev = t
	}

	return nil
}

func (s *NaturalSpline) segment(i int, t float64) float64 {
	dx := s.x[i+1] - s.x[i]
	h := t - s.x[i]
	c3 := (s.m[i+1] - s.m[i]) / (6 * dx)
	return s.y[i] + h*(s.b[i]+h*(s.m[i]/2+h*c3))
}

// Package core holds small numeric helpers shared by the spectrum packages.
package core

import "math"

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round rounds v half away from zero to the given number of decimals.
// Negative decimals return v unchanged. Negative zero becomes zero.
func Round(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}

	p := math.Pow10(decimals)

	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}

	return r
}

// NonNegative returns v, or 0 when v is negative or NaN.
func NonNegative(v float64) float64 {
	if v > 0 {
		return v
	}

	return 0
}

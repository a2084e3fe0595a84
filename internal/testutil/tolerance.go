package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNonNegative fails t if any element is negative or NaN.
func RequireNonNegative(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= 0) {
			t.Fatalf("index %d: value %v is not >= 0", i, v)
		}
	}
}

// RequireUniformGrid fails t unless consecutive values differ by step within eps.
func RequireUniformGrid(t testing.TB, grid []float64, step, eps float64) {
	t.Helper()
	for i := 1; i < len(grid); i++ {
		if d := grid[i] - grid[i-1]; math.Abs(d-step) > eps {
			t.Fatalf("grid[%d]-grid[%d] = %v, want %v (eps %v)", i, i-1, d, step, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

package shift

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-libs/internal/testutil"
)

func gaussian(center float64) []float64 {
	return testutil.GaussianLines(480, 520, 0.1, [3]float64{center, 100, 1.0}).Intensities()
}

func TestEstimateZeroShift(t *testing.T) {
	ref := gaussian(500)
	est, err := NewEstimator(0.1).Estimate(ref, ref)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(est.Shift) > 1e-9 {
		t.Fatalf("Shift: got %v, want 0", est.Shift)
	}
	if math.Abs(est.Score-1) > 1e-9 {
		t.Fatalf("Score: got %v, want 1", est.Score)
	}
}

func TestEstimateShift(t *testing.T) {
	tests := []struct {
		name  string
		shift float64
	}{
		{"integer right", 1.5},
		{"integer left", -2.0},
		{"fractional", 0.37},
		{"fractional left", -0.84},
	}

	ref := gaussian(500)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := NewEstimator(0.1).Estimate(ref, gaussian(500+tt.shift))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(est.Shift-tt.shift) > 0.02 {
				t.Fatalf("Shift: got %v, want %v", est.Shift, tt.shift)
			}
			if est.Score < 0.95 {
				t.Fatalf("Score: got %v, want close to 1", est.Score)
			}
		})
	}
}

func TestEstimateMaxShift(t *testing.T) {
	// two lines; without a bound the strong one 6 nm away wins
	ref := testutil.GaussianLines(480, 520, 0.1, [3]float64{490, 100, 0.5}).Intensities()
	target := testutil.GaussianLines(480, 520, 0.1,
		[3]float64{490.5, 30, 0.5}, [3]float64{496, 100, 0.5}).Intensities()

	e := NewEstimator(0.1)
	est, err := e.Estimate(ref, target)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(est.Shift-6) > 0.05 {
		t.Fatalf("unbounded Shift: got %v, want 6", est.Shift)
	}

	e.MaxShift = 2
	est, err = e.Estimate(ref, target)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(est.Shift-0.5) > 0.05 {
		t.Fatalf("bounded Shift: got %v, want 0.5", est.Shift)
	}
}

func TestEstimateErrors(t *testing.T) {
	tests := []struct {
		name        string
		step        float64
		ref, target []float64
		want        error
	}{
		{"empty", 0.1, nil, nil, ErrEmpty},
		{"length", 0.1, []float64{1, 2}, []float64{1}, ErrLengthMismatch},
		{"step", 0, []float64{1}, []float64{1}, ErrInvalidStep},
		{"flat", 0.1, []float64{0, 0}, []float64{1, 0}, ErrFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEstimator(tt.step).Estimate(tt.ref, tt.target)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	a := []float64{0, 1, 2, 1, 0}

	s, err := Similarity(a, []float64{0, 2, 4, 2, 0})
	if err != nil || math.Abs(s-1) > 1e-12 {
		t.Fatalf("proportional: got %v, %v", s, err)
	}

	s, err = Similarity(a, []float64{3, 0, 0, 0, 3})
	if err != nil || s != 0 {
		t.Fatalf("disjoint: got %v, %v", s, err)
	}

	if _, err := Similarity(a, a[:2]); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := Similarity(a, make([]float64, 5)); !errors.Is(err, ErrFlat) {
		t.Fatalf("expected ErrFlat, got %v", err)
	}
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 6})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("RMSE: got %v, want 1", got)
	}
	if _, err := RMSE(nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

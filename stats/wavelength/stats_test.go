package wavelength

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/internal/testutil"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil, 200, 0.1)
	if s.Count != 0 || s.Sum != 0 || s.Centroid != 0 || s.FWHM != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}

func TestCalculateAllZero(t *testing.T) {
	s := Calculate(make([]float64, 100), 200, 0.1)
	if s.Count != 100 {
		t.Fatalf("Count: got %d, want 100", s.Count)
	}
	if s.Centroid != 0 || s.Spread != 0 || s.Rolloff != 0 || s.FWHM != 0 {
		t.Fatalf("expected zero shape descriptors, got %+v", s)
	}
}

func TestCalculateTriangle(t *testing.T) {
	s := Calculate([]float64{0, 1, 2, 1, 0}, 200, 1)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"Sum", s.Sum, 4},
		{"Max", s.Max, 2},
		{"PeakWavelength", s.PeakWavelength, 202},
		{"Min", s.Min, 0},
		{"Mean", s.Mean, 0.8},
		{"Energy", s.Energy, 6},
		{"Integrated", s.Integrated, 4},
		{"Centroid", s.Centroid, 202},
		{"Spread", s.Spread, math.Sqrt(0.5)},
		{"Rolloff", s.Rolloff, 203},
		{"FWHM", s.FWHM, 2},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, tolerance) {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
	if s.PeakIndex != 2 {
		t.Errorf("PeakIndex: got %d, want 2", s.PeakIndex)
	}
}

func TestCalculateSingleLine(t *testing.T) {
	in := make([]float64, 101)
	in[40] = 3

	s := Calculate(in, 300, 0.5)
	if !almostEqual(s.Centroid, 320, tolerance) {
		t.Fatalf("Centroid: got %v, want 320", s.Centroid)
	}
	if !almostEqual(s.Spread, 0, tolerance) {
		t.Fatalf("Spread: got %v, want 0", s.Spread)
	}
	if !almostEqual(s.Rolloff, 320, tolerance) {
		t.Fatalf("Rolloff: got %v, want 320", s.Rolloff)
	}
	// half maximum is crossed halfway to each neighbour
	if !almostEqual(s.FWHM, 0.5, tolerance) {
		t.Fatalf("FWHM: got %v, want 0.5", s.FWHM)
	}
}

func TestFWHMGaussian(t *testing.T) {
	const sigma = 0.8
	raw := testutil.GaussianLines(400, 420, 0.01, [3]float64{410, 50, sigma})

	in := raw.Intensities()
	got := FWHM(in, 0.01)
	want := 2 * math.Sqrt(2*math.Ln2) * sigma
	if !almostEqual(got, want, 0.01) {
		t.Fatalf("FWHM: got %v, want %v", got, want)
	}
}

func TestFWHMOpenSide(t *testing.T) {
	// never drops to half on the right: width runs to the last sample
	got := FWHM([]float64{0, 2, 2, 2}, 1)
	if !almostEqual(got, 2.5, tolerance) {
		t.Fatalf("FWHM: got %v, want 2.5", got)
	}
}

func TestOfMatchesCalculate(t *testing.T) {
	raw := testutil.GaussianLines(300, 320, 0.25, [3]float64{305, 10, 0.4}, [3]float64{312, 4, 0.6})
	sp, err := spectrum.Reconstruct(raw, 300, 320, spectrum.WithResolution(0.1))
	if err != nil {
		t.Fatal(err)
	}

	got := Of(sp)
	want := Calculate(sp.Intensities(), 300, 0.1)
	if got != want {
		t.Fatalf("Of: got %+v, want %+v", got, want)
	}
	if !almostEqual(got.PeakWavelength, 305, 0.1) {
		t.Fatalf("PeakWavelength: got %v, want ~305", got.PeakWavelength)
	}
}

func TestHelpersMatchCalculate(t *testing.T) {
	in := []float64{0, 0.5, 3, 1, 0.25, 2, 0}
	s := Calculate(in, 250, 0.2)

	if v := Centroid(in, 250, 0.2); v != s.Centroid {
		t.Errorf("Centroid: got %v, want %v", v, s.Centroid)
	}
	if v := Rolloff(in, 250, 0.2, DefaultRolloff); v != s.Rolloff {
		t.Errorf("Rolloff: got %v, want %v", v, s.Rolloff)
	}
	if v := Integrated(in, 0.2); v != s.Integrated {
		t.Errorf("Integrated: got %v, want %v", v, s.Integrated)
	}
	if v := FWHM(in, 0.2); v != s.FWHM {
		t.Errorf("FWHM: got %v, want %v", v, s.FWHM)
	}
}

package wavelength

import (
	"testing"
)

func TestPeaks(t *testing.T) {
	in := []float64{5, 0, 1, 3, 1, 0, 2, 0, 4, 4, 0, 7}

	got := Peaks(in, 100, 1, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 peaks, got %+v", got)
	}

	// ordered by intensity; grid end points excluded
	wantIdx := []int{8, 3, 6}
	for i, p := range got {
		if p.Index != wantIdx[i] {
			t.Fatalf("peak %d: got index %d, want %d", i, p.Index, wantIdx[i])
		}
	}

	if !almostEqual(got[1].Wavelength, 103, tolerance) {
		t.Fatalf("symmetric peak: got %v, want 103", got[1].Wavelength)
	}
	// plateau refines to its midpoint
	if !almostEqual(got[0].Wavelength, 108.5, tolerance) {
		t.Fatalf("plateau peak: got %v, want 108.5", got[0].Wavelength)
	}
}

func TestPeaksMinHeight(t *testing.T) {
	in := []float64{0, 1, 0, 5, 0, 2, 0}
	got := Peaks(in, 0, 0.5, 2)
	if len(got) != 2 || got[0].Index != 3 || got[1].Index != 5 {
		t.Fatalf("unexpected peaks %+v", got)
	}
}

func TestPeaksRefinement(t *testing.T) {
	// asymmetric neighbours pull the vertex toward the larger side
	got := Peaks([]float64{0, 2, 4, 3, 0}, 10, 2, 0)
	if len(got) != 1 {
		t.Fatalf("expected one peak, got %+v", got)
	}
	// offset = 0.5*(2-3)/(2-8+3) = 1/6 samples
	if !almostEqual(got[0].Wavelength, 14+2.0/6, tolerance) {
		t.Fatalf("Wavelength: got %v", got[0].Wavelength)
	}
}

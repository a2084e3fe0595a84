package spectrum_test

import (
	"testing"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/internal/testutil"
)

func BenchmarkReconstruct(b *testing.B) {
	raw := testutil.RandomLines(1, 2000, 200, 1000)

	b.ResetTimer()
	for range b.N {
		_, _ = spectrum.Reconstruct(raw, 200, 1000)
	}
}

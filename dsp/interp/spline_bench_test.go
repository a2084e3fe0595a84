package interp

import (
	"fmt"
	"math"
	"testing"
)

func BenchmarkEvalInto(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range x {
			x[i] = 200 + 800*float64(i)/float64(n-1)
			y[i] = math.Abs(math.Sin(float64(i) * 0.37))
		}

		s, err := NewNaturalSpline(x, y)
		if err != nil {
			b.Fatal(err)
		}

		xs := make([]float64, 8000)
		for i := range xs {
			xs[i] = 200 + 0.1*float64(i)
		}
		dst := make([]float64, len(xs))

		b.Run(fmt.Sprintf("knots=%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(xs) * 8))
			for range b.N {
				_ = s.EvalInto(dst, xs)
			}
		})
	}
}

func BenchmarkNewNaturalSpline(b *testing.B) {
	n := 4096
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = math.Cos(float64(i) * 0.11)
	}

	b.ResetTimer()
	for range b.N {
		_, _ = NewNaturalSpline(x, y)
	}
}

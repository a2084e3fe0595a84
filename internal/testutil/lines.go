package testutil

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
)

// GaussianLines samples a sum of Gaussian peaks on [low, upper] every step nm.
// Each peak is given as {center, height, width}.
func GaussianLines(low, upper, step float64, peaks ...[3]float64) spectrum.Raw {
	n := int(math.Floor((upper-low)/step)) + 1
	out := make(spectrum.Raw, n)
	for i := range out {
		w := low + float64(i)*step
		v := 0.0
		for _, p := range peaks {
			d := (w - p[0]) / p[2]
			v += p[1] * math.Exp(-0.5*d*d)
		}
		out[i] = spectrum.Line{Wavelength: w, Intensity: v}
	}
	return out
}

// RandomLines returns n ascending lines on [low, upper) with a fixed seed.
// Wavelengths are jittered around an even spacing; intensities are sparse
// spikes over a zero baseline.
func RandomLines(seed uint64, n int, low, upper float64) spectrum.Raw {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make(spectrum.Raw, n)
	step := (upper - low) / float64(n)
	for i := range out {
		w := low + step*(float64(i)+0.2+0.6*rng.Float64())
		v := 0.0
		if rng.IntN(4) == 0 {
			v = 1000 * rng.Float64()
		}
		out[i] = spectrum.Line{Wavelength: w, Intensity: v}
	}
	return out
}

// DopplerPayload renders raw as the script block served by the NIST LIBS
// page: a dataDopplerArray literal followed by a dataSticksArray literal.
func DopplerPayload(raw spectrum.Raw) string {
	var b strings.Builder
	b.WriteString("<script type=\"text/javascript\">\n")
	b.WriteString("    var dataDopplerArray=[\n")
	for i, l := range raw {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "[%g,%g]", l.Wavelength, l.Intensity)
	}
	b.WriteString("];\n")
	b.WriteString("    var dataSticksArray=[\n[200.5,0,1.2],\n[300.25,0,0.4]];\n")
	b.WriteString("</script>\n")
	return b.String()
}

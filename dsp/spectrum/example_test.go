package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
)

func ExampleReconstruct() {
	raw := spectrum.Raw{{Wavelength: 200, Intensity: 0}, {Wavelength: 400, Intensity: 1000}, {Wavelength: 600, Intensity: 0}}
	s, _ := spectrum.Reconstruct(raw, 200, 600, spectrum.WithResolution(100))
	for _, p := range s.Samples {
		fmt.Printf("%.0f %.1f\n", p.Wavelength, p.Intensity)
	}
	// Output:
	// 200 0.0
	// 300 687.5
	// 400 1000.0
	// 500 0.0
}

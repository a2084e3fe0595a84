// Package shift estimates the wavelength offset between two spectra sampled
// on the same uniform grid and scores their similarity.
//
// The offset is the lag of the cross-correlation maximum, computed by FFT
// and refined to a fraction of a grid step by fitting a parabola through the
// peak and its neighbours. A positive shift means the target lies at longer
// wavelengths than the reference.
//
// # Usage
//
//	e := shift.NewEstimator(0.1) // grid step in nm
//	est, err := e.Estimate(reference, measured)
//	fmt.Printf("shift = %.3f nm (score %.2f)\n", est.Shift, est.Score)
package shift

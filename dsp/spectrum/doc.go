// Package spectrum turns a sparse emission line list into a regularly
// sampled intensity curve.
//
// A [Raw] spectrum is an ordered list of (wavelength, intensity) lines as
// delivered by a line database. [Reconstruct] fits a natural cubic spline
// through those lines and resamples it on a uniform wavelength grid:
//
//   - grid: low, low+step, low+2*step, ... strictly below upper
//   - negative spline undershoot is clamped to zero
//   - the first and last samples are forced to zero
//   - wavelength and intensity are rounded to three decimals
//
// The result is deterministic for identical input. Grid points outside the
// span of the raw lines are linearly extrapolated by the spline.
package spectrum

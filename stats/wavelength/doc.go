// Package wavelength computes statistics of spectra sampled on a uniform
// wavelength grid: centroid, spread, rolloff, full width at half maximum,
// integrated intensity and a peak list.
package wavelength

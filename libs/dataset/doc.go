// Package dataset generates tables of simulated LIBS spectra for machine
// learning.
//
// A [Sampler] draws random materials from a composition [Table] together
// with random plasma temperature and density, runs one simulation per draw
// on a bounded worker pool and collects one [Row] per successful sample.
//
// All random draws happen up front from the caller's *rand.Rand, so a seed
// reproduces the same samples regardless of scheduling. The column layout
// ([Schema]) is fixed by the wavelength window, the resampling step and the
// table's elements before any sample runs. Failed samples never produce
// short rows: they are reported in [Result.Failures], or abort the batch
// when fail-fast is enabled.
package dataset

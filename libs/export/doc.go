// Package export writes spectra and datasets to CSV and XLSX.
//
// Spectrum files carry a "wavelength,intensity" header. Dataset files carry
// the columns of [dataset.Schema.Columns] and one row per successful sample.
package export

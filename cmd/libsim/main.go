// Command libsim simulates laser-induced breakdown spectra and builds
// training datasets from them.
//
// Usage:
//
//	libsim <command> [flags]
//
// Commands:
//
//	simulate  resample the line list of one plasma request
//	dataset   sample random plasma conditions over a composition table
//	sweep     compare line lists across spectrometer resolving powers
//	stats     print descriptors of a spectrum CSV
//	compare   align two spectrum CSVs and score their similarity
//
// Examples:
//
//	libsim simulate --elements Fe,Cr --percentages 80,20 --out steel.csv
//	libsim simulate --lines lines.csv --low 300 --upper 320 --step 0.05
//	libsim dataset --config run.yaml --size 500 --format xlsx
//	libsim stats steel.csv
//	libsim compare steel.csv measured.csv --max-shift 1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

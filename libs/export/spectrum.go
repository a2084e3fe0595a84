package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
)

// ErrMalformedCSV indicates a spectrum CSV that could not be read back.
var ErrMalformedCSV = errors.New("export: malformed csv")

// Spectrum CSV header labels.
const (
	WavelengthColumn = "wavelength"
	IntensityColumn  = "intensity"
)

// WriteSpectrumCSV writes sp as two columns under a header row.
func WriteSpectrumCSV(w io.Writer, sp spectrum.Interpolated) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{WavelengthColumn, IntensityColumn}); err != nil {
		return err
	}
	for _, s := range sp.Samples {
		if err := cw.Write([]string{ftoa(s.Wavelength), ftoa(s.Intensity)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadSpectrumCSV reads a file written by [WriteSpectrumCSV]. Step is
// recovered from the first two samples.
func ReadSpectrumCSV(r io.Reader) (spectrum.Interpolated, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return spectrum.Interpolated{}, fmt.Errorf("%w: header: %v", ErrMalformedCSV, err)
	}
	if !strings.EqualFold(header[0], WavelengthColumn) || !strings.EqualFold(header[1], IntensityColumn) {
		return spectrum.Interpolated{}, fmt.Errorf("%w: header %q", ErrMalformedCSV, header)
	}

	var out spectrum.Interpolated
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return spectrum.Interpolated{}, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line, err)
		}

		var s spectrum.Sample
		if s.Wavelength, err = strconv.ParseFloat(rec[0], 64); err != nil {
			return spectrum.Interpolated{}, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line, err)
		}
		if s.Intensity, err = strconv.ParseFloat(rec[1], 64); err != nil {
			return spectrum.Interpolated{}, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, line, err)
		}
		out.Samples = append(out.Samples, s)
	}

	if len(out.Samples) > 1 {
		out.Step = out.Samples[1].Wavelength - out.Samples[0].Wavelength
	}
	return out, nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package linelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
)

// ErrMalformedTable indicates a CSV line table that could not be interpreted.
var ErrMalformedTable = errors.New("linelist: malformed table")

// Column names recognised by ParseTable, compared case-insensitively.
var (
	wavelengthColumns = []string{"wavelength (nm)", "wavelength"}
	sumColumns        = []string{"sum(calc)", "intensity"}
)

// Ion is the contribution of a single ionisation stage, e.g. "Fe I".
type Ion struct {
	Name        string
	Intensities []float64
}

// Table is a structured line list: one row per wavelength, the summed
// intensity and the per-ion breakdown.
type Table struct {
	Wavelengths []float64
	Sum         []float64
	Ions        []Ion
}

// Raw returns the (wavelength, summed intensity) pairs in row order.
func (t Table) Raw() spectrum.Raw {
	out := make(spectrum.Raw, len(t.Wavelengths))
	for i := range out {
		out[i] = spectrum.Line{Wavelength: t.Wavelengths[i], Intensity: t.Sum[i]}
	}
	return out
}

// ParseTable reads a CSV line table. The header must contain a wavelength
// column ("Wavelength (nm)" or "wavelength") and an intensity column
// ("Sum(calc)" or "intensity"); any other named column is kept as an ion
// column. Empty and "nan" cells read as 0.
func ParseTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("%w: empty input", ErrMalformedTable)
	}
	if err != nil {
		return Table{}, fmt.Errorf("%w: header: %v", ErrMalformedTable, err)
	}

	wCol, sCol := -1, -1
	var ionCols []int
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch {
		case name == "":
		case wCol < 0 && contains(wavelengthColumns, name):
			wCol = i
		case sCol < 0 && contains(sumColumns, name):
			sCol = i
		default:
			ionCols = append(ionCols, i)
		}
	}

	if wCol < 0 {
		return Table{}, fmt.Errorf("%w: no wavelength column in %q", ErrMalformedTable, header)
	}
	if sCol < 0 {
		return Table{}, fmt.Errorf("%w: no intensity column in %q", ErrMalformedTable, header)
	}

	t := Table{Ions: make([]Ion, len(ionCols))}
	for k, c := range ionCols {
		t.Ions[k].Name = strings.TrimSpace(header[c])
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: row %d: %v", ErrMalformedTable, row, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}

		if wCol >= len(rec) || sCol >= len(rec) {
			return Table{}, fmt.Errorf("%w: row %d: %d fields, need %d", ErrMalformedTable, row, len(rec), max(wCol, sCol)+1)
		}

		w, err := cell(rec, wCol)
		if err != nil {
			return Table{}, fmt.Errorf("%w: row %d column %q: %v", ErrMalformedTable, row, header[wCol], err)
		}
		s, err := cell(rec, sCol)
		if err != nil {
			return Table{}, fmt.Errorf("%w: row %d column %q: %v", ErrMalformedTable, row, header[sCol], err)
		}
		t.Wavelengths = append(t.Wavelengths, w)
		t.Sum = append(t.Sum, s)

		for k, c := range ionCols {
			v, err := cell(rec, c)
			if err != nil {
				return Table{}, fmt.Errorf("%w: row %d column %q: %v", ErrMalformedTable, row, header[c], err)
			}
			t.Ions[k].Intensities = append(t.Ions[k].Intensities, v)
		}
	}

	return t, nil
}

// cell parses field i of rec. Missing, empty and NaN fields read as zero.
func cell(rec []string, i int) (float64, error) {
	if i >= len(rec) {
		return 0, nil
	}
	s := strings.TrimSpace(rec[i])
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-libs/libs/plasma"
)

var (
	// ErrEmptyTable indicates a composition table without materials.
	ErrEmptyTable = errors.New("dataset: empty composition table")
	// ErrMalformedTable indicates a composition table that could not be read.
	ErrMalformedTable = errors.New("dataset: malformed composition table")
)

// NameColumn is the label column of a composition table.
const NameColumn = "name"

// Material is one row of a composition table.
type Material struct {
	Name        string
	Percentages []float64 // aligned with Table.Elements
}

// Table lists candidate materials over a shared set of element columns.
type Table struct {
	Elements  []string
	Materials []Material
}

// Composition returns the composition of material i.
func (t Table) Composition(i int) plasma.Composition {
	return plasma.Composition{
		Elements:    append([]string(nil), t.Elements...),
		Percentages: append([]float64(nil), t.Materials[i].Percentages...),
	}
}

// ReadTable reads a composition CSV. The header holds one column per element
// symbol and a "name" column; an unnamed leading index column is ignored.
// Empty percentage cells read as 0.
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, ErrEmptyTable
	}
	if err != nil {
		return Table{}, fmt.Errorf("%w: header: %v", ErrMalformedTable, err)
	}

	nameCol := -1
	var elemCols []int
	var t Table
	for i, h := range header {
		h = strings.TrimSpace(h)
		switch {
		case strings.EqualFold(h, NameColumn):
			nameCol = i
		case h == "" && i == 0:
		case h == "":
			return Table{}, fmt.Errorf("%w: column %d has no name", ErrMalformedTable, i+1)
		default:
			elemCols = append(elemCols, i)
			t.Elements = append(t.Elements, h)
		}
	}

	if nameCol < 0 {
		return Table{}, fmt.Errorf("%w: no %q column", ErrMalformedTable, NameColumn)
	}
	if len(elemCols) == 0 {
		return Table{}, fmt.Errorf("%w: no element columns", ErrMalformedTable)
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: line %d: %v", ErrMalformedTable, line, err)
		}

		m := Material{
			Name:        strings.TrimSpace(rec[nameCol]),
			Percentages: make([]float64, len(elemCols)),
		}
		for k, c := range elemCols {
			s := strings.TrimSpace(rec[c])
			if s == "" {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Table{}, fmt.Errorf("%w: line %d column %q: %v", ErrMalformedTable, line, header[c], err)
			}
			m.Percentages[k] = v
		}
		t.Materials = append(t.Materials, m)
	}

	if len(t.Materials) == 0 {
		return Table{}, ErrEmptyTable
	}

	return t, nil
}

package dataset

import (
	"strconv"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/plasma"
)

// Trailing column labels of every dataset.
const (
	TeColumn = "Te[eV]"
	NeColumn = "Ne[cm^-3]"
)

// Schema is the fixed column layout of a dataset.
type Schema struct {
	Wavelengths []float64
	Elements    []string
}

// NewSchema derives the layout from the window, the resampling step and the
// composition elements alone.
func NewSchema(w plasma.Window, step float64, elements []string) Schema {
	return Schema{
		Wavelengths: spectrum.Grid(w.Low, w.Upper, step),
		Elements:    append([]string(nil), elements...),
	}
}

// Width returns the length of the intensity vector of each row.
func (s Schema) Width() int { return len(s.Wavelengths) }

// Columns returns the column labels: one per wavelength, one per element,
// then name, Te and Ne.
func (s Schema) Columns() []string {
	cols := make([]string, 0, len(s.Wavelengths)+len(s.Elements)+3)
	for _, w := range s.Wavelengths {
		cols = append(cols, strconv.FormatFloat(w, 'f', -1, 64))
	}
	cols = append(cols, s.Elements...)
	return append(cols, NameColumn, TeColumn, NeColumn)
}

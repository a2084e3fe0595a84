package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-libs/libs/plasma"
)

func TestSchemaIndependentOfSamples(t *testing.T) {
	s := NewSchema(plasma.Window{Low: 200, Upper: 1000}, 0.1, []string{"H", "He"})
	require.Equal(t, 8000, s.Width())

	cols := s.Columns()
	require.Len(t, cols, 8000+2+3)
	require.Equal(t, "200", cols[0])
	require.Equal(t, "200.1", cols[1])
	require.Equal(t, "999.9", cols[7999])
	require.Equal(t, []string{"H", "He", NameColumn, TeColumn, NeColumn}, cols[8000:])
}

func TestSchemaCopiesElements(t *testing.T) {
	elems := []string{"Fe"}
	s := NewSchema(plasma.Window{Low: 300, Upper: 301}, 0.5, elems)
	elems[0] = "Cu"
	require.Equal(t, []string{"Fe"}, s.Elements)
	require.Equal(t, []float64{300, 300.5}, s.Wavelengths)
}

func TestSchemaEmptyWindow(t *testing.T) {
	s := NewSchema(plasma.Window{Low: 500, Upper: 500}, 0.1, []string{"H"})
	require.Zero(t, s.Width())
	require.Equal(t, []string{"H", NameColumn, TeColumn, NeColumn}, s.Columns())
}

package plasma

import (
	"errors"
	"math"
	"testing"
)

func validInput() (Composition, Condition, Window) {
	return Composition{Elements: []string{"H", "He"}, Percentages: []float64{50, 50}},
		Condition{Te: 1.0, Ne: 1e17, MaxIonCharge: 3},
		Window{Low: 200, Upper: 1000}
}

func TestValidateAccepts(t *testing.T) {
	c, cond, w := validInput()
	if err := Validate(c, cond, w); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	// Boundary values are allowed.
	c.Percentages = []float64{99.5, 0.5}
	cond = Condition{Te: 0, Ne: 0, MaxIonCharge: 0}
	w = Window{Low: 500, Upper: 500}
	if err := Validate(c, cond, w); err != nil {
		t.Fatalf("Validate(boundary) error = %v", err)
	}
}

func TestValidateSingleViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Composition, *Condition, *Window)
		want   error
		field  string
	}{
		{"sum over 100", func(c *Composition, _ *Condition, _ *Window) { c.Percentages = []float64{60, 50} }, ErrComposition, "percentages"},
		{"sum barely over 100", func(c *Composition, _ *Condition, _ *Window) { c.Percentages = []float64{50, 50.001} }, ErrComposition, "percentages"},
		{"negative Te", func(_ *Composition, cond *Condition, _ *Window) { cond.Te = -0.1 }, ErrInvalidParameter, "Te"},
		{"NaN Te", func(_ *Composition, cond *Condition, _ *Window) { cond.Te = math.NaN() }, ErrInvalidParameter, "Te"},
		{"negative Ne", func(_ *Composition, cond *Condition, _ *Window) { cond.Ne = -1e17 }, ErrInvalidParameter, "Ne"},
		{"infinite Ne", func(_ *Composition, cond *Condition, _ *Window) { cond.Ne = math.Inf(1) }, ErrInvalidParameter, "Ne"},
		{"negative charge", func(_ *Composition, cond *Condition, _ *Window) { cond.MaxIonCharge = -1 }, ErrInvalidParameter, "max_ion_charge"},
		{"reversed window", func(_ *Composition, _ *Condition, w *Window) { w.Low, w.Upper = 1000, 200 }, ErrInvalidParameter, "low_w"},
		{"NaN upper", func(_ *Composition, _ *Condition, w *Window) { w.Upper = math.NaN() }, ErrInvalidParameter, "upper_w"},
		{"length mismatch", func(c *Composition, _ *Condition, _ *Window) { c.Elements = []string{"H"} }, ErrInvalidParameter, "elements"},
		{"empty element", func(c *Composition, _ *Condition, _ *Window) { c.Elements = []string{"H", " "} }, ErrInvalidParameter, "elements[1]"},
		{"NaN percentage", func(c *Composition, _ *Condition, _ *Window) { c.Percentages = []float64{math.NaN(), 1} }, ErrInvalidParameter, "percentages[0]"},
		{"negative percentage", func(c *Composition, _ *Condition, _ *Window) { c.Percentages = []float64{-50, 20} }, ErrInvalidParameter, "percentages[0]"},
		{"negative second percentage", func(c *Composition, _ *Condition, _ *Window) { c.Percentages = []float64{20, -0.5} }, ErrInvalidParameter, "percentages[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, cond, w := validInput()
			tt.mutate(&c, &cond, &w)

			err := Validate(c, cond, w)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %T, want *ParamError", err)
			}
			if pe.Field != tt.field {
				t.Fatalf("field = %q, want %q", pe.Field, tt.field)
			}
		})
	}
}

func TestValidateCompositionErrorIsNotInvalidParameter(t *testing.T) {
	c, cond, w := validInput()
	c.Percentages = []float64{80, 80}

	err := Validate(c, cond, w)
	if errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("composition violation must not match ErrInvalidParameter: %v", err)
	}
}

func TestRequestValidate(t *testing.T) {
	r := NewRequest([]string{"H", "He"}, []float64{50, 50})
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	r.ResolvingPower = -5
	if err := r.Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestRequestString(t *testing.T) {
	r := NewRequest([]string{"H", "He"}, []float64{50, 50})
	want := "Te: '1' eV Ne: '1.000e+17' cm^-3 elements: '[H He]' percentages: '[50 50]'"
	if got := r.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFormatDensity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1e17, "1e17"},
		{1.23456e17, "1.23e17"},
		{5.5e18, "5.5e18"},
		{9.999e17, "1e18"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatDensity(tt.in); got != tt.want {
			t.Fatalf("FormatDensity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package plasma

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-libs/dsp/core"
)

// Defaults of the LIBS simulator front end.
const (
	DefaultTe           = 1.0
	DefaultNe           = 1e17
	DefaultLow          = 200
	DefaultUpper        = 1000
	DefaultMaxIonCharge = 3
	// DefaultResolvingPower is the spectrometer resolving power sent upstream.
	DefaultResolvingPower = 1000
)

// Composition lists elements and their percentages, index-aligned.
type Composition struct {
	Elements    []string
	Percentages []float64
}

// Sum returns the total percentage.
func (c Composition) Sum() float64 {
	s := 0.0
	for _, p := range c.Percentages {
		s += p
	}
	return s
}

// Condition is the plasma state.
type Condition struct {
	Te           float64 // electron temperature, eV
	Ne           float64 // electron density, cm^-3
	MaxIonCharge int
}

// Window is the wavelength range [Low, Upper) in nm.
type Window struct {
	Low   float64
	Upper float64
}

// Request is one simulation query.
type Request struct {
	Composition Composition
	Condition   Condition
	Window      Window
	// ResolvingPower is the spectrometer resolving power passed to the line
	// database. It does not affect the resampling step.
	ResolvingPower int
}

// NewRequest returns a request with the default condition and window.
func NewRequest(elements []string, percentages []float64) Request {
	return Request{
		Composition: Composition{Elements: elements, Percentages: percentages},
		Condition: Condition{
			Te:           DefaultTe,
			Ne:           DefaultNe,
			MaxIonCharge: DefaultMaxIonCharge,
		},
		Window:         Window{Low: DefaultLow, Upper: DefaultUpper},
		ResolvingPower: DefaultResolvingPower,
	}
}

// Validate checks the request. See [Validate].
func (r Request) Validate() error {
	if err := Validate(r.Composition, r.Condition, r.Window); err != nil {
		return err
	}
	if r.ResolvingPower < 0 {
		return invalid("resolving_power", r.ResolvingPower, "must be >= 0")
	}
	return nil
}

// String renders a short human-readable summary.
func (r Request) String() string {
	pct := make([]string, len(r.Composition.Percentages))
	for i, p := range r.Composition.Percentages {
		pct[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return fmt.Sprintf("Te: '%s' eV Ne: '%.3e' cm^-3 elements: '[%s]' percentages: '[%s]'",
		strconv.FormatFloat(r.Condition.Te, 'g', -1, 64), r.Condition.Ne,
		strings.Join(r.Composition.Elements, " "), strings.Join(pct, " "))
}

// Validate checks composition, condition and window in a fixed order and
// returns the first violation:
//
//  1. sum(percentages) <= 100                  (ErrComposition)
//  2. Te >= 0, Ne >= 0, MaxIonCharge >= 0      (ErrInvalidParameter)
//  3. Low <= Upper                             (ErrInvalidParameter)
//  4. len(elements) == len(percentages)        (ErrInvalidParameter)
//
// Non-finite numbers are invalid parameters. Validate has no side effects.
func Validate(c Composition, cond Condition, w Window) error {
	for i, p := range c.Percentages {
		if !core.Finite(p) || p < 0 {
			return invalid(fmt.Sprintf("percentages[%d]", i), p, "must be finite and >= 0")
		}
	}

	if sum := c.Sum(); sum > 100 {
		return &ParamError{Field: "percentages", Value: sum, Reason: "sum must be <= 100", Err: ErrComposition}
	}

	switch {
	case !(cond.Te >= 0) || math.IsInf(cond.Te, 1):
		return invalid("Te", cond.Te, "must be finite and >= 0")
	case !(cond.Ne >= 0) || math.IsInf(cond.Ne, 1):
		return invalid("Ne", cond.Ne, "must be finite and >= 0")
	case cond.MaxIonCharge < 0:
		return invalid("max_ion_charge", cond.MaxIonCharge, "must be >= 0")
	}

	switch {
	case !core.Finite(w.Low):
		return invalid("low_w", w.Low, "must be finite")
	case !core.Finite(w.Upper):
		return invalid("upper_w", w.Upper, "must be finite")
	case w.Low > w.Upper:
		return invalid("low_w", w.Low, fmt.Sprintf("must be <= upper_w (%v)", w.Upper))
	}

	if len(c.Elements) != len(c.Percentages) {
		return invalid("elements", len(c.Elements), fmt.Sprintf("length must match percentages (%d)", len(c.Percentages)))
	}

	for i, e := range c.Elements {
		if strings.TrimSpace(e) == "" {
			return invalid(fmt.Sprintf("elements[%d]", i), e, "must not be empty")
		}
	}

	return nil
}

// FormatDensity renders Ne rounded to three significant figures without a
// plus sign in the exponent, e.g. 1.23e17. This is the form the line
// database expects.
func FormatDensity(ne float64) string {
	if ne == 0 || !core.Finite(ne) {
		return strconv.FormatFloat(ne, 'g', -1, 64)
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(ne, 'e', 2, 64), 64)
	if err != nil {
		r = ne
	}
	return strings.ReplaceAll(strconv.FormatFloat(r, 'g', -1, 64), "+", "")
}

package nist

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-libs/libs/plasma"
)

// DefaultBaseURL is the NIST ASD lines endpoint.
const DefaultBaseURL = "https://physics.nist.gov/cgi-bin/ASD/lines1.pl"

// Fixed query parameters of the LIBS simulation form.
const (
	minRelativeIntensity = "0.01"
	intensityScale       = "1"
)

// QueryURL returns the LIBS simulation URL for req against base.
//
// The composition is encoded as El%3Ap pairs joined by %3B and the spectra
// as El0-<max charge> joined by %2C, matching the form the endpoint posts.
// Parameters are written in a fixed order so identical requests give
// identical URLs.
func QueryURL(base string, req plasma.Request) string {
	comp := make([]string, len(req.Composition.Elements))
	spectra := make([]string, len(req.Composition.Elements))
	charge := strconv.Itoa(req.Condition.MaxIonCharge)

	for i, el := range req.Composition.Elements {
		p := 0.0
		if i < len(req.Composition.Percentages) {
			p = req.Composition.Percentages[i]
		}
		comp[i] = el + "%3A" + formatFloat(p)
		spectra[i] = el + "0-" + charge
	}

	params := [][2]string{
		{"composition", strings.Join(comp, "%3B")},
		{"spectra", strings.Join(spectra, "%2C")},
		{"low_w", formatFloat(req.Window.Low)},
		{"limits_type", "0"},
		{"upp_w", formatFloat(req.Window.Upper)},
		{"show_av", "3"},
		{"unit", "1"},
		{"resolution", strconv.Itoa(req.ResolvingPower)},
		{"temp", formatFloat(req.Condition.Te)},
		{"eden", plasma.FormatDensity(req.Condition.Ne)},
		{"maxcharge", charge},
		{"min_rel_int", minRelativeIntensity},
		{"int_scale", intensityScale},
		{"libs", "1"},
	}

	var b strings.Builder
	b.WriteString(base)
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(p[1])
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/linelist"
	"github.com/cwbudde/algo-libs/libs/nist"
	"github.com/cwbudde/algo-libs/libs/plasma"
)

// sourceFlags select where line lists come from.
type sourceFlags struct {
	lines   string
	payload string
	baseURL string
	timeout time.Duration
	rate    float64
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.lines, "lines", "", "read lines from a CSV table instead of the NIST service")
	fs.StringVar(&f.payload, "payload", "", "read lines from a saved NIST LIBS page")
	fs.StringVar(&f.baseURL, "base-url", nist.DefaultBaseURL, "NIST LIBS endpoint")
	fs.DurationVar(&f.timeout, "timeout", nist.DefaultTimeout, "per-request timeout")
	fs.Float64Var(&f.rate, "rate", 0, "maximum requests per second, 0 for unlimited")
	cmd.MarkFlagsMutuallyExclusive("lines", "payload")
}

func (a *app) provider(f sourceFlags) linelist.Provider {
	switch {
	case f.lines != "":
		return linelist.TableProvider{Source: linelist.FileTable(f.lines)}
	case f.payload != "":
		return linelist.PayloadProvider{Source: linelist.FilePayload(f.payload)}
	}

	return nist.NewClient(
		nist.WithBaseURL(f.baseURL),
		nist.WithTimeout(f.timeout),
		nist.WithRateLimit(f.rate, 1),
		nist.WithLogger(a.log.WithField("component", "nist")),
	).Provider()
}

// requestFlags describe one plasma request.
type requestFlags struct {
	elements    []string
	percentages []float64
	te          float64
	ne          float64
	low         float64
	upper       float64
	charge      int
	power       int
	step        float64
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVar(&f.elements, "elements", []string{"H"}, "element symbols")
	fs.Float64SliceVar(&f.percentages, "percentages", []float64{100}, "element percentages, aligned with --elements")
	fs.Float64Var(&f.te, "te", plasma.DefaultTe, "electron temperature in eV")
	fs.Float64Var(&f.ne, "ne", plasma.DefaultNe, "electron density in cm^-3")
	fs.Float64Var(&f.low, "low", plasma.DefaultLow, "lower wavelength bound in nm")
	fs.Float64Var(&f.upper, "upper", plasma.DefaultUpper, "upper wavelength bound in nm (exclusive)")
	fs.IntVar(&f.charge, "max-ion-charge", plasma.DefaultMaxIonCharge, "highest ionisation stage")
	fs.IntVar(&f.power, "resolution", plasma.DefaultResolvingPower, "spectrometer resolving power")
	fs.Float64Var(&f.step, "step", spectrum.DefaultResolution, "resampling step in nm")
}

func (f requestFlags) request() plasma.Request {
	req := plasma.NewRequest(f.elements, f.percentages)
	req.Condition = plasma.Condition{Te: f.te, Ne: f.ne, MaxIonCharge: f.charge}
	req.Window = plasma.Window{Low: f.low, Upper: f.upper}
	req.ResolvingPower = f.power
	return req
}

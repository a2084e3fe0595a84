// Package simulation runs the LIBS spectrum pipeline for one request:
// validation, line-list retrieval and spectral reconstruction.
package simulation

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/linelist"
	"github.com/cwbudde/algo-libs/libs/plasma"
)

// Result is the output of one simulation.
type Result struct {
	Request  plasma.Request
	Raw      spectrum.Raw
	Spectrum spectrum.Interpolated
	// Ions holds the per-ion breakdown when the provider returns a table.
	Ions []linelist.Ion
}

type config struct {
	step   float64
	logger logrus.FieldLogger
}

// Option configures a [Simulator].
type Option func(*config)

// WithStep sets the resampling step in nm. Non-positive values are ignored.
func WithStep(step float64) Option {
	return func(cfg *config) {
		if step > 0 {
			cfg.step = step
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

func defaultConfig() config {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return config{step: spectrum.DefaultResolution, logger: discard}
}

// Simulator couples a line-list provider with the reconstruction stage.
// It holds no per-request state and is safe for concurrent use if the
// provider is.
type Simulator struct {
	provider linelist.Provider
	cfg      config
}

// New returns a simulator reading lines from p.
func New(p linelist.Provider, opts ...Option) *Simulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Simulator{provider: p, cfg: cfg}
}

// Step returns the resampling step in nm.
func (s *Simulator) Step() float64 { return s.cfg.step }

// Run validates req, fetches its line list and resamples it.
//
// Validation errors are returned unwrapped so callers can inspect the
// [*plasma.ParamError] directly. Nothing is retried.
func (s *Simulator) Run(ctx context.Context, req plasma.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Request: req}

	raw, ions, err := s.lines(ctx, req)
	if err != nil {
		return nil, err
	}
	res.Raw = raw
	res.Ions = ions

	res.Spectrum, err = spectrum.Reconstruct(raw, req.Window.Low, req.Window.Upper, spectrum.WithResolution(s.cfg.step))
	if err != nil {
		return nil, fmt.Errorf("simulation: %s: %w", req, err)
	}

	s.cfg.logger.WithFields(logrus.Fields{
		"lines":   len(raw),
		"samples": res.Spectrum.Len(),
	}).Debugf("simulated %s", req)

	return res, nil
}

func (s *Simulator) lines(ctx context.Context, req plasma.Request) (spectrum.Raw, []linelist.Ion, error) {
	if t, ok := s.provider.(linelist.Tabler); ok {
		tbl, err := t.Table(ctx, req)
		if err != nil {
			return nil, nil, fmt.Errorf("simulation: lines: %w", err)
		}
		return tbl.Raw(), tbl.Ions, nil
	}

	raw, err := s.provider.Lines(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("simulation: lines: %w", err)
	}
	return raw, nil, nil
}

// SweepPoint is the normalized line list at one resolving power.
type SweepPoint struct {
	ResolvingPower int
	Raw            spectrum.Raw
}

// Sweep fetches the line list of req once per resolving power and returns
// each normalized to a unit peak. It stops at the first failure.
func (s *Simulator) Sweep(ctx context.Context, req plasma.Request, powers []int) ([]SweepPoint, error) {
	out := make([]SweepPoint, 0, len(powers))
	for _, p := range powers {
		r := req
		r.ResolvingPower = p
		if err := r.Validate(); err != nil {
			return nil, err
		}

		raw, _, err := s.lines(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("simulation: sweep at %d: %w", p, err)
		}
		out = append(out, SweepPoint{ResolvingPower: p, Raw: spectrum.NormalizeRaw(raw)})
	}
	return out, nil
}

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-libs/dsp/core"
	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/plasma"
	"github.com/cwbudde/algo-libs/libs/simulation"
)

var (
	// ErrSampleFailed wraps the first failure in fail-fast mode.
	ErrSampleFailed = errors.New("dataset: sample failed")
	// ErrSchemaMismatch indicates a spectrum that does not fit the schema.
	ErrSchemaMismatch = errors.New("dataset: spectrum does not match schema")
	// ErrInvalidRange indicates a reversed or non-finite sampling range.
	ErrInvalidRange = errors.New("dataset: invalid range")
)

// Defaults for the sampling ranges and pool.
const (
	DefaultSize    = 10
	DefaultTeMin   = 1.0
	DefaultTeMax   = 2.0
	DefaultNeMin   = 1e17
	DefaultNeMax   = 1e18
	DefaultWorkers = 4
)

// Runner runs one simulation. *simulation.Simulator implements it.
type Runner interface {
	Run(ctx context.Context, req plasma.Request) (*simulation.Result, error)
	Step() float64
}

// Sample is one set of random draws.
type Sample struct {
	Index    int
	ID       uuid.UUID
	Material int
	Name     string
	Te       float64
	Ne       float64
}

// Row is a successful sample.
type Row struct {
	Sample
	Composition plasma.Composition
	Intensities []float64
}

// Failure is a sample that produced no row.
type Failure struct {
	Sample
	Err error
}

func (f Failure) Error() string {
	return fmt.Sprintf("sample %d (%s, Te=%g, Ne=%g): %v", f.Index, f.Name, f.Te, f.Ne, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Result collects rows and failures ordered by sample index.
type Result struct {
	Schema   Schema
	Rows     []Row
	Failures []Failure
}

// Skipped returns the number of samples without a row.
func (r Result) Skipped() int { return len(r.Failures) }

// Err joins all failures, or returns nil.
func (r Result) Err() error {
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

type config struct {
	size      int
	teMin     float64
	teMax     float64
	neMin     float64
	neMax     float64
	workers   int
	failFast  bool
	normalize bool
	logger    logrus.FieldLogger
}

// Option configures a [Sampler].
type Option func(*config)

// WithSize sets the number of samples. Non-positive values are ignored.
func WithSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.size = n
		}
	}
}

// WithTeRange sets the electron temperature range in eV.
func WithTeRange(lo, hi float64) Option {
	return func(cfg *config) {
		cfg.teMin, cfg.teMax = lo, hi
	}
}

// WithNeRange sets the electron density range in cm^-3.
func WithNeRange(lo, hi float64) Option {
	return func(cfg *config) {
		cfg.neMin, cfg.neMax = lo, hi
	}
}

// WithWorkers caps concurrent simulations. Non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithFailFast aborts the batch on the first failed sample.
func WithFailFast(on bool) Option {
	return func(cfg *config) {
		cfg.failFast = on
	}
}

// WithNormalize scales every row to a unit peak.
func WithNormalize(on bool) Option {
	return func(cfg *config) {
		cfg.normalize = on
	}
}

// WithLogger sets the logger for per-sample failures and the summary.
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

	return config{
		size:    DefaultSize,
		teMin:   DefaultTeMin,
		teMax:   DefaultTeMax,
		neMin:   DefaultNeMin,
		neMax:   DefaultNeMax,
		workers: DefaultWorkers,
		logger:  discard,
	}
}

// Sampler generates datasets.
type Sampler struct {
	runner Runner
	table  Table
	base   plasma.Request
	cfg    config
}

// New returns a sampler over table. base supplies the window, the maximum
// ion charge and the resolving power; composition, Te and Ne are drawn per
// sample.
func New(runner Runner, table Table, base plasma.Request, opts ...Option) *Sampler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sampler{runner: runner, table: table, base: base, cfg: cfg}
}

// Schema returns the column layout of the datasets this sampler produces.
func (s *Sampler) Schema() Schema {
	return NewSchema(s.base.Window, s.runner.Step(), s.table.Elements)
}

// Draw makes all random draws for one batch. Te and Ne are uniform on their
// ranges; the material index is uniform over the table.
func (s *Sampler) Draw(rng *rand.Rand) ([]Sample, error) {
	if len(s.table.Materials) == 0 {
		return nil, ErrEmptyTable
	}
	if err := checkRange("Te", s.cfg.teMin, s.cfg.teMax); err != nil {
		return nil, err
	}
	if err := checkRange("Ne", s.cfg.neMin, s.cfg.neMax); err != nil {
		return nil, err
	}

	ids := rngReader{rng}
	out := make([]Sample, s.cfg.size)
	for i := range out {
		m := rng.IntN(len(s.table.Materials))
		te := s.cfg.teMin + rng.Float64()*(s.cfg.teMax-s.cfg.teMin)
		ne := s.cfg.neMin + rng.Float64()*(s.cfg.neMax-s.cfg.neMin)

		id, err := uuid.NewRandomFromReader(ids)
		if err != nil {
			return nil, fmt.Errorf("dataset: sample id: %w", err)
		}

		out[i] = Sample{
			Index:    i,
			ID:       id,
			Material: m,
			Name:     s.table.Materials[m].Name,
			Te:       te,
			Ne:       ne,
		}
	}
	return out, nil
}

// Run draws a batch from rng and simulates every sample.
//
// Without fail-fast, Run returns a nil error unless the draws themselves
// fail or ctx is cancelled; per-sample failures are in Result.Failures. With
// fail-fast, the first failure cancels the remaining work and Run returns the
// partial result together with an error wrapping [ErrSampleFailed].
func (s *Sampler) Run(ctx context.Context, rng *rand.Rand) (Result, error) {
	samples, err := s.Draw(rng)
	if err != nil {
		return Result{}, err
	}

	res := Result{Schema: s.Schema()}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := min(s.cfg.workers, len(samples))
	jobs := make(chan Sample)
	outcomes := make(chan outcome, workers*2)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for smp := range jobs {
				outcomes <- s.runOne(ctx, smp, res.Schema)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, smp := range samples {
			select {
			case jobs <- smp:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	rows := make([]*Row, len(samples))
	fails := make([]*Failure, len(samples))
	var first *Failure

	for o := range outcomes {
		if o.err == nil {
			rows[o.row.Index] = o.row
			continue
		}

		f := &Failure{Sample: o.sample, Err: o.err}
		fails[f.Index] = f
		s.cfg.logger.WithFields(logrus.Fields{
			"sample": f.Index,
			"name":   f.Name,
			"te":     f.Te,
			"ne":     f.Ne,
		}).WithError(o.err).Warn("sample failed")

		if s.cfg.failFast && first == nil {
			first = f
			cancel()
		}
	}

	for i, smp := range samples {
		switch {
		case rows[i] != nil:
			res.Rows = append(res.Rows, *rows[i])
		case fails[i] != nil:
			res.Failures = append(res.Failures, *fails[i])
		default:
			// never dispatched
			res.Failures = append(res.Failures, Failure{Sample: smp, Err: context.Cause(ctx)})
		}
	}

	if first != nil {
		return res, fmt.Errorf("%w: %w", ErrSampleFailed, *first)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	s.cfg.logger.WithFields(logrus.Fields{
		"rows":    len(res.Rows),
		"skipped": res.Skipped(),
		"columns": len(res.Schema.Columns()),
	}).Info("dataset complete")

	return res, nil
}

type outcome struct {
	sample Sample
	row    *Row
	err    error
}

func (s *Sampler) runOne(ctx context.Context, smp Sample, schema Schema) outcome {
	if err := ctx.Err(); err != nil {
		return outcome{sample: smp, err: err}
	}

	req := s.base
	req.Composition = s.table.Composition(smp.Material)
	req.Condition.Te = smp.Te
	req.Condition.Ne = smp.Ne

	res, err := s.runner.Run(ctx, req)
	if err != nil {
		return outcome{sample: smp, err: err}
	}

	sp := res.Spectrum
	if s.cfg.normalize {
		sp = spectrum.Normalize(sp)
	}

	if sp.Len() != schema.Width() {
		return outcome{sample: smp, err: fmt.Errorf("%w: %d intensities, want %d", ErrSchemaMismatch, sp.Len(), schema.Width())}
	}

	return outcome{
		sample: smp,
		row: &Row{
			Sample:      smp,
			Composition: req.Composition,
			Intensities: sp.Intensities(),
		},
	}
}

func checkRange(name string, lo, hi float64) error {
	if !core.Finite(lo) || !core.Finite(hi) || lo > hi || lo < 0 {
		return fmt.Errorf("%w: %s [%g, %g]", ErrInvalidRange, name, lo, hi)
	}
	return nil
}

// rngReader adapts a *rand.Rand to io.Reader so sample IDs follow the seed.
type rngReader struct{ r *rand.Rand }

func (r rngReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

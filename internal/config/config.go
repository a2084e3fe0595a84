// Package config loads the YAML configuration of a dataset run.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-libs/dsp/core"
	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/internal/logging"
	"github.com/cwbudde/algo-libs/libs/dataset"
	"github.com/cwbudde/algo-libs/libs/nist"
	"github.com/cwbudde/algo-libs/libs/plasma"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid")

// Output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Range is a closed sampling interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Window is the wavelength window in nm.
type Window struct {
	Low   float64 `yaml:"low"`
	Upper float64 `yaml:"upper"`
}

// Config describes one dataset run.
type Config struct {
	Input  string `yaml:"input"`  // composition table CSV
	Output string `yaml:"output"` // dataset file
	Format string `yaml:"format"`
	// Lines, when set, replaces the NIST service with a local line table.
	Lines string `yaml:"lines"`

	Size    int    `yaml:"size"`
	Workers int    `yaml:"workers"`
	Seed    uint64 `yaml:"seed"`

	Te             Range   `yaml:"te"`
	Ne             Range   `yaml:"ne"`
	Window         Window  `yaml:"window"`
	ResolvingPower int     `yaml:"resolving_power"`
	Step           float64 `yaml:"step"`
	MaxIonCharge   int     `yaml:"max_ion_charge"`

	FailFast  bool `yaml:"fail_fast"`
	Normalize bool `yaml:"normalize"`

	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Rate    float64       `yaml:"rate"` // requests per second, 0 for unlimited

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:         FormatCSV,
		Size:           dataset.DefaultSize,
		Workers:        dataset.DefaultWorkers,
		Seed:           1,
		Te:             Range{Min: dataset.DefaultTeMin, Max: dataset.DefaultTeMax},
		Ne:             Range{Min: dataset.DefaultNeMin, Max: dataset.DefaultNeMax},
		Window:         Window{Low: plasma.DefaultLow, Upper: plasma.DefaultUpper},
		ResolvingPower: plasma.DefaultResolvingPower,
		Step:           spectrum.DefaultResolution,
		MaxIonCharge:   plasma.DefaultMaxIonCharge,
		BaseURL:        nist.DefaultBaseURL,
		Timeout:        nist.DefaultTimeout,
		LogLevel:       logging.DefaultLevel,
	}
}

// Load reads path over [Default] and validates the result. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over [Default] and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type checkFunc func(c *Config) error

// Validate checks every field and reports the first violation.
func (c *Config) Validate() error {
	checks := []checkFunc{
		checkFormat,
		checkCounts,
		checkRanges,
		checkWindow,
		checkInstrument,
		checkService,
		checkLogLevel,
	}

	for _, check := range checks {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

// Request returns the base plasma request the sampler varies.
func (c *Config) Request() plasma.Request {
	req := plasma.NewRequest(nil, nil)
	req.Window = plasma.Window{Low: c.Window.Low, Upper: c.Window.Upper}
	req.Condition.MaxIonCharge = c.MaxIonCharge
	req.ResolvingPower = c.ResolvingPower
	return req
}

func invalid(field string, value any, reason string) error {
	return fmt.Errorf("%w: %s=%v: %s", ErrInvalid, field, value, reason)
}

func checkFormat(c *Config) error {
	if !slices.Contains([]string{FormatCSV, FormatXLSX}, c.Format) {
		return invalid("format", c.Format, "must be csv or xlsx")
	}
	return nil
}

func checkCounts(c *Config) error {
	if c.Size <= 0 {
		return invalid("size", c.Size, "must be positive")
	}
	if c.Workers <= 0 {
		return invalid("workers", c.Workers, "must be positive")
	}
	if c.MaxIonCharge < 0 {
		return invalid("max_ion_charge", c.MaxIonCharge, "must not be negative")
	}
	return nil
}

func checkRanges(c *Config) error {
	if !validRange(c.Te) {
		return invalid("te", c.Te, "need 0 <= min <= max")
	}
	if !validRange(c.Ne) {
		return invalid("ne", c.Ne, "need 0 <= min <= max")
	}
	return nil
}

func checkWindow(c *Config) error {
	if !core.Finite(c.Window.Low) || !core.Finite(c.Window.Upper) || c.Window.Low > c.Window.Upper {
		return invalid("window", c.Window, "need low <= upper")
	}
	return nil
}

func checkInstrument(c *Config) error {
	if !(c.Step > 0) || !core.Finite(c.Step) {
		return invalid("step", c.Step, "must be positive")
	}
	if c.ResolvingPower < 0 {
		return invalid("resolving_power", c.ResolvingPower, "must not be negative")
	}
	return nil
}

func checkService(c *Config) error {
	if c.Lines != "" {
		return nil
	}
	if c.BaseURL == "" {
		return invalid("base_url", c.BaseURL, "required without lines")
	}
	if c.Timeout < 0 {
		return invalid("timeout", c.Timeout, "must not be negative")
	}
	if c.Rate < 0 || !core.Finite(c.Rate) {
		return invalid("rate", c.Rate, "must not be negative")
	}
	return nil
}

func checkLogLevel(c *Config) error {
	if !logging.ValidLevel(c.LogLevel) {
		return invalid("log_level", c.LogLevel, "unknown level")
	}
	return nil
}

func validRange(r Range) bool {
	return core.Finite(r.Min) && core.Finite(r.Max) && r.Min >= 0 && r.Min <= r.Max
}

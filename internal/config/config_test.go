package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-libs/libs/plasma"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, FormatCSV, cfg.Format)
	require.Equal(t, 10, cfg.Size)
	require.Equal(t, Range{Min: 1, Max: 2}, cfg.Te)
	require.Equal(t, Window{Low: 200, Upper: 1000}, cfg.Window)
	require.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	in := `
input: materials.csv
output: out.xlsx
format: xlsx
size: 200
workers: 8
seed: 42
te: {min: 0.5, max: 1.5}
ne: {min: 1.0e16, max: 1.0e17}
window: {low: 300, upper: 400}
step: 0.05
fail_fast: true
timeout: 5s
rate: 2.5
log_level: debug
`
	cfg, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, "materials.csv", cfg.Input)
	require.Equal(t, FormatXLSX, cfg.Format)
	require.Equal(t, 200, cfg.Size)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, Range{Min: 0.5, Max: 1.5}, cfg.Te)
	require.Equal(t, Range{Min: 1e16, Max: 1e17}, cfg.Ne)
	require.Equal(t, Window{Low: 300, Upper: 400}, cfg.Window)
	require.Equal(t, 0.05, cfg.Step)
	require.True(t, cfg.FailFast)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, 2.5, cfg.Rate)

	// untouched keys keep their defaults
	require.Equal(t, 3, cfg.MaxIonCharge)
	require.Equal(t, 1000, cfg.ResolvingPower)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("sizes: 3\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"format", func(c *Config) { c.Format = "json" }, "format"},
		{"size", func(c *Config) { c.Size = 0 }, "size"},
		{"workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"charge", func(c *Config) { c.MaxIonCharge = -1 }, "max_ion_charge"},
		{"te reversed", func(c *Config) { c.Te = Range{Min: 2, Max: 1} }, "te"},
		{"ne negative", func(c *Config) { c.Ne = Range{Min: -1, Max: 1} }, "ne"},
		{"window", func(c *Config) { c.Window = Window{Low: 500, Upper: 400} }, "window"},
		{"step", func(c *Config) { c.Step = 0 }, "step"},
		{"resolving power", func(c *Config) { c.ResolvingPower = -1 }, "resolving_power"},
		{"base url", func(c *Config) { c.BaseURL = "" }, "base_url"},
		{"rate", func(c *Config) { c.Rate = -1 }, "rate"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			require.Contains(t, err.Error(), tt.field+"=")
		})
	}
}

func TestValidateAcceptsZeroBounds(t *testing.T) {
	cfg, err := Decode(strings.NewReader(
		"max_ion_charge: 0\nte: {min: 0, max: 2}\nne: {min: 0, max: 1e18}\nresolving_power: 0\n"))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.MaxIonCharge)
	require.Equal(t, Range{Min: 0, Max: 2}, cfg.Te)
	require.Equal(t, Range{Min: 0, Max: 1e18}, cfg.Ne)
	require.Equal(t, 0, cfg.ResolvingPower)

	req := cfg.Request()
	require.Equal(t, 0, req.Condition.MaxIonCharge)
}

func TestValidateLocalLinesSkipsService(t *testing.T) {
	cfg := Default()
	cfg.Lines = "lines.csv"
	cfg.BaseURL = ""
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 3\nformat: xlsx\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Size)
	require.Equal(t, FormatXLSX, cfg.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("size: -3\n"), 0o600))
	_, err = Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestRequest(t *testing.T) {
	cfg := Default()
	cfg.Window = Window{Low: 300, Upper: 310}
	cfg.MaxIonCharge = 2
	cfg.ResolvingPower = 500

	req := cfg.Request()
	require.Equal(t, plasma.Window{Low: 300, Upper: 310}, req.Window)
	require.Equal(t, 2, req.Condition.MaxIonCharge)
	require.Equal(t, 500, req.ResolvingPower)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-libs/internal/config"
	"github.com/cwbudde/algo-libs/libs/dataset"
	"github.com/cwbudde/algo-libs/libs/export"
	"github.com/cwbudde/algo-libs/libs/linelist"
	"github.com/cwbudde/algo-libs/libs/nist"
	"github.com/cwbudde/algo-libs/libs/simulation"
)

func (a *app) datasetCmd() *cobra.Command {
	var (
		path string
		cfg  = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "sample random plasma conditions over a composition table",
		Long: "dataset draws a material, Te and Ne for every sample, simulates its\n" +
			"spectrum and writes one row per successful sample. Flags override\n" +
			"values from --config.",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.datasetConfig(cmd, path, cfg)
			if err != nil {
				return err
			}
			return a.runDataset(cmd, run)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&path, "config", "c", "", "YAML run configuration")
	fs.StringVarP(&cfg.Input, "input", "i", "", "composition table CSV")
	fs.StringVarP(&cfg.Output, "output", "o", "", "dataset output file")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: csv or xlsx")
	fs.StringVar(&cfg.Lines, "lines", "", "read lines from a CSV table instead of the NIST service")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "number of samples")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent simulations")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.BoolVar(&cfg.FailFast, "fail-fast", false, "abort on the first failed sample")
	fs.BoolVar(&cfg.Normalize, "normalize", false, "scale every row to a unit peak")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "resampling step in nm")
	fs.Float64Var(&cfg.Rate, "rate", 0, "maximum requests per second, 0 for unlimited")

	return cmd
}

// datasetConfig loads the file named by path, if any, and applies every flag
// the user set on top of it.
func (a *app) datasetConfig(cmd *cobra.Command, path string, flags config.Config) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("input", func() { cfg.Input = flags.Input })
	set("output", func() { cfg.Output = flags.Output })
	set("format", func() { cfg.Format = flags.Format })
	set("lines", func() { cfg.Lines = flags.Lines })
	set("size", func() { cfg.Size = flags.Size })
	set("workers", func() { cfg.Workers = flags.Workers })
	set("seed", func() { cfg.Seed = flags.Seed })
	set("fail-fast", func() { cfg.FailFast = flags.FailFast })
	set("normalize", func() { cfg.Normalize = flags.Normalize })
	set("step", func() { cfg.Step = flags.Step })
	set("rate", func() { cfg.Rate = flags.Rate })

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Input == "" {
		return config.Config{}, errors.New("dataset: no composition table (--input)")
	}
	if cfg.Output == "" {
		return config.Config{}, errors.New("dataset: no output file (--output)")
	}
	return cfg, nil
}

func (a *app) runDataset(cmd *cobra.Command, cfg config.Config) error {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	table, err := dataset.ReadTable(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	var provider linelist.Provider
	if cfg.Lines != "" {
		provider = linelist.TableProvider{Source: linelist.FileTable(cfg.Lines)}
	} else {
		provider = nist.NewClient(
			nist.WithBaseURL(cfg.BaseURL),
			nist.WithTimeout(cfg.Timeout),
			nist.WithRateLimit(cfg.Rate, 1),
			nist.WithLogger(a.log.WithField("component", "nist")),
		).Provider()
	}

	sim := simulation.New(provider,
		simulation.WithStep(cfg.Step),
		simulation.WithLogger(a.log.WithField("component", "simulation")),
	)

	sampler := dataset.New(sim, table, cfg.Request(),
		dataset.WithSize(cfg.Size),
		dataset.WithWorkers(cfg.Workers),
		dataset.WithTeRange(cfg.Te.Min, cfg.Te.Max),
		dataset.WithNeRange(cfg.Ne.Min, cfg.Ne.Max),
		dataset.WithFailFast(cfg.FailFast),
		dataset.WithNormalize(cfg.Normalize),
		dataset.WithLogger(a.log.WithField("component", "dataset")),
	)

	res, err := sampler.Run(cmd.Context(), rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)))
	if err != nil {
		return err
	}

	write := func(w io.Writer) error { return export.WriteDatasetCSV(w, res) }
	if cfg.Format == config.FormatXLSX {
		write = func(w io.Writer) error { return export.WriteDatasetXLSX(w, res) }
	}
	if err := writeFile(cfg.Output, write); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "wrote %d rows to %s (%d skipped)\n", len(res.Rows), cfg.Output, res.Skipped())
	return nil
}

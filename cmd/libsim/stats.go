package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/export"
	"github.com/cwbudde/algo-libs/measure/shift"
)

func readSpectrum(path string) (spectrum.Interpolated, error) {
	f, err := os.Open(path)
	if err != nil {
		return spectrum.Interpolated{}, err
	}
	defer f.Close()

	sp, err := export.ReadSpectrumCSV(f)
	if err != nil {
		return spectrum.Interpolated{}, fmt.Errorf("%s: %w", path, err)
	}
	return sp, nil
}

func (a *app) statsCmd() *cobra.Command {
	var peaks int

	cmd := &cobra.Command{
		Use:   "stats <spectrum.csv>",
		Short: "print descriptors of a spectrum CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := readSpectrum(args[0])
			if err != nil {
				return err
			}
			return printStats(a.out, sp, peaks)
		},
	}
	cmd.Flags().IntVar(&peaks, "peaks", 5, "number of strongest peaks to list")

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var maxShift float64

	cmd := &cobra.Command{
		Use:   "compare <reference.csv> <target.csv>",
		Short: "align two spectrum CSVs and score their similarity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := readSpectrum(args[0])
			if err != nil {
				return err
			}
			target, err := readSpectrum(args[1])
			if err != nil {
				return err
			}
			if ref.Step != target.Step {
				return fmt.Errorf("compare: grid steps differ: %g vs %g nm", ref.Step, target.Step)
			}

			x, y := ref.Intensities(), target.Intensities()
			est, err := (&shift.Estimator{Step: ref.Step, MaxShift: maxShift}).Estimate(x, y)
			if err != nil {
				return err
			}
			sim, err := shift.Similarity(x, y)
			if err != nil {
				return err
			}
			rmse, err := shift.RMSE(x, y)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Shift [nm]\t%.4f\n", est.Shift)
			fmt.Fprintf(tw, "Lag [steps]\t%.3f\n", est.Lag)
			fmt.Fprintf(tw, "Correlation\t%.4f\n", est.Score)
			fmt.Fprintf(tw, "Similarity\t%.4f\n", sim)
			fmt.Fprintf(tw, "RMSE\t%.4f\n", rmse)
			return tw.Flush()
		},
	}
	cmd.Flags().Float64Var(&maxShift, "max-shift", 0, "largest offset searched in nm, 0 for all")

	return cmd
}

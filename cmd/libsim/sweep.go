package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/simulation"
)

func (a *app) sweepCmd() *cobra.Command {
	var (
		req    requestFlags
		src    sourceFlags
		powers []int
		out    string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare line lists across spectrometer resolving powers",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := simulation.New(a.provider(src), simulation.WithStep(req.step))

			points, err := sim.Sweep(cmd.Context(), req.request(), powers)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Resolving power\tLines\tStrongest [nm]\n")
			fmt.Fprintf(tw, "---------------\t-----\t--------------\n")
			for _, p := range points {
				fmt.Fprintf(tw, "%d\t%d\t%.3f\n", p.ResolvingPower, len(p.Raw), strongest(p.Raw))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if out == "" {
				return nil
			}
			return writeFile(out, func(w io.Writer) error {
				return writeSweepCSV(w, points)
			})
		},
	}

	req.register(cmd)
	src.register(cmd)
	cmd.Flags().IntSliceVar(&powers, "resolutions", []int{500, 1000, 2000}, "resolving powers to compare")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write all normalized line lists to this CSV file")

	return cmd
}

// strongest returns the wavelength of the first line with the largest
// intensity, or 0 for an empty list.
func strongest(raw spectrum.Raw) float64 {
	best := -1
	for i, l := range raw {
		if best < 0 || l.Intensity > raw[best].Intensity {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return raw[best].Wavelength
}

// writeSweepCSV writes the sweep in long form: one line per row.
func writeSweepCSV(w io.Writer, points []simulation.SweepPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"resolving_power", "wavelength", "intensity"}); err != nil {
		return err
	}
	for _, p := range points {
		power := strconv.Itoa(p.ResolvingPower)
		for _, l := range p.Raw {
			rec := []string{
				power,
				strconv.FormatFloat(l.Wavelength, 'g', -1, 64),
				strconv.FormatFloat(l.Intensity, 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

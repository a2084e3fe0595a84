package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/export"
	"github.com/cwbudde/algo-libs/libs/simulation"
	"github.com/cwbudde/algo-libs/stats/wavelength"
)

func (a *app) simulateCmd() *cobra.Command {
	var (
		req       requestFlags
		src       sourceFlags
		out       string
		normalize bool
		peaks     int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "resample the line list of one plasma request",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := simulation.New(a.provider(src),
				simulation.WithStep(req.step),
				simulation.WithLogger(a.log.WithField("component", "simulation")),
			)

			res, err := sim.Run(cmd.Context(), req.request())
			if err != nil {
				return err
			}

			sp := res.Spectrum
			if normalize {
				sp = spectrum.Normalize(sp)
			}

			if err := printSimulation(a.out, res, sp, peaks); err != nil {
				return err
			}

			if out == "" {
				return nil
			}
			return writeFile(out, func(w io.Writer) error {
				return export.WriteSpectrumCSV(w, sp)
			})
		},
	}

	req.register(cmd)
	src.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the spectrum to this CSV file")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "scale the spectrum to a unit peak")
	cmd.Flags().IntVar(&peaks, "peaks", 5, "number of strongest peaks to list")

	return cmd
}

func printSimulation(w io.Writer, res *simulation.Result, sp spectrum.Interpolated, peaks int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Request\t%s\n", res.Request)
	fmt.Fprintf(tw, "Lines\t%d\n", len(res.Raw))
	if len(res.Ions) > 0 {
		names := make([]string, len(res.Ions))
		for i, ion := range res.Ions {
			names[i] = ion.Name
		}
		fmt.Fprintf(tw, "Ions\t%v\n", names)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return printStats(w, sp, peaks)
}

func printStats(w io.Writer, sp spectrum.Interpolated, peaks int) error {
	s := wavelength.Of(sp)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Samples\t%d\n", s.Count)
	fmt.Fprintf(tw, "Step [nm]\t%g\n", s.Step)
	fmt.Fprintf(tw, "Max\t%.3f\n", s.Max)
	fmt.Fprintf(tw, "Peak [nm]\t%.3f\n", s.PeakWavelength)
	fmt.Fprintf(tw, "Centroid [nm]\t%.3f\n", s.Centroid)
	fmt.Fprintf(tw, "Spread [nm]\t%.3f\n", s.Spread)
	fmt.Fprintf(tw, "Rolloff [nm]\t%.3f\n", s.Rolloff)
	fmt.Fprintf(tw, "FWHM [nm]\t%.3f\n", s.FWHM)
	fmt.Fprintf(tw, "Integrated\t%.3f\n", s.Integrated)
	if err := tw.Flush(); err != nil {
		return err
	}

	list := wavelength.Peaks(sp.Intensities(), s.Low, s.Step, 0)
	if len(list) > peaks {
		list = list[:peaks]
	}
	if len(list) == 0 {
		return nil
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nPeak\tWavelength [nm]\tIntensity\n")
	fmt.Fprintf(tw, "----\t---------------\t---------\n")
	for i, p := range list {
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\n", i+1, p.Wavelength, p.Intensity)
	}
	return tw.Flush()
}

// writeFile creates path and hands it to write, reporting the first error.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

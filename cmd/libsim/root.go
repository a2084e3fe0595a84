package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-libs/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	out      io.Writer
	errOut   io.Writer
	logLevel string
	log      *logrus.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "libsim",
		Short:         "simulate LIBS spectra and build datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(a.errOut, a.logLevel)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", logging.DefaultLevel,
		"logging level, one of: "+strings.Join(logging.Levels, ", "))

	root.AddCommand(
		a.simulateCmd(),
		a.datasetCmd(),
		a.sweepCmd(),
		a.statsCmd(),
		a.compareCmd(),
	)

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})

	return root
}

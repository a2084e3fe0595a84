// Package logging builds the logrus logger used by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Levels lists the accepted level names, most severe first.
var Levels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

// DefaultLevel is used when no level is given.
const DefaultLevel = "info"

// ValidLevel reports whether name is one of [Levels], ignoring case.
func ValidLevel(name string) bool {
	return slices.Contains(Levels, strings.ToLower(name))
}

// New returns a text logger writing to out at the named level.
func New(out io.Writer, level string) (*logrus.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	if !ValidLevel(level) {
		return nil, fmt.Errorf("logging: invalid level %q, one of: %s", level, strings.Join(Levels, ", "))
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return &logrus.Logger{
		Out: out,
		Formatter: &logrus.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    true,
			QuoteEmptyFields: true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}, nil
}

// Named returns an entry tagged with the component name.
func Named(l logrus.FieldLogger, name string) *logrus.Entry {
	return l.WithField("component", name)
}

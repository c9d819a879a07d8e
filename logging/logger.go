// Package logging configures the zerolog logger used for diagnostic output about plan
// registration and execution. Output from the tests themselves goes through the framework's
// TestLogger and each test's debug logger instead.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger for the given verbosity: 0 shows only warnings, 1
// adds info, 2 adds debug, and anything higher adds trace along with caller information.
// Output goes to out in human-readable form, or to os.Stderr if out is nil. It is colored
// only if out is a terminal.
func SetupLogger(verbosity int, out io.Writer) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	if out == nil {
		out = os.Stderr
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(out),
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	if verbosity >= 3 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a logger that tags each message with the given component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

package plans

import (
	"github.com/rs/zerolog"
)

type config struct {
	namer    Namer
	reporter Reporter
	logger   zerolog.Logger
}

// Option configures a Builder, Define, or an Engine. Options that do not apply to the thing
// being configured are ignored.
type Option func(*config)

// WithNamer sets the Namer that computes each case's DisplayName. The default is PathNamer.
func WithNamer(namer Namer) Option {
	return func(c *config) {
		if namer != nil {
			c.namer = namer
		}
	}
}

// WithReporter sets a Reporter to receive plan, suite, and case events during a run.
func WithReporter(reporter Reporter) Option {
	return func(c *config) {
		if reporter != nil {
			c.reporter = reporter
		}
	}
}

// WithLogger sets the logger used for debug output about registration and execution. The
// default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{
		namer:    PathNamer{},
		reporter: nullReporter{},
		logger:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

package main

import (
	"regexp"
	"strings"

	"github.com/launchdarkly/go-test-plans/framework"

	"github.com/alessio/shellescape"
	"github.com/spf13/pflag"
)

type commandParams struct {
	filters   framework.RegexFilters
	debug     bool
	debugAll  bool
	tree      bool
	json      bool
	timings   bool
	verbosity int
}

func (c *commandParams) addFlags(fs *pflag.FlagSet) {
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug output of failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output of all tests")
	fs.BoolVar(&c.tree, "tree", false, "print results as a plan/suite/case tree instead of one line per test")
	fs.BoolVar(&c.json, "json", false, "print one JSON object per plan, suite and case event")
	fs.BoolVar(&c.timings, "timings", false, "show how long each test took")
	fs.CountVarP(&c.verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")
}

// rerunCommand returns a command line that runs only the given test, with the same output
// options as this run.
func (c *commandParams) rerunCommand(program string, id framework.TestID) string {
	var cmd commandBuilder
	cmd.add(program, "--run", "^"+regexp.QuoteMeta(id.String())+"$")
	if c.debug || c.debugAll {
		cmd.add("--debug")
	}
	if c.tree {
		cmd.add("--tree")
	}
	if c.json {
		cmd.add("--json")
	}
	return cmd.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/launchdarkly/go-test-plans/framework"
	"github.com/launchdarkly/go-test-plans/hosts"
	"github.com/launchdarkly/go-test-plans/logging"
	"github.com/launchdarkly/go-test-plans/plans"
	"github.com/launchdarkly/go-test-plans/reporters"
	"github.com/launchdarkly/go-test-plans/selftests"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

var errTestsFailed = errors.New("one or more tests failed")

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "planrunner",
		Short: "Run the engine contract plan",
		Long: `Runs a plan that checks the hook ordering and failure isolation of the plans
package, using the framework runner, and prints the results.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(params.verbosity, nil)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runContract(cmd.Context(), out, params)
			if err != nil {
				return err
			}
			if !results.OK() {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "To rerun a failed test:")
				for _, f := range results.Failures {
					fmt.Fprintf(out, "  %s\n", params.rerunCommand(os.Args[0], f.TestID))
				}
				return errTestsFailed
			}
			return nil
		},
	}
	params.addFlags(cmd.Flags())
	return cmd
}

// runContract registers and runs the contract plan. The error is non-nil only if the plan could
// not be registered; test failures, including a failed plan-level hook, are in the results.
func runContract(ctx context.Context, out io.Writer, params commandParams) (framework.Results, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.GetLogger("plans")
	opts := []plans.Option{plans.WithLogger(logger)}

	var testLogger framework.TestLogger
	var reps []plans.Reporter
	if params.tree {
		reps = append(reps, &reporters.Console{Out: out})
	}
	if params.json {
		reps = append(reps, &reporters.JSONLines{Out: out, Clock: time.Now})
	}
	if len(reps) > 0 {
		opts = append(opts, plans.WithReporter(reporters.Multi(reps...)))
	} else {
		testLogger = &framework.ConsoleTestLogger{
			Out:                  out,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
			ShowTimings:          params.timings,
		}
	}

	rec := &selftests.Recorder{Logger: framework.ZerologLogger{Logger: logging.GetLogger("recorder")}}
	b := plans.NewBuilder(opts...)
	if err := selftests.Register(b, rec); err != nil {
		return framework.Results{}, err
	}

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)
	fmt.Fprintln(out, "Running plan:", selftests.PlanName)

	results, runErr := hosts.RunInFramework(ctx, b.Document(), params.filters.AsFilter, testLogger, opts...)
	if runErr != nil {
		logger.Error().Err(runErr).Msg("Plan stopped early")
	}

	// with filters, some hooks legitimately do not run
	if !params.filters.IsDefined() {
		results = checkTrace(results, rec)
	}

	fmt.Fprintln(out)
	framework.PrintResults(out, results)
	return results, nil
}

// checkTrace adds a failed result if the hooks and cases did not run in the expected order.
func checkTrace(results framework.Results, rec *selftests.Recorder) framework.Results {
	var collector traceErrors
	if assert.Equal(&collector, selftests.ExpectedTrace(), rec.Events()) {
		return results
	}
	result := framework.TestResult{
		TestID: framework.TestID{Path: []string{selftests.PlanName + "/execution order"}},
		Errors: collector,
	}
	results.Tests = append(results.Tests, result)
	results.Failures = append(results.Failures, result)
	return results
}

type traceErrors []error

func (t *traceErrors) Errorf(format string, args ...interface{}) {
	*t = append(*t, fmt.Errorf(format, args...))
}

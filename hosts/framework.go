package hosts

import (
	"context"

	"github.com/launchdarkly/go-test-plans/framework"
	"github.com/launchdarkly/go-test-plans/plans"
)

// FrameworkHost runs each case as a subtest of a framework.Context.
type FrameworkHost struct {
	context *framework.Context
}

// Framework returns a plans.Host that runs cases as subtests of c.
func Framework(c *framework.Context) *FrameworkHost {
	return &FrameworkHost{context: c}
}

// RegisterTest runs fn as a subtest named name. The subtest's Context is available to fn through
// plans.T. An error returned by fn fails the subtest; so does a panic, which the framework
// recovers from.
func (h *FrameworkHost) RegisterTest(ctx context.Context, name string, fn func(context.Context) error) {
	h.context.Run(name, func(c *framework.Context) {
		if err := fn(plans.WithT(ctx, c)); err != nil {
			c.Errorf("%s", err)
			c.FailNow()
		}
	})
}

// RunInFramework executes a plan document on the framework runner, as a top-level test run.
// Each case becomes a test whose ID is the case's display name. If a plan-level or suite-level
// hook fails, the error is also recorded as a failure of a test named after the plan, since the
// framework has no other place to report it. That failure is recorded regardless of filter.
func RunInFramework(
	ctx context.Context,
	doc *plans.Document,
	filter framework.Filter,
	testLogger framework.TestLogger,
	opts ...plans.Option,
) (framework.Results, error) {
	var runErr error
	results := framework.Run(filter, testLogger, func(c *framework.Context) {
		runErr = plans.NewEngine(doc, Framework(c), opts...).Run(ctx)
	})
	if runErr != nil {
		id := framework.TestID{Path: []string{doc.Name}}
		if testLogger != nil {
			testLogger.TestError(id, runErr)
		}
		failure := framework.TestResult{TestID: id, Errors: []error{runErr}}
		results.Tests = append(results.Tests, failure)
		results.Failures = append(results.Failures, failure)
	}
	return results, runErr
}

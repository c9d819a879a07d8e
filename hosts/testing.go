package hosts

import (
	"context"
	"testing"

	"github.com/launchdarkly/go-test-plans/plans"
)

// TestingHost runs each case as a subtest of a *testing.T, so that plans can be executed by
// "go test".
type TestingHost struct {
	t *testing.T
}

// Testing returns a plans.Host that runs cases with t.Run.
func Testing(t *testing.T) *TestingHost {
	return &TestingHost{t: t}
}

func (h *TestingHost) RegisterTest(ctx context.Context, name string, fn func(context.Context) error) {
	h.t.Run(name, func(t *testing.T) {
		if err := fn(plans.WithT(ctx, t)); err != nil {
			t.Fatal(err)
		}
	})
}

// RunInTest executes a plan document with each case as a subtest of t. If a plan-level or
// suite-level hook fails, t fails immediately.
func RunInTest(t *testing.T, doc *plans.Document, opts ...plans.Option) {
	t.Helper()
	if err := plans.NewEngine(doc, Testing(t), opts...).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
}

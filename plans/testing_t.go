package plans

import (
	"context"
)

// TestingT is the part of *testing.T that assertion libraries need. It is compatible with
// require.TestingT and assert.TestingT.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

type testingTKey struct{}

// WithT attaches a host's TestingT to the context passed to a case. Hosts call this; test code
// calls T.
func WithT(ctx context.Context, t TestingT) context.Context {
	return context.WithValue(ctx, testingTKey{}, t)
}

// TFrom returns the TestingT attached by the host, if any. Plan-level hooks and suite
// before/after-all hooks run outside of any host test and never have one.
func TFrom(ctx context.Context) (TestingT, bool) {
	t, ok := ctx.Value(testingTKey{}).(TestingT)
	return t, ok
}

// T returns the TestingT attached by the host, for use with assert and require:
//
//	s.Case("sum", func(ctx context.Context) error {
//		require.Equal(plans.T(ctx), 4, sum(2, 2))
//		return nil
//	})
//
// It panics if there is none, which means it was called from a plan-level hook or a suite
// before/after-all hook, or the host does not support it.
func T(ctx context.Context) TestingT {
	if t, ok := TFrom(ctx); ok {
		return t
	}
	panic("plans.T called without a TestingT in the context; it is only available inside cases" +
		" and before/after-each-case hooks")
}

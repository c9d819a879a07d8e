package selftests

import (
	"context"
	"errors"

	"github.com/launchdarkly/go-test-plans/plans"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type innerOutcome struct {
	name string
	err  error
}

// runInnerPlan runs doc on a host that simply calls each test function and remembers what
// it returned.
func runInnerPlan(ctx context.Context, doc *plans.Document) ([]innerOutcome, error) {
	var outcomes []innerOutcome
	host := plans.HostFunc(func(ctx context.Context, name string, fn func(context.Context) error) {
		outcomes = append(outcomes, innerOutcome{name: name, err: fn(ctx)})
	})
	err := plans.NewEngine(doc, host).Run(ctx)
	return outcomes, err
}

func defineInner(t plans.TestingT, name string, body func(*plans.PlanScope)) *plans.Document {
	doc, err := plans.Define(name, body)
	require.NoError(t, err)
	return doc
}

func doFailureIsolationSuite(b *plans.Builder) {
	b.Case("failing before-each fails only its own case", func(ctx context.Context) error {
		t := plans.T(ctx)
		calls := 0
		doc := defineInner(t, "inner", func(p *plans.PlanScope) {
			p.Suite("S", func(s *plans.SuiteScope) {
				s.BeforeEach(plans.SyncE(func() error {
					calls++
					if calls == 1 {
						return errors.New("not ready")
					}
					return nil
				}))
				s.Case("c1", plans.Sync(func() {}))
				s.Case("c2", plans.Sync(func() {}))
			})
		})

		outcomes, err := runInnerPlan(ctx, doc)

		require.NoError(t, err)
		require.Len(t, outcomes, 2)
		var hookErr *plans.HookError
		require.True(t, errors.As(outcomes[0].err, &hookErr), "first case should fail with a HookError")
		assert.Equal(t, plans.BeforeEachCase, hookErr.Hook)
		assert.NoError(t, outcomes[1].err)
		return nil
	})

	b.Case("failing after-each fails only its own case", func(ctx context.Context) error {
		t := plans.T(ctx)
		calls := 0
		doc := defineInner(t, "inner", func(p *plans.PlanScope) {
			p.Suite("S", func(s *plans.SuiteScope) {
				s.AfterEach(plans.SyncE(func() error {
					calls++
					if calls == 2 {
						return errors.New("leaked")
					}
					return nil
				}))
				s.Case("c1", plans.Sync(func() {}))
				s.Case("c2", plans.Sync(func() {}))
				s.Case("c3", plans.Sync(func() {}))
			})
		})

		outcomes, err := runInnerPlan(ctx, doc)

		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		assert.NoError(t, outcomes[0].err)
		assert.Error(t, outcomes[1].err)
		assert.NoError(t, outcomes[2].err)
		return nil
	})

	b.Case("failing before-all-cases stops the rest of the plan", func(ctx context.Context) error {
		t := plans.T(ctx)
		boom := errors.New("no fixture")
		laterSuiteRan := false
		doc := defineInner(t, "inner", func(p *plans.PlanScope) {
			p.AfterAll(plans.Sync(func() { laterSuiteRan = true }))
			p.Suite("S1", func(s *plans.SuiteScope) {
				s.BeforeAll(plans.SyncE(func() error { return boom }))
				s.Case("c1", plans.Sync(func() {}))
			})
			p.Suite("S2", func(s *plans.SuiteScope) {
				s.BeforeAll(plans.Sync(func() { laterSuiteRan = true }))
				s.Case("c2", plans.Sync(func() {}))
			})
		})

		outcomes, err := runInnerPlan(ctx, doc)

		require.Error(t, err)
		assert.True(t, errors.Is(err, boom))
		assert.Empty(t, outcomes)
		assert.False(t, laterSuiteRan)
		return nil
	})

	b.Case("plan with no suites runs only plan before-all and after-all", func(ctx context.Context) error {
		t := plans.T(ctx)
		rec := &Recorder{}
		doc := defineInner(t, "inner", func(p *plans.PlanScope) {
			p.BeforeAll(rec.Mark("beforeAll"))
			p.BeforeEach(rec.Mark("beforeEach"))
			p.AfterEach(rec.Mark("afterEach"))
			p.AfterAll(rec.Mark("afterAll"))
		})

		outcomes, err := runInnerPlan(ctx, doc)

		require.NoError(t, err)
		assert.Empty(t, outcomes)
		assert.Equal(t, []string{"beforeAll", "afterAll"}, rec.Events())
		return nil
	})
}

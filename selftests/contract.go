package selftests

import (
	"context"

	"github.com/launchdarkly/go-test-plans/plans"

	"github.com/stretchr/testify/require"
)

// PlanName is the name of the plan declared by Register.
const PlanName = "engine contract"

// Register declares the contract plan on b. Every plan-level hook, and every hook of the
// "hook order" suite, is recorded in rec; after a complete run, rec.Events() should equal
// ExpectedTrace().
func Register(b *plans.Builder, rec *Recorder) error {
	return b.Plan(PlanName, func() {
		b.BeforeAll(rec.Mark("plan.beforeAll"))
		b.BeforeEach(rec.Mark("plan.beforeEach"))
		b.AfterEach(rec.Mark("plan.afterEach"))
		b.AfterAll(rec.Mark("plan.afterAll"))

		b.Suite("hook order", func() { doHookOrderSuite(b, rec) })
		b.Suite("before-each state", func() { doBeforeEachStateSuite(b) })
		b.Suite("failure isolation", func() { doFailureIsolationSuite(b) })
		b.Suite("registration", func() { doRegistrationSuite(b) })
	})
}

// ExpectedTrace is what a Recorder passed to Register contains after every case has run.
func ExpectedTrace() []string {
	trace := []string{
		"plan.beforeAll",
		"plan.beforeEach",
		"order.beforeAll",
		"order.beforeEach", "order.first", "order.afterEach",
		"order.beforeEach", "order.second", "order.afterEach",
		"order.afterAll",
		"plan.afterEach",
	}
	for i := 0; i < 3; i++ {
		trace = append(trace, "plan.beforeEach", "plan.afterEach")
	}
	return append(trace, "plan.afterAll")
}

func doHookOrderSuite(b *plans.Builder, rec *Recorder) {
	b.BeforeAll(rec.Mark("order.beforeAll"))
	b.BeforeEach(rec.Mark("order.beforeEach"))
	b.AfterEach(rec.Mark("order.afterEach"))
	b.AfterAll(rec.Mark("order.afterAll"))

	b.Case("first case runs after plan and suite hooks", func(ctx context.Context) error {
		rec.add("order.first")
		require.Equal(plans.T(ctx), []string{
			"plan.beforeAll", "plan.beforeEach", "order.beforeAll", "order.beforeEach", "order.first",
		}, rec.Events())
		return nil
	})

	b.Case("second case runs after the previous case's after-each hook", func(ctx context.Context) error {
		rec.add("order.second")
		events := rec.Events()
		require.GreaterOrEqual(plans.T(ctx), len(events), 3)
		require.Equal(plans.T(ctx), []string{"order.beforeEach", "order.second"}, events[len(events)-2:])
		// the previous step is "order.beforeAll" if the first case was excluded by a filter
		require.Contains(plans.T(ctx), []string{"order.afterEach", "order.beforeAll"}, events[len(events)-3])
		return nil
	})
}

func doBeforeEachStateSuite(b *plans.Builder) {
	counter, casesRun := 0, 0
	b.BeforeAll(plans.Sync(func() { counter, casesRun = 0, 0 }))
	b.BeforeEach(plans.Sync(func() { counter++ }))
	b.AfterEach(func(ctx context.Context) error {
		require.Equal(plans.T(ctx), casesRun, counter, "before-each ran a different number of times than cases")
		return nil
	})

	b.Case("before-each has run once for this case", func(ctx context.Context) error {
		casesRun++
		require.Equal(plans.T(ctx), casesRun, counter)
		return nil
	})

	b.Case("before-each has run once more for this case", func(ctx context.Context) error {
		casesRun++
		require.Equal(plans.T(ctx), casesRun, counter)
		return nil
	})
}

package selftests

import (
	"context"
	"errors"

	"github.com/launchdarkly/go-test-plans/plans"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRegistrationSuite(b *plans.Builder) {
	b.Case("case outside a suite is rejected without changing the plan", func(ctx context.Context) error {
		t := plans.T(ctx)
		inner := plans.NewBuilder()
		err := inner.Plan("inner", func() {
			inner.Suite("S", func() {
				inner.Case("ok", plans.Sync(func() {}))
			})
			inner.Case("orphan", plans.Sync(func() {}))
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, plans.ErrNoActiveSuite))
		require.NotNil(t, inner.Document().Suite("S"))
		assert.Len(t, inner.Document().Suite("S").Cases, 1)
		return nil
	})

	b.Case("re-registered suite replaces the earlier one", func(ctx context.Context) error {
		t := plans.T(ctx)
		rec := &Recorder{}
		inner := plans.NewBuilder()
		require.NoError(t, inner.Plan("inner", func() {
			inner.Suite("S", func() {
				inner.AfterAll(rec.Mark("old.afterAll"))
				inner.Case("old", rec.Mark("old"))
			})
			inner.Suite("S", func() {
				inner.Case("new", rec.Mark("new"))
			})
		}))

		outcomes, err := runInnerPlan(ctx, inner.Document())

		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, []string{"new"}, rec.Events())
		return nil
	})

	b.Case("hooks outside a plan are ignored", func(ctx context.Context) error {
		t := plans.T(ctx)
		rec := &Recorder{}
		inner := plans.NewBuilder()
		inner.BeforeAll(rec.Mark("stray"))
		require.NoError(t, inner.Plan("inner", func() {
			inner.Suite("S", func() { inner.Case("c", rec.Mark("c")) })
		}))
		inner.AfterAll(rec.Mark("stray"))

		_, err := runInnerPlan(ctx, inner.Document())

		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, rec.Events())
		return nil
	})

	b.Case("each plan starts with an empty document", func(ctx context.Context) error {
		t := plans.T(ctx)
		inner := plans.NewBuilder()
		require.NoError(t, inner.Plan("first", func() {
			inner.BeforeAll(plans.Sync(func() {}))
			inner.Suite("S1", func() {})
		}))
		require.NoError(t, inner.Plan("second", func() {}))

		doc := inner.Document()
		assert.Equal(t, "second", doc.Name)
		assert.Empty(t, doc.Suites())
		assert.Nil(t, doc.Hooks.BeforeAllSuites)
		return nil
	})
}

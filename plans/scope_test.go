package plans

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineBuildsDocumentInDeclarationOrder(t *testing.T) {
	doc, err := Define("P", func(p *PlanScope) {
		assert.Equal(t, "P", p.Name())
		p.Suite("b", func(s *SuiteScope) {
			assert.Equal(t, "b", s.Name())
			s.Case("2", Sync(func() {}))
			s.Case("1", Sync(func() {}))
		})
		p.Suite("a", func(s *SuiteScope) {})
	})
	require.NoError(t, err)

	suites := doc.Suites()
	require.Len(t, suites, 2)
	assert.Equal(t, "b", suites[0].Name)
	assert.Equal(t, "a", suites[1].Name)
	require.Len(t, suites[0].Cases, 2)
	assert.Equal(t, "2", suites[0].Cases[0].Name)
	assert.Equal(t, "1", suites[0].Cases[1].Name)
}

func TestDefineStoresActionsByReference(t *testing.T) {
	calls := 0
	hook := Sync(func() { calls++ })
	doc, err := Define("P", func(p *PlanScope) {
		p.BeforeAll(hook)
	})
	require.NoError(t, err)

	require.NoError(t, doc.Hooks.BeforeAllSuites(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestDefineNilCaseFunctionIsRejected(t *testing.T) {
	_, err := Define("P", func(p *PlanScope) {
		p.Suite("S", func(s *SuiteScope) {
			s.Case("c", nil)
		})
	})

	assert.True(t, errors.Is(err, ErrNilAction))
	assert.EqualError(t, err, `Case("c") in plan "P", suite "S": test function must not be nil`)
}

func TestDefineDoesNotInterceptOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "unrelated", func() {
		_, _ = Define("P", func(p *PlanScope) { panic("unrelated") })
	})
}

func TestScopesAreClosedAfterTheirBodyReturns(t *testing.T) {
	var escapedPlan *PlanScope
	var escapedSuite *SuiteScope
	_, err := Define("P", func(p *PlanScope) {
		escapedPlan = p
		p.Suite("S", func(s *SuiteScope) { escapedSuite = s })

		err := catchRegistrationError(func() { escapedSuite.Case("late", Sync(func() {})) })
		assert.True(t, errors.Is(err, ErrScopeClosed))
	})
	require.NoError(t, err)

	err = catchRegistrationError(func() { escapedPlan.BeforeAll(Sync(func() {})) })
	assert.True(t, errors.Is(err, ErrScopeClosed))
	err = catchRegistrationError(func() { escapedPlan.Suite("late", func(*SuiteScope) {}) })
	assert.True(t, errors.Is(err, ErrScopeClosed))
}

func TestRegistrationErrorMessages(t *testing.T) {
	e := &RegistrationError{Op: "Suite", Name: "S", Err: ErrNoActivePlan}
	assert.Equal(t, `Suite("S"): no plan is being registered`, e.Error())

	e = &RegistrationError{Op: "Case", Plan: "P", Name: "c", Err: ErrNoActiveSuite}
	assert.Equal(t, `Case("c") in plan "P": cases can only be registered inside a suite`, e.Error())
}

func TestHookErrorMessages(t *testing.T) {
	e := &HookError{Plan: "P", Hook: BeforeAllSuites, Err: errors.New("no db")}
	assert.Equal(t, `beforeAllSuites hook failed in plan "P": no db`, e.Error())

	e = &HookError{Plan: "P", Suite: "S", Case: "c", Hook: AfterEachCase, Err: errors.New("leak")}
	assert.Equal(t, `afterEachCase hook failed in plan "P", suite "S", case "c": leak`, e.Error())
}

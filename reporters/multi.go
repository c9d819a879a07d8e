// Package reporters contains implementations of plans.Reporter.
package reporters

import (
	"github.com/launchdarkly/go-test-plans/plans"
)

// Multi sends every event to each of the given reporters in turn.
func Multi(reporters ...plans.Reporter) plans.Reporter {
	return multi(reporters)
}

type multi []plans.Reporter

func (m multi) PlanStarted(plan string) {
	for _, r := range m {
		r.PlanStarted(plan)
	}
}

func (m multi) SuiteStarted(plan, suite string) {
	for _, r := range m {
		r.SuiteStarted(plan, suite)
	}
}

func (m multi) CaseStarted(id plans.CaseID) {
	for _, r := range m {
		r.CaseStarted(id)
	}
}

func (m multi) CaseFinished(id plans.CaseID, err error) {
	for _, r := range m {
		r.CaseFinished(id, err)
	}
}

func (m multi) SuiteFinished(plan, suite string, err error) {
	for _, r := range m {
		r.SuiteFinished(plan, suite, err)
	}
}

func (m multi) PlanFinished(plan string, err error) {
	for _, r := range m {
		r.PlanFinished(plan, err)
	}
}

package reporters

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/launchdarkly/go-test-plans/plans"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// JSONLines writes one JSON object per event, for consumption by other tools. Every object has
// an "event" property and a "plan" property; suite and case events add "suite" and "case", and
// finished events add "error" if there was one.
//
// If Clock is set, each object also has a "time" property in milliseconds since the epoch.
type JSONLines struct {
	Out   io.Writer
	Clock func() time.Time

	lock sync.Mutex
}

func (j *JSONLines) PlanStarted(plan string) {
	j.write(j.event("planStarted", plan))
}

func (j *JSONLines) SuiteStarted(plan, suite string) {
	j.write(j.event("suiteStarted", plan).Set("suite", ldvalue.String(suite)))
}

func (j *JSONLines) CaseStarted(id plans.CaseID) {
	j.write(j.caseEvent("caseStarted", id))
}

func (j *JSONLines) CaseFinished(id plans.CaseID, err error) {
	j.write(withError(j.caseEvent("caseFinished", id), err))
}

func (j *JSONLines) SuiteFinished(plan, suite string, err error) {
	j.write(withError(j.event("suiteFinished", plan).Set("suite", ldvalue.String(suite)), err))
}

func (j *JSONLines) PlanFinished(plan string, err error) {
	j.write(withError(j.event("planFinished", plan), err))
}

func (j *JSONLines) event(kind, plan string) ldvalue.ObjectBuilder {
	b := ldvalue.ObjectBuild().
		Set("event", ldvalue.String(kind)).
		Set("plan", ldvalue.String(plan))
	if j.Clock != nil {
		b = b.Set("time", ldvalue.Float64(float64(j.Clock().UnixNano()/int64(time.Millisecond))))
	}
	return b
}

func (j *JSONLines) caseEvent(kind string, id plans.CaseID) ldvalue.ObjectBuilder {
	return j.event(kind, id.Plan).
		Set("suite", ldvalue.String(id.Suite)).
		Set("case", ldvalue.String(id.Case))
}

func withError(b ldvalue.ObjectBuilder, err error) ldvalue.ObjectBuilder {
	if err != nil {
		b = b.Set("error", ldvalue.String(err.Error()))
	}
	return b
}

func (j *JSONLines) write(b ldvalue.ObjectBuilder) {
	j.lock.Lock()
	defer j.lock.Unlock()
	fmt.Fprintln(j.Out, b.Build().JSONString())
}

package plans

import (
	"context"
	"fmt"
)

type tracer struct {
	events []string
}

func (tr *tracer) add(event string) Action {
	return Sync(func() { tr.events = append(tr.events, event) })
}

func (tr *tracer) fail(event string, err error) Action {
	return SyncE(func() error {
		tr.events = append(tr.events, event)
		return err
	})
}

type recordingT struct {
	errors []string
	failed bool
}

func (t *recordingT) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.errors = append(t.errors, fmt.Sprintf(format, args...))
}

func (t *recordingT) FailNow() {
	t.failed = true
	panic(t)
}

type hostResult struct {
	name   string
	err    error
	failed bool
}

// recordingHost runs each test immediately, the way framework.Context and testing.T do.
type recordingHost struct {
	results []hostResult
}

func (h *recordingHost) RegisterTest(ctx context.Context, name string, fn func(context.Context) error) {
	t := &recordingT{}
	r := hostResult{name: name}
	func() {
		defer func() {
			if p := recover(); p != nil && p != interface{}(t) {
				panic(p)
			}
		}()
		r.err = fn(WithT(ctx, t))
	}()
	r.failed = r.err != nil || t.failed
	h.results = append(h.results, r)
}

func (h *recordingHost) failedNames() []string {
	var ret []string
	for _, r := range h.results {
		if r.failed {
			ret = append(ret, r.name)
		}
	}
	return ret
}

type event struct {
	kind string
	name string
	err  error
}

type recordingReporter struct {
	events []event
}

func (r *recordingReporter) PlanStarted(plan string) {
	r.events = append(r.events, event{kind: "planStarted", name: plan})
}

func (r *recordingReporter) SuiteStarted(plan, suite string) {
	r.events = append(r.events, event{kind: "suiteStarted", name: suite})
}

func (r *recordingReporter) CaseStarted(id CaseID) {
	r.events = append(r.events, event{kind: "caseStarted", name: id.Case})
}

func (r *recordingReporter) CaseFinished(id CaseID, err error) {
	r.events = append(r.events, event{kind: "caseFinished", name: id.Case, err: err})
}

func (r *recordingReporter) SuiteFinished(plan, suite string, err error) {
	r.events = append(r.events, event{kind: "suiteFinished", name: suite, err: err})
}

func (r *recordingReporter) PlanFinished(plan string, err error) {
	r.events = append(r.events, event{kind: "planFinished", name: plan, err: err})
}

package plans

// CaseID identifies a case in Reporter events.
type CaseID struct {
	Plan        string
	Suite       string
	Case        string
	DisplayName string
}

func (id CaseID) String() string {
	return id.Plan + "/" + id.Suite + "/" + id.Case
}

// Reporter receives structured events as the Engine runs a plan, so that output can be grouped
// by plan and suite however the caller likes.
//
// CaseStarted and CaseFinished are called from inside the function given to the Host, so they
// happen whenever the host runs the test. The error passed to CaseFinished is the one the
// engine saw; a host may consider a case failed for other reasons, such as an assertion that
// called Errorf without stopping the test.
type Reporter interface {
	PlanStarted(plan string)
	SuiteStarted(plan, suite string)
	CaseStarted(id CaseID)
	CaseFinished(id CaseID, err error)
	SuiteFinished(plan, suite string, err error)
	PlanFinished(plan string, err error)
}

type nullReporter struct{}

func (nullReporter) PlanStarted(string)                  {}
func (nullReporter) SuiteStarted(string, string)         {}
func (nullReporter) CaseStarted(CaseID)                  {}
func (nullReporter) CaseFinished(CaseID, error)          {}
func (nullReporter) SuiteFinished(string, string, error) {}
func (nullReporter) PlanFinished(string, error)          {}

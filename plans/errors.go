package plans

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoActivePlan means something that belongs to a plan was registered outside of one.
	ErrNoActivePlan = errors.New("no plan is being registered")

	// ErrNoActiveSuite means a case was registered outside of a suite.
	ErrNoActiveSuite = errors.New("cases can only be registered inside a suite")

	// ErrNilAction means a case was registered without a test function.
	ErrNilAction = errors.New("test function must not be nil")

	// ErrScopeClosed means a PlanScope or SuiteScope was used after its body returned.
	ErrScopeClosed = errors.New("registration scope is no longer active")

	// ErrNoPlan is returned by Builder.Run if Plan was never called.
	ErrNoPlan = errors.New("no plan has been registered")

	// ErrCaseAborted is reported to a Reporter when a case's function exited without returning,
	// for instance because a host's FailNow stopped it.
	ErrCaseAborted = errors.New("test exited before completing")
)

// RegistrationError describes misuse of the registration API. It is raised with panic at the
// point of the bad call, so that plan construction stops right away, and returned as an error
// by Define or Builder.Plan.
type RegistrationError struct {
	Op    string
	Plan  string
	Suite string
	Name  string
	Err   error
}

func (e *RegistrationError) Error() string {
	var where []string
	if e.Plan != "" {
		where = append(where, fmt.Sprintf("plan %q", e.Plan))
	}
	if e.Suite != "" {
		where = append(where, fmt.Sprintf("suite %q", e.Suite))
	}
	msg := fmt.Sprintf("%s(%q)", e.Op, e.Name)
	if len(where) > 0 {
		msg += " in " + strings.Join(where, ", ")
	}
	return msg + ": " + e.Err.Error()
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// HookKind identifies one of the eight hook slots.
type HookKind string

const (
	BeforeAllSuites HookKind = "beforeAllSuites"
	BeforeEachSuite HookKind = "beforeEachSuite"
	AfterEachSuite  HookKind = "afterEachSuite"
	AfterAllSuites  HookKind = "afterAllSuites"
	BeforeAllCases  HookKind = "beforeAllCases"
	BeforeEachCase  HookKind = "beforeEachCase"
	AfterEachCase   HookKind = "afterEachCase"
	AfterAllCases   HookKind = "afterAllCases"
)

// HookError is returned when a hook fails. Suite is empty only for BeforeAllSuites and
// AfterAllSuites; Case is set only for BeforeEachCase and AfterEachCase.
type HookError struct {
	Plan  string
	Suite string
	Case  string
	Hook  HookKind
	Err   error
}

func (e *HookError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s hook failed in plan %q", e.Hook, e.Plan)
	if e.Suite != "" {
		fmt.Fprintf(&b, ", suite %q", e.Suite)
	}
	if e.Case != "" {
		fmt.Fprintf(&b, ", case %q", e.Case)
	}
	fmt.Fprintf(&b, ": %s", e.Err)
	return b.String()
}

func (e *HookError) Unwrap() error {
	return e.Err
}

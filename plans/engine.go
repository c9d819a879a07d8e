package plans

import (
	"context"

	"github.com/rs/zerolog"
)

// Host is whatever runs and reports individual tests.
//
// RegisterTest is called once for each case. The host must call fn exactly once, passing a
// context derived from ctx (with its TestingT attached by WithT, if it has one), and must not
// return until fn has returned. A non-nil error from fn means that test failed. A panic from fn
// is the host's to deal with.
type Host interface {
	RegisterTest(ctx context.Context, name string, fn func(ctx context.Context) error)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(ctx context.Context, name string, fn func(ctx context.Context) error)

func (f HostFunc) RegisterTest(ctx context.Context, name string, fn func(ctx context.Context) error) {
	f(ctx, name, fn)
}

// Engine runs one Document.
//
// The order is: the plan's BeforeAllSuites hook; then for each suite in declaration order, the
// plan's BeforeEachSuite hook, the suite's BeforeAllCases hook, each case in declaration order,
// the suite's AfterAllCases hook, and the plan's AfterEachSuite hook; and finally the plan's
// AfterAllSuites hook. Unset hooks are skipped.
//
// Each case is given to the Host as a single test which runs the suite's BeforeEachCase hook,
// the case, and the suite's AfterEachCase hook, stopping at the first error. Such an error fails
// that test only. An error from any other hook is returned from Run as a *HookError, and
// nothing after it runs.
type Engine struct {
	doc      *Document
	host     Host
	reporter Reporter
	logger   zerolog.Logger
}

// NewEngine creates an Engine for a Document. The relevant options are WithReporter and
// WithLogger.
func NewEngine(doc *Document, host Host, opts ...Option) *Engine {
	c := newConfig(opts)
	return &Engine{
		doc:      doc,
		host:     host,
		reporter: c.reporter,
		logger:   c.logger.With().Str("plan", doc.Name).Logger(),
	}
}

// Run executes the plan. It returns nil if all plan-level and suite-level hooks succeeded;
// results of the individual cases are reported by the Host.
func (e *Engine) Run(ctx context.Context) (err error) {
	doc := e.doc
	e.reporter.PlanStarted(doc.Name)
	defer func() {
		e.reporter.PlanFinished(doc.Name, err)
	}()

	e.logger.Debug().Int("suites", len(doc.suites)).Msg("Running plan")
	if err := e.runHook(ctx, BeforeAllSuites, "", doc.Hooks.BeforeAllSuites); err != nil {
		return err
	}
	for _, s := range doc.suites {
		if err := e.runSuite(ctx, s); err != nil {
			return err
		}
	}
	return e.runHook(ctx, AfterAllSuites, "", doc.Hooks.AfterAllSuites)
}

func (e *Engine) runSuite(ctx context.Context, s *Suite) (err error) {
	plan := e.doc.Name
	e.reporter.SuiteStarted(plan, s.Name)
	defer func() {
		e.reporter.SuiteFinished(plan, s.Name, err)
	}()

	e.logger.Debug().Str("suite", s.Name).Int("cases", len(s.Cases)).Msg("Running suite")
	if err := e.runHook(ctx, BeforeEachSuite, s.Name, e.doc.Hooks.BeforeEachSuite); err != nil {
		return err
	}
	if err := e.runHook(ctx, BeforeAllCases, s.Name, s.Hooks.BeforeAllCases); err != nil {
		return err
	}
	for _, c := range s.Cases {
		e.registerCase(ctx, s, c)
	}
	if err := e.runHook(ctx, AfterAllCases, s.Name, s.Hooks.AfterAllCases); err != nil {
		return err
	}
	return e.runHook(ctx, AfterEachSuite, s.Name, e.doc.Hooks.AfterEachSuite)
}

func (e *Engine) registerCase(ctx context.Context, s *Suite, c Case) {
	id := CaseID{Plan: e.doc.Name, Suite: s.Name, Case: c.Name, DisplayName: c.DisplayName}
	e.logger.Debug().Str("suite", s.Name).Str("case", c.Name).Msg("Registering case with host")

	e.host.RegisterTest(ctx, c.DisplayName, func(ctx context.Context) error {
		finished := false
		e.reporter.CaseStarted(id)
		defer func() {
			// FailNow may stop the test with a panic or with runtime.Goexit
			if !finished {
				e.reporter.CaseFinished(id, ErrCaseAborted)
			}
		}()
		err := e.runCase(ctx, s, c)
		finished = true
		e.reporter.CaseFinished(id, err)
		return err
	})
}

func (e *Engine) runCase(ctx context.Context, s *Suite, c Case) error {
	if err := s.Hooks.BeforeEachCase.run(ctx); err != nil {
		return e.hookFailed(BeforeEachCase, s.Name, c.Name, err)
	}
	if err := c.Fn.run(ctx); err != nil {
		return err
	}
	if err := s.Hooks.AfterEachCase.run(ctx); err != nil {
		return e.hookFailed(AfterEachCase, s.Name, c.Name, err)
	}
	return nil
}

func (e *Engine) runHook(ctx context.Context, kind HookKind, suite string, a Action) error {
	if a == nil {
		return nil
	}
	if err := a(ctx); err != nil {
		return e.hookFailed(kind, suite, "", err)
	}
	return nil
}

func (e *Engine) hookFailed(kind HookKind, suite, caseName string, err error) *HookError {
	e.logger.Warn().Err(err).Str("hook", string(kind)).Str("suite", suite).Str("case", caseName).
		Msg("Hook failed")
	return &HookError{Plan: e.doc.Name, Suite: suite, Case: caseName, Hook: kind, Err: err}
}

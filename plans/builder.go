package plans

import (
	"context"
)

// Builder registers plans through nested calls that do not pass a scope around. It keeps a
// cursor of which plan and suite are currently being registered, and routes each call to the
// right place:
//
//	b := plans.NewBuilder()
//	err := b.Plan("store", func() {
//		b.BeforeAll(plans.SyncE(openStore)) // plan scope: runs before the first suite
//		b.Suite("writes", func() {
//			b.BeforeEach(plans.Sync(resetStore)) // suite scope: runs before each case
//			b.Case("put then get", plans.Sync(func() { ... }))
//		})
//	})
//	...
//	err = b.Run(ctx, host)
//
// A Builder is not safe for concurrent use.
type Builder struct {
	cfg   config
	opts  []Option
	plan  *PlanScope
	suite *SuiteScope
	doc   *Document
	err   error
}

// NewBuilder creates a Builder. The options are used both for registration (WithNamer) and
// for the Engine created by Run.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{cfg: newConfig(opts), opts: opts}
}

// Plan starts a new plan, replacing any plan registered earlier, and calls body to register
// its suites and hooks. It returns a *RegistrationError if body misused the Builder.
func (b *Builder) Plan(name string, body func()) error {
	b.plan, b.suite = nil, nil
	defer func() { b.plan, b.suite = nil, nil }()
	b.cfg.logger.Debug().Str("plan", name).Msg("Registering plan")
	b.doc, b.err = define(name, func(p *PlanScope) {
		b.plan = p
		body()
	}, b.cfg)
	return b.err
}

// Suite registers a suite in the current plan and calls body to register its cases and hooks.
// If the plan already has a suite with this name, the earlier one is replaced.
func (b *Builder) Suite(name string, body func()) {
	if b.plan == nil {
		panic(&RegistrationError{Op: "Suite", Name: name, Err: ErrNoActivePlan})
	}
	outer := b.suite
	defer func() { b.suite = outer }()
	b.plan.Suite(name, func(s *SuiteScope) {
		b.suite = s
		body()
	})
}

// Case adds a test to the current suite. Calling it outside of a suite is an error which stops
// registration of the plan immediately.
func (b *Builder) Case(name string, fn Action) {
	if b.suite == nil {
		e := &RegistrationError{Op: "Case", Name: name, Err: ErrNoActiveSuite}
		if b.plan != nil {
			e.Plan = b.plan.Name()
		}
		panic(e)
	}
	b.suite.Case(name, fn)
}

// BeforeAll sets the suite's before-all-cases hook if called inside a suite, or the plan's
// before-all-suites hook if called directly inside a plan. Outside of a plan it does nothing.
func (b *Builder) BeforeAll(a Action) {
	b.route("BeforeAll", (*SuiteScope).BeforeAll, (*PlanScope).BeforeAll, a)
}

// BeforeEach sets the suite's before-each-case hook if called inside a suite, or the plan's
// before-each-suite hook if called directly inside a plan. Outside of a plan it does nothing.
func (b *Builder) BeforeEach(a Action) {
	b.route("BeforeEach", (*SuiteScope).BeforeEach, (*PlanScope).BeforeEach, a)
}

// AfterEach sets the suite's after-each-case hook if called inside a suite, or the plan's
// after-each-suite hook if called directly inside a plan. Outside of a plan it does nothing.
func (b *Builder) AfterEach(a Action) {
	b.route("AfterEach", (*SuiteScope).AfterEach, (*PlanScope).AfterEach, a)
}

// AfterAll sets the suite's after-all-cases hook if called inside a suite, or the plan's
// after-all-suites hook if called directly inside a plan. Outside of a plan it does nothing.
func (b *Builder) AfterAll(a Action) {
	b.route("AfterAll", (*SuiteScope).AfterAll, (*PlanScope).AfterAll, a)
}

func (b *Builder) route(
	op string,
	inSuite func(*SuiteScope, Action),
	inPlan func(*PlanScope, Action),
	a Action,
) {
	switch {
	case b.suite != nil:
		inSuite(b.suite, a)
	case b.plan != nil:
		inPlan(b.plan, a)
	default:
		// TODO: decide whether this should be a RegistrationError like Case outside a suite
		b.cfg.logger.Debug().Str("hook", op).Msg("Ignoring hook registered outside of a plan")
	}
}

// Document returns the most recently registered plan, or nil if Plan has not been called. If
// registration failed, this is the part that was registered before the error.
func (b *Builder) Document() *Document {
	return b.doc
}

// Run executes the most recently registered plan on the given host. It returns the
// registration error if the plan could not be registered, and otherwise whatever the Engine
// returns.
func (b *Builder) Run(ctx context.Context, host Host) error {
	if b.err != nil {
		return b.err
	}
	if b.doc == nil {
		return ErrNoPlan
	}
	return NewEngine(b.doc, host, b.opts...).Run(ctx)
}

package plans

// PlanScope is passed to the body of Define. Hooks registered on it run around each suite of
// the plan, or once around all of them.
type PlanScope struct {
	doc    *Document
	namer  Namer
	closed bool
}

// SuiteScope is passed to the body of PlanScope.Suite. Hooks registered on it run around each
// case of the suite, or once around all of them.
type SuiteScope struct {
	plan   *PlanScope
	suite  *Suite
	closed bool
}

// Define registers a plan by calling body synchronously, and returns the finished Document.
//
// If body misuses the registration API, registration stops at that call and the error is
// returned as a *RegistrationError along with whatever had been registered up to that point.
// Panics of any other kind are not intercepted.
func Define(name string, body func(*PlanScope), opts ...Option) (*Document, error) {
	c := newConfig(opts)
	return define(name, body, c)
}

func define(name string, body func(*PlanScope), c config) (*Document, error) {
	p := &PlanScope{doc: newDocument(name), namer: c.namer}
	defer func() { p.closed = true }()
	err := catchRegistrationError(func() { body(p) })
	return p.doc, err
}

func catchRegistrationError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RegistrationError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// Name returns the name of the plan being registered.
func (p *PlanScope) Name() string { return p.doc.Name }

// Suite registers a suite and calls body synchronously to fill it in. If the plan already has
// a suite with this name, it is replaced: its cases and hooks are discarded.
func (p *PlanScope) Suite(name string, body func(*SuiteScope)) {
	p.requireOpen("Suite", name)
	if p.doc.Suite(name) != nil {
		if f, ok := p.namer.(suiteForgetter); ok {
			f.ForgetSuite(p.doc.Name, name)
		}
	}
	s := &SuiteScope{plan: p, suite: &Suite{Name: name}}
	p.doc.putSuite(s.suite)
	defer func() { s.closed = true }()
	body(s)
}

// BeforeAll sets the hook that runs once before the plan's first suite.
func (p *PlanScope) BeforeAll(a Action) {
	p.requireOpen("BeforeAll", "")
	p.doc.Hooks.BeforeAllSuites = a
}

// BeforeEach sets the hook that runs before each suite.
func (p *PlanScope) BeforeEach(a Action) {
	p.requireOpen("BeforeEach", "")
	p.doc.Hooks.BeforeEachSuite = a
}

// AfterEach sets the hook that runs after each suite.
func (p *PlanScope) AfterEach(a Action) {
	p.requireOpen("AfterEach", "")
	p.doc.Hooks.AfterEachSuite = a
}

// AfterAll sets the hook that runs once after the plan's last suite.
func (p *PlanScope) AfterAll(a Action) {
	p.requireOpen("AfterAll", "")
	p.doc.Hooks.AfterAllSuites = a
}

func (p *PlanScope) requireOpen(op, name string) {
	if p.closed {
		panic(&RegistrationError{Op: op, Plan: p.doc.Name, Name: name, Err: ErrScopeClosed})
	}
}

// Name returns the name of the suite being registered.
func (s *SuiteScope) Name() string { return s.suite.Name }

// Case adds a test to the suite. Cases run in the order they are added.
func (s *SuiteScope) Case(name string, fn Action) {
	s.requireOpen("Case", name)
	if fn == nil {
		panic(s.misuse("Case", name, ErrNilAction))
	}
	s.suite.Cases = append(s.suite.Cases, Case{
		Name:        name,
		DisplayName: s.plan.namer.DisplayName(s.plan.doc.Name, s.suite.Name, name),
		Fn:          fn,
	})
}

// BeforeAll sets the hook that runs once before the suite's first case.
func (s *SuiteScope) BeforeAll(a Action) {
	s.requireOpen("BeforeAll", "")
	s.suite.Hooks.BeforeAllCases = a
}

// BeforeEach sets the hook that runs before each case, as part of that case's test.
func (s *SuiteScope) BeforeEach(a Action) {
	s.requireOpen("BeforeEach", "")
	s.suite.Hooks.BeforeEachCase = a
}

// AfterEach sets the hook that runs after each case, as part of that case's test.
func (s *SuiteScope) AfterEach(a Action) {
	s.requireOpen("AfterEach", "")
	s.suite.Hooks.AfterEachCase = a
}

// AfterAll sets the hook that runs once after the suite's last case.
func (s *SuiteScope) AfterAll(a Action) {
	s.requireOpen("AfterAll", "")
	s.suite.Hooks.AfterAllCases = a
}

func (s *SuiteScope) requireOpen(op, name string) {
	if s.closed || s.plan.closed {
		panic(s.misuse(op, name, ErrScopeClosed))
	}
}

func (s *SuiteScope) misuse(op, name string, err error) *RegistrationError {
	return &RegistrationError{Op: op, Plan: s.plan.doc.Name, Suite: s.suite.Name, Name: name, Err: err}
}

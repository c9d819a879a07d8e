package plans

// Document is the result of registering one plan. It is what the Engine executes.
//
// After Define or Builder.Plan returns, a Document is not modified again.
type Document struct {
	Name   string
	Hooks  PlanHooks
	suites []*Suite
	index  map[string]int
}

// PlanHooks are the hooks registered directly inside a plan, outside of any suite.
type PlanHooks struct {
	BeforeAllSuites Action
	BeforeEachSuite Action
	AfterEachSuite  Action
	AfterAllSuites  Action
}

// Suite is a named group of cases within a plan.
type Suite struct {
	Name  string
	Hooks SuiteHooks
	Cases []Case
}

// SuiteHooks are the hooks registered inside a suite. There are no hooks scoped to a single
// case; BeforeEachCase and AfterEachCase wrap every case of the suite.
type SuiteHooks struct {
	BeforeAllCases Action
	BeforeEachCase Action
	AfterEachCase  Action
	AfterAllCases  Action
}

// Case is a single named test.
type Case struct {
	Name        string // as registered
	DisplayName string // name handed to the host; see Namer
	Fn          Action
}

func newDocument(name string) *Document {
	return &Document{Name: name, index: make(map[string]int)}
}

// Suites returns the plan's suites in declaration order.
func (d *Document) Suites() []*Suite {
	return append([]*Suite(nil), d.suites...)
}

// Suite returns the suite with the given name, or nil.
func (d *Document) Suite(name string) *Suite {
	if i, ok := d.index[name]; ok {
		return d.suites[i]
	}
	return nil
}

// putSuite replaces any existing suite of the same name. The replacement keeps the position
// of the suite it replaces.
func (d *Document) putSuite(s *Suite) {
	if i, ok := d.index[s.Name]; ok {
		d.suites[i] = s
		return
	}
	d.index[s.Name] = len(d.suites)
	d.suites = append(d.suites, s)
}

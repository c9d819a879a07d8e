// Package plans lets test code declare a hierarchy of plans, suites, and cases with lifecycle
// hooks, and then execute that hierarchy with the hooks fired in a fixed order.
//
// The general model is:
//
// 1. A plan is declared with nested calls: Plan contains Suites, a Suite contains Cases. Hooks
// registered directly inside a plan apply around each suite; hooks registered inside a suite
// apply around each case of that suite. Registration is synchronous, so the whole Document is
// finished before any test logic runs.
//
// 2. The Engine walks the Document. Plan-level and suite-level "all" hooks run in the engine
// itself. Each case is handed to a Host, which is whatever actually runs and reports individual
// tests: the framework package's Context, Go's testing.T, or anything else with a RegisterTest
// method. The function given to the host runs the suite's before-each hook, the case itself,
// and the suite's after-each hook.
//
// 3. A failing case, or a failing before/after-each hook, fails only that one test. A failing
// plan-level hook or suite before/after-all hook stops the run and is returned from Run.
//
// There are two ways to register. Define and its PlanScope/SuiteScope arguments pass the
// registration context explicitly:
//
//	doc, err := plans.Define("store", func(p *plans.PlanScope) {
//		p.BeforeAll(plans.SyncE(openStore))
//		p.Suite("writes", func(s *plans.SuiteScope) {
//			s.BeforeEach(plans.Sync(resetStore))
//			s.Case("put then get", plans.Sync(func() { ... }))
//		})
//	})
//
// Builder offers the same thing with an implicit cursor, for code that prefers calls without
// a receiver argument in every nested function.
package plans

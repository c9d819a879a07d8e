package plans

import (
	"strings"
)

// Namer computes the name under which a case is handed to the host. It is called once per case,
// in registration order, while the plan is being registered.
type Namer interface {
	DisplayName(plan, suite, caseName string) string
}

// PathNamer names each case "plan/suite/case", which works with the framework package's
// regex filters and with "go test -run".
type PathNamer struct{}

func (PathNamer) DisplayName(plan, suite, caseName string) string {
	return plan + "/" + suite + "/" + caseName
}

// suiteForgetter is implemented by a Namer whose names depend on what it has already named.
// ForgetSuite is called when a suite is registered again under the same name, since the cases
// named so far for that suite are discarded.
type suiteForgetter interface {
	ForgetSuite(plan, suite string)
}

// TreeNamer produces names that read as an indented tree when a host prints them one after
// another. The plan line is included only the first time a plan is seen, and the suite line
// only the first time a suite is seen within its plan; the case line is always included.
//
// A TreeNamer remembers what it has seen, so use a new one for each run.
type TreeNamer struct {
	// Indent is repeated once per level. The default is two spaces.
	Indent string

	seenPlans  map[string]bool
	seenSuites map[string]map[string]bool
}

func (n *TreeNamer) DisplayName(plan, suite, caseName string) string {
	indent := n.Indent
	if indent == "" {
		indent = "  "
	}
	if n.seenPlans == nil {
		n.seenPlans = make(map[string]bool)
		n.seenSuites = make(map[string]map[string]bool)
	}

	var lines []string
	if !n.seenPlans[plan] {
		n.seenPlans[plan] = true
		n.seenSuites[plan] = make(map[string]bool)
		lines = append(lines, plan)
	}
	if !n.seenSuites[plan][suite] {
		n.seenSuites[plan][suite] = true
		lines = append(lines, indent+suite)
	}
	lines = append(lines, indent+indent+caseName)
	return strings.Join(lines, "\n")
}

// ForgetSuite makes the next case of the suite include the suite line again.
func (n *TreeNamer) ForgetSuite(plan, suite string) {
	delete(n.seenSuites[plan], suite)
}

package reporters

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/launchdarkly/go-test-plans/plans"

	"github.com/fatih/color"
)

var (
	planColor   = color.New(color.Bold)
	suiteColor  = color.New(color.FgCyan)
	passedColor = color.New(color.FgGreen)
	failedColor = color.New(color.FgRed)
)

// Console writes plan and suite headers and one line per case, indented as a tree:
//
//	store
//	  writes
//	    PASS put then get
//	    FAIL overwrite: expected 2, got 1
type Console struct {
	Out    io.Writer
	Indent string

	lock sync.Mutex
}

func (c *Console) PlanStarted(plan string) {
	c.printf(0, "%s", planColor.Sprint(plan))
}

func (c *Console) SuiteStarted(plan, suite string) {
	c.printf(1, "%s", suiteColor.Sprint(suite))
}

func (c *Console) CaseStarted(id plans.CaseID) {}

func (c *Console) CaseFinished(id plans.CaseID, err error) {
	if err == nil {
		c.printf(2, "%s %s", passedColor.Sprint("PASS"), id.Case)
		return
	}
	c.printf(2, "%s %s: %s", failedColor.Sprint("FAIL"), id.Case, firstLine(err))
}

func (c *Console) SuiteFinished(plan, suite string, err error) {
	if err != nil {
		c.printf(1, "%s %s", failedColor.Sprint("suite aborted:"), firstLine(err))
	}
}

func (c *Console) PlanFinished(plan string, err error) {
	if err != nil {
		c.printf(0, "%s %s", failedColor.Sprint("plan aborted:"), firstLine(err))
	}
}

func (c *Console) printf(level int, format string, args ...interface{}) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	indent := c.Indent
	if indent == "" {
		indent = "  "
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	fmt.Fprint(out, strings.Repeat(indent, level))
	fmt.Fprintf(out, format+"\n", args...)
}

func firstLine(err error) string {
	s := err.Error()
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is used similarly to *testing.T. It implements require.TestingT so that the standard
// assert and require packages can be used with it, has a Run method for subtests, and can skip
// tests.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run runs the top-level action and returns the results of every test that was run inside it.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action, time.Now())
	return env.results
}

func (c *Context) run(action func(*Context), started time.Time) {
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		if len(c.id.Path) == 0 {
			return // the root context is not a test
		}
		result := TestResult{
			TestID:     c.id,
			Errors:     c.errors,
			Skipped:    c.skipped,
			SkipReason: c.skipReason,
			Duration:   time.Since(started),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// ID returns the identifier of the current test.
func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest and waits for it to finish. This is equivalent to the Run method of
// testing.T. It returns false if the subtest failed.
func (c *Context) Run(name string, action func(*Context)) bool {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return true
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	started := time.Now()
	c1.run(action, started)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, time.Since(started), c1.debugLogger.Output())
	}
	return !c1.failed
}

// Errorf records a failure without stopping the test. Assertions in the assert package call it.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// FailNow stops the test immediately. Assertions in the require package call it.
func (c *Context) FailNow() {
	panic(c)
}

// Failed reports whether the test has failed so far.
func (c *Context) Failed() bool {
	return c.failed
}

// Skip stops the test immediately and marks it as skipped rather than failed.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug adds a message to the test's debug output, which is passed to the TestLogger when the
// test finishes.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError strips the leading blank line and tab indentation that testify puts in its
// failure messages, so they can be indented consistently by the TestLogger.
func reformatError(err error) error {
	lines := strings.Split(strings.TrimLeft(err.Error(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "\t")
	}
	return errors.New(strings.Join(lines, "\n"))
}

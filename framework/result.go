package framework

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
	Duration   time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Skipped returns the results of tests that were skipped from inside the test. Tests excluded
// by a Filter are never started, so they do not appear in Results at all.
func (r Results) Skipped() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if t.Skipped {
			ret = append(ret, t)
		}
	}
	return ret
}

type TestID struct {
	Path []string
}

// Plus returns the ID of a subtest of this test.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of the test run, listing every failed test.
func PrintResults(w io.Writer, results Results) {
	passed := len(results.Tests) - len(results.Failures) - len(results.Skipped())
	summary := fmt.Sprintf("%d passed, %d failed, %d skipped",
		passed, len(results.Failures), len(results.Skipped()))
	if results.OK() {
		fmt.Fprintf(w, "%s %s\n", passedColor.Sprint("All tests passed:"), summary)
		return
	}
	fmt.Fprintf(w, "%s %s\n", failedColor.Sprint("FAILED TESTS:"), summary)
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  * %s\n", f.TestID)
	}
}

package framework

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestTestIDPlusDoesNotShareBackingArray(t *testing.T) {
	parent := TestID{Path: make([]string, 1, 10)}
	parent.Path[0] = "p"
	a := parent.Plus("a")
	b := parent.Plus("b")
	assert.Equal(t, "p/a", a.String())
	assert.Equal(t, "p/b", b.String())
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(&buf, Results{Tests: []TestResult{{TestID: id("a")}}})
	assert.Equal(t, "All tests passed: 1 passed, 0 failed, 0 skipped\n", buf.String())

	buf.Reset()
	failure := TestResult{TestID: id("b")}
	PrintResults(&buf, Results{
		Tests:    []TestResult{{TestID: id("a")}, failure, {TestID: id("c"), Skipped: true}},
		Failures: []TestResult{failure},
	})
	assert.Equal(t, "FAILED TESTS: 1 passed, 1 failed, 1 skipped\n  * b\n", buf.String())
}

func TestConsoleTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	output := CapturedOutput{{Time: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), Message: "details"}}

	logger.TestStarted(id("a"))
	logger.TestError(id("a"), errors.New("line1\nline2"))
	logger.TestFinished(id("a"), true, time.Second, output)
	logger.TestFinished(id("b"), false, time.Second, output)
	logger.TestSkipped(id("c"), "")
	logger.TestSkipped(id("d"), "why")

	assert.Equal(t, "[a]\n"+
		"  line1\n"+
		"  line2\n"+
		"  FAILED: a\n"+
		"    DEBUG [2020-01-02 03:04:05.000] details\n"+
		"  SKIPPED: c\n"+
		"  SKIPPED: d (why)\n", buf.String())
}

func TestConsoleTestLoggerTimings(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Out: &buf, ShowTimings: true}
	logger.TestFinished(id("a"), false, 1500*time.Millisecond, nil)
	assert.Equal(t, "  ok (1.5s)\n", buf.String())
}

func TestCapturingLoggerIsSafeForConcurrentUse(t *testing.T) {
	var l CapturingLogger
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(i int) {
			l.Printf("%d", i)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
	assert.Len(t, l.Output(), 10)
}

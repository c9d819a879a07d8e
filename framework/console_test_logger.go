package framework

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	failedColor  = color.New(color.FgRed)
	passedColor  = color.New(color.FgGreen)
	skippedColor = color.New(color.FgYellow)
)

// ConsoleTestLogger is a TestLogger that writes human-readable progress to Out (os.Stdout if nil).
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	ShowTimings          bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "  %s\n", failedColor.Sprint(line))
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, failed bool, elapsed time.Duration, debugOutput CapturedOutput) {
	if failed {
		fmt.Fprintf(c.out(), "  %s %s%s\n", failedColor.Sprint("FAILED:"), id, c.timing(elapsed))
	} else if c.ShowTimings {
		fmt.Fprintf(c.out(), "  %s%s\n", passedColor.Sprint("ok"), c.timing(elapsed))
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "  %s %s\n", skippedColor.Sprint("SKIPPED:"), id)
	} else {
		fmt.Fprintf(c.out(), "  %s %s (%s)\n", skippedColor.Sprint("SKIPPED:"), id, reason)
	}
}

func (c *ConsoleTestLogger) timing(elapsed time.Duration) string {
	if !c.ShowTimings {
		return ""
	}
	return fmt.Sprintf(" (%s)", elapsed.Round(time.Microsecond))
}

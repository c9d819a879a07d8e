package framework

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used for debug output of tests.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// ZerologLogger adapts a zerolog.Logger to Logger, writing each message at debug level.
type ZerologLogger struct {
	Logger zerolog.Logger
}

func (l ZerologLogger) Printf(message string, args ...interface{}) {
	l.Logger.Debug().Msgf(message, args...)
}

// CapturedMessage is one message kept by a CapturingLogger, with the time it was logged.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the messages kept by a CapturingLogger, in the order they were logged.
type CapturedOutput []CapturedMessage

// CapturingLogger keeps messages in memory so they can be shown only if a test fails. It is
// safe for concurrent use.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes each message on its own line, preceded by prefix and a timestamp.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}

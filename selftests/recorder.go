package selftests

import (
	"sync"

	"github.com/launchdarkly/go-test-plans/framework"
	"github.com/launchdarkly/go-test-plans/plans"
)

// Recorder keeps the order in which hooks and cases ran. It is safe for concurrent use.
type Recorder struct {
	// Logger, if set, is told about each event as it is recorded.
	Logger framework.Logger

	events []string
	lock   sync.Mutex
}

// Mark returns an Action that records event when it runs.
func (r *Recorder) Mark(event string) plans.Action {
	return plans.Sync(func() { r.add(event) })
}

func (r *Recorder) add(event string) {
	r.lock.Lock()
	r.events = append(r.events, event)
	r.lock.Unlock()
	r.logger().Printf("recorded %q", event)
}

func (r *Recorder) logger() framework.Logger {
	if r.Logger == nil {
		return framework.NullLogger()
	}
	return r.Logger
}

// Events returns everything recorded so far.
func (r *Recorder) Events() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.events...)
}

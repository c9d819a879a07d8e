package plans

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncAlwaysSucceeds(t *testing.T) {
	called := false
	assert.NoError(t, Sync(func() { called = true })(context.Background()))
	assert.True(t, called)
}

func TestSyncEReturnsError(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, boom, SyncE(func() error { return boom })(context.Background()))
}

func TestAsyncWaitsForResult(t *testing.T) {
	finished := false
	a := Async(func(ctx context.Context) <-chan error {
		ch := make(chan error, 1)
		go func() {
			time.Sleep(10 * time.Millisecond)
			finished = true
			ch <- nil
		}()
		return ch
	})

	assert.NoError(t, a(context.Background()))
	assert.True(t, finished)
}

func TestAsyncReturnsError(t *testing.T) {
	boom := errors.New("boom")
	a := Async(func(ctx context.Context) <-chan error {
		ch := make(chan error, 1)
		go func() { ch <- boom }()
		return ch
	})

	assert.Equal(t, boom, a(context.Background()))
}

func TestAsyncClosedChannelMeansSuccess(t *testing.T) {
	a := Async(func(ctx context.Context) <-chan error {
		ch := make(chan error)
		close(ch)
		return ch
	})

	assert.NoError(t, a(context.Background()))
}

func TestAsyncStopsWaitingWhenContextIsDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := Async(func(ctx context.Context) <-chan error {
		return make(chan error)
	})

	assert.Equal(t, context.Canceled, a(ctx))
}

func TestAsyncNilChannel(t *testing.T) {
	a := Async(func(ctx context.Context) <-chan error { return nil })
	assert.Error(t, a(context.Background()))
}

func TestAsyncHookSettlesBeforeCaseStarts(t *testing.T) {
	tr := &tracer{}
	doc, err := Define("P", func(p *PlanScope) {
		p.Suite("S", func(s *SuiteScope) {
			s.BeforeEach(Async(func(ctx context.Context) <-chan error {
				ch := make(chan error, 1)
				go func() {
					time.Sleep(10 * time.Millisecond)
					tr.events = append(tr.events, "beforeEach")
					ch <- nil
				}()
				return ch
			}))
			s.Case("c", tr.add("c"))
		})
	})
	assert.NoError(t, err)

	assert.NoError(t, NewEngine(doc, &recordingHost{}).Run(context.Background()))
	assert.Equal(t, []string{"beforeEach", "c"}, tr.events)
}

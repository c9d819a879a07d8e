package plans

import (
	"context"
	"errors"
)

// Action is a hook or a test function. Synchronous and asynchronous callbacks are both
// normalized to this form, so the engine only ever waits for an Action to return.
//
// An Action that returns a non-nil error has failed. A nil Action means "not set" and is
// skipped wherever a hook is optional.
type Action func(ctx context.Context) error

// Sync wraps a function that cannot return an error. It can still fail through a TestingT
// obtained with T, or by panicking.
func Sync(fn func()) Action {
	return func(context.Context) error {
		fn()
		return nil
	}
}

// SyncE wraps a function that reports failure by returning an error.
func SyncE(fn func() error) Action {
	return func(context.Context) error {
		return fn()
	}
}

// Async wraps a function that starts some work and returns a channel on which the outcome
// will be delivered. The Action does not return until a value is received from the channel,
// the channel is closed (treated as success), or the context is done.
func Async(start func(ctx context.Context) <-chan error) Action {
	return func(ctx context.Context) error {
		ch := start(ctx)
		if ch == nil {
			return errors.New("asynchronous action returned a nil channel")
		}
		select {
		case err := <-ch:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (a Action) run(ctx context.Context) error {
	if a == nil {
		return nil
	}
	return a(ctx)
}

package async

import (
	"context"
	"fmt"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for completion up to the given duration and returns
// ErrTimeout when the deadline passes first. The computation keeps running;
// only the wait is abandoned.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn in its own goroutine and returns a Future for its result.
// A context cancelled before the goroutine starts resolves the future with
// the context's error without invoking fn.
func Run[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Fire executes fn in its own goroutine for its side effects only. Errors and
// recovered panics are handed to onErr (when non-nil) and otherwise dropped;
// nothing propagates back to the caller.
func Fire(ctx context.Context, fn func(context.Context) error, onErr func(error)) {
	go func() {
		defer func() {
			if r := recover(); r != nil && onErr != nil {
				onErr(fmt.Errorf("async: panic: %v", r))
			}
		}()

		if err := fn(ctx); err != nil && onErr != nil {
			onErr(err)
		}
	}()
}

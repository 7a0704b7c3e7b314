package httpclient

import (
	"context"
	"errors"
	"time"
)

// ErrDeadlineExceeded is returned by RunWithTimeout when the deadline fires
// before fn settles. It is distinct from any error fn itself returns.
var ErrDeadlineExceeded = errors.New("httpclient: deadline exceeded")

type outcome[T any] struct {
	val T
	err error
}

// RunWithTimeout runs fn against a competing deadline timer. If fn settles
// first its result is returned unchanged. If the deadline fires first the
// context passed to fn is cancelled, any late result is discarded, and
// ErrDeadlineExceeded is returned. A deadline <= 0 runs fn unbounded.
func RunWithTimeout[T any](ctx context.Context, deadline time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if deadline <= 0 {
		return fn(ctx)
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := time.NewTimer(deadline)
	defer timer.Stop()

	// buffered so an abandoned fn never blocks on send
	done := make(chan outcome[T], 1)
	go func() {
		v, err := fn(callCtx)
		done <- outcome[T]{val: v, err: err}
	}()

	select {
	case o := <-done:
		return o.val, o.err
	case <-timer.C:
		cancel()
		var zero T
		return zero, ErrDeadlineExceeded
	}
}

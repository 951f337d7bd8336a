// Package future provides the pending-computation type the async pipeline
// engines suspend on. A Future settles exactly once, in its own goroutine,
// and any number of awaiters observe the same settlement.
package future

import (
	"context"
	"fmt"
)

// Result pairs a settled value with its error.
type Result[T any] struct {
	Value T
	Err   error
}

// Future is a single-assignment pending computation of a value of type T.
// The zero value is not usable; construct with Go, Resolve or Reject.
type Future[T any] struct {
	done chan struct{}
	res  Result[T]
}

// Go runs payload in its own goroutine and returns its pending result.
//
// A payload that panics settles the future as failed: a recovered error
// keeps its identity, any other panic value is wrapped. The payload is
// not started when ctx is already done.
func Go[T any](ctx context.Context, payload func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					f.res.Err = err
					return
				}
				f.res.Err = fmt.Errorf("future: payload panic: %v", r)
			}
		}()
		if err := ctx.Err(); err != nil {
			f.res.Err = err
			return
		}
		f.res.Value, f.res.Err = payload(ctx)
	}()
	return f
}

// Resolve returns a future already settled with v.
func Resolve[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: Result[T]{Value: v}}
	close(f.done)
	return f
}

// Reject returns a future already settled as failed with err.
func Reject[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: Result[T]{Err: err}}
	close(f.done)
	return f
}

// Await blocks until the future settles or ctx is done. Awaiting a settled
// future any number of times reports the same result; giving up via ctx
// never corrupts the future for other awaiters.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.res.Value, f.res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitAny is the erased form of Await. It is what lets an engine resolve
// a pending value without knowing its element type.
func (f *Future[T]) AwaitAny(ctx context.Context) (any, error) {
	v, err := f.Await(ctx)
	return v, err
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Awaitable is any pending computation the pipeline engines know how to
// resolve before handing its value to the next stage.
type Awaitable interface {
	AwaitAny(ctx context.Context) (any, error)
}

// Package reduce holds the sequential reducer shared by the pipe and
// compose engines: one fold over an ordered stage list, parameterized by
// direction and by how pending stage results are handled.
package reduce

import (
	"context"
	"reflect"

	"github.com/halfapplied/curried/fn"
	"github.com/halfapplied/curried/future"
)

// Direction fixes stage application order.
type Direction int

const (
	// Forward applies index 0 first (pipe family).
	Forward Direction = iota
	// Reverse applies the last index first (compose family).
	Reverse
)

// Mode selects how a stage result that is still pending is handled.
type Mode int

const (
	// Sync hands a pending result to the next stage as the literal
	// unresolved value. This is intentional: the synchronous forms never
	// suspend, even when a stage returns a future.
	Sync Mode = iota
	// Async resolves every pending result, the seed included, before the
	// next stage runs. Each stage boundary is a suspension point.
	Async
)

// Stage is a normalized stage call. A nil Stage is identity.
type Stage func(ctx context.Context, args ...any) any

var ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()

// Normalize adapts an arbitrary stage value to a Stage. Erased fn.Func
// values are used directly, any other function goes through fn.Lift, and a
// function whose first parameter is a context.Context receives the engine
// context at call time. nil stays nil.
func Normalize(target any) Stage {
	switch t := target.(type) {
	case nil:
		return nil
	case fn.Func:
		return func(_ context.Context, args ...any) any { return t(args...) }
	case func(args ...any) any:
		return func(_ context.Context, args ...any) any { return t(args...) }
	}

	if rt := reflect.TypeOf(target); rt.Kind() == reflect.Func && rt.NumIn() > 0 && rt.In(0) == ctxType {
		lifted := fn.Lift(target)
		return func(ctx context.Context, args ...any) any {
			return lifted(append([]any{ctx}, args...)...)
		}
	}

	lifted := fn.Lift(target)
	return func(_ context.Context, args ...any) any { return lifted(args...) }
}

// NormalizeAll normalizes a whole stage list, preserving order and nil
// slots.
func NormalizeAll(targets []any) []Stage {
	stages := make([]Stage, len(targets))
	for i, t := range targets {
		stages[i] = Normalize(t)
	}
	return stages
}

// Run threads args through stages in the given direction. The first
// applied stage receives the full argument list; every later stage
// receives exactly one value, its predecessor's output. Absent (nil)
// stages are identity. With no stage at all the input is echoed back.
//
// In Async mode a failed stage settles the run as failed and no later
// stage executes. In Sync mode a failing stage propagates by panic and
// Run itself never returns an error.
func Run(ctx context.Context, dir Direction, mode Mode, stages []Stage, args []any) (any, error) {
	if mode == Async {
		settled, err := settleAll(ctx, args)
		if err != nil {
			return nil, err
		}
		args = settled
	}

	ordered := stages
	if dir == Reverse {
		ordered = make([]Stage, len(stages))
		for i, s := range stages {
			ordered[len(stages)-1-i] = s
		}
	}

	var acc any
	applied := false
	for _, stage := range ordered {
		if stage == nil {
			continue
		}
		var out any
		if applied {
			out = stage(ctx, acc)
		} else {
			out = stage(ctx, args...)
			applied = true
		}
		if mode == Async {
			settled, err := settle(ctx, out)
			if err != nil {
				return nil, err
			}
			out = settled
		}
		acc = out
	}

	if !applied {
		return echo(args), nil
	}
	return acc, nil
}

// settle resolves v until it is no longer pending.
func settle(ctx context.Context, v any) (any, error) {
	for {
		pending, ok := v.(future.Awaitable)
		if !ok {
			return v, nil
		}
		next, err := pending.AwaitAny(ctx)
		if err != nil {
			return nil, err
		}
		v = next
	}
}

func settleAll(ctx context.Context, args []any) ([]any, error) {
	settled := make([]any, len(args))
	for i, a := range args {
		v, err := settle(ctx, a)
		if err != nil {
			return nil, err
		}
		settled[i] = v
	}
	return settled, nil
}

// echo is the zero-stage identity over the input.
func echo(args []any) any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		out := make([]any, len(args))
		copy(out, args)
		return out
	}
}

package curry

import (
	"errors"
	"fmt"

	"github.com/halfapplied/curried/fn"
)

// ErrUnsupportedArity is the sentinel matched by errors.Is for any
// UnsupportedArityError.
var ErrUnsupportedArity = errors.New("curry: unsupported arity")

// UnsupportedArityError reports a target whose declared parameter count is
// outside the supported range.
type UnsupportedArityError struct {
	Arity int
}

func (e *UnsupportedArityError) Error() string {
	return fmt.Sprintf("curry: unsupported arity %d, want 0 to 3", e.Arity)
}

func (e *UnsupportedArityError) Is(target error) bool {
	return target == ErrUnsupportedArity
}

// Of builds the curried form of target. The declared parameter count is
// read exactly once, here, and must be between 0 and 3.
func Of(target any) (fn.Func, error) {
	arity, err := fn.Arity(target)
	if err != nil {
		return nil, err
	}
	return N(fn.Lift(target), arity)
}

// MustOf is the panic-on-failure variant of Of. Use when the target's
// arity is known to be in range.
func MustOf(target any) fn.Func {
	curried, err := Of(target)
	if err != nil {
		panic(err)
	}
	return curried
}

// N curries an already-erased target of the given declared arity, without
// reflection. Targets of arity 0 or 1 are returned unchanged.
//
// Dispatch at every level keys on the number of arguments supplied to that
// call: enough arguments invoke the target immediately with extras
// discarded, fewer return a fresh closure over the arguments captured so
// far, awaiting the rest.
func N(target fn.Func, arity int) (fn.Func, error) {
	switch arity {
	case 0, 1:
		return target, nil
	case 2:
		return curry2(target), nil
	case 3:
		return curry3(target), nil
	default:
		return nil, &UnsupportedArityError{Arity: arity}
	}
}

func curry2(target fn.Func) fn.Func {
	return func(args ...any) any {
		if len(args) >= 2 {
			return target(args[0], args[1])
		}
		a := first(args)
		return fn.Func(func(rest ...any) any {
			return target(a, first(rest))
		})
	}
}

func curry3(target fn.Func) fn.Func {
	return func(args ...any) any {
		if len(args) >= 3 {
			return target(args[0], args[1], args[2])
		}
		if len(args) == 2 {
			a, b := args[0], args[1]
			return fn.Func(func(rest ...any) any {
				return target(a, b, first(rest))
			})
		}
		a := first(args)
		return curry2(func(rest ...any) any {
			return target(a, rest[0], rest[1])
		})
	}
}

// first reads the sole captured argument of an under-supplied call. An
// absent argument is captured as nil, not skipped: the closure still
// awaits only the remaining positions.
func first(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

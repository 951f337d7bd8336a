package fn

import (
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Lift adapts an arbitrary Go function to the erased Func surface.
//
// Argument handling follows the count-based calling convention: extra
// arguments beyond the declared parameter count are discarded, and missing
// trailing arguments become the parameter's zero value. Argument types must
// match the target's parameter types; a mismatch is a precondition
// violation on the caller.
//
// Result handling: a single result is returned as-is and a niladic result
// yields nil. When the target's last result is an error and that error is
// non-nil, the lifted call panics with exactly that error value, so the
// failure keeps its identity on synchronous paths; asynchronous engines
// recover it and settle their pending result as failed. A nil trailing
// error is stripped from the result.
//
// Lift never inspects argument values; presence is purely positional.
func Lift(target any) Func {
	if f, ok := target.(Func); ok {
		return f
	}
	if f, ok := target.(func(args ...any) any); ok {
		return f
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Func {
		panic(fmt.Errorf("fn: cannot lift %T: not a function", target))
	}
	t := v.Type()

	return func(args ...any) any {
		in := make([]reflect.Value, t.NumIn())
		for i := range in {
			if i < len(args) && args[i] != nil {
				in[i] = reflect.ValueOf(args[i])
			} else {
				in[i] = reflect.Zero(t.In(i))
			}
		}

		out := v.Call(in)
		if n := len(out); n > 0 && out[n-1].Type().Implements(errType) {
			if err, _ := out[n-1].Interface().(error); err != nil {
				panic(err)
			}
			out = out[:n-1]
		}

		switch len(out) {
		case 0:
			return nil
		case 1:
			return out[0].Interface()
		default:
			rest := make([]any, len(out))
			for i, o := range out {
				rest[i] = o.Interface()
			}
			return rest
		}
	}
}

package fn

import (
	"fmt"
	"reflect"
)

// Arity reports the number of parameters target declares. It is a pure
// query with no side effects, read once per curried construction.
//
// A variadic final parameter counts as one declared parameter; currying a
// variadic function is a precondition violation on the caller and is not
// checked here.
func Arity(target any) (int, error) {
	t := reflect.TypeOf(target)
	if t == nil || t.Kind() != reflect.Func {
		return 0, fmt.Errorf("fn: not a function: %T", target)
	}
	return t.NumIn(), nil
}

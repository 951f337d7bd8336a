package helper

import (
	"fmt"
)

// As safely asserts an erased value to the expected type T.
func As[T any](v any) (res T, ok bool) {
	res, ok = v.(T)
	return
}

// MustAs is the panic-on-failure variant of As. Use when the erased value
// is guaranteed to have the expected type, e.g. a partial application
// produced by the curry dispatcher, which is always an fn.Func.
func MustAs[T any](v any) T {
	res, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("helper: unexpected type: %T", v))
	}
	return res
}

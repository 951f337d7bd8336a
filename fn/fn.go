package fn

// Func is the erased form of a function: a variadic call over loosely-typed
// arguments. Everything in this module that needs to know how many arguments
// a call actually supplied dispatches on a Func, because the length of the
// argument slice is observable independently of the argument values. A nil,
// zero or empty-string argument is still a supplied argument.
type Func func(args ...any) any

// Of1 lifts a typed unary function into its erased form.
func Of1[I1, O1 any](f func(I1) O1) Func {
	return func(args ...any) any {
		return f(at[I1](args, 0))
	}
}

// Of2 lifts a typed binary function into its erased form.
func Of2[I1, I2, O1 any](f func(I1, I2) O1) Func {
	return func(args ...any) any {
		return f(at[I1](args, 0), at[I2](args, 1))
	}
}

// Of3 lifts a typed ternary function into its erased form.
func Of3[I1, I2, I3, O1 any](f func(I1, I2, I3) O1) Func {
	return func(args ...any) any {
		return f(at[I1](args, 0), at[I2](args, 1), at[I3](args, 2))
	}
}

// at reads the i-th argument, mapping an absent or nil slot to the zero
// value of the expected type.
func at[T any](args []any, i int) T {
	if i >= len(args) || args[i] == nil {
		var zero T
		return zero
	}
	return args[i].(T)
}

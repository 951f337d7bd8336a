// Package curry turns functions of up to three parameters into curried
// callables that accept either full or partial argument lists.
//
// # What is dispatch by count?
//
// A curried callable decides, per call, whether to invoke the underlying
// target immediately or to return a new function awaiting the remaining
// arguments. The deciding key is the number of arguments physically
// supplied to that specific call, never the argument values:
//
//	curried(a, nil)  // two arguments supplied: invoke now, second is nil
//	curried(a)       // one argument supplied: wait for the second
//
// Zero, empty-string, false and nil are real arguments. Extra arguments
// beyond the declared parameter count are discarded at every level.
//
// # Surfaces
//
// Of derives the target's declared parameter count through reflection and
// builds the erased curried form:
//
//	curried := curry.MustOf(func(a, b, c int) int { return a + b + c })
//	curried(1, 2, 3)                       // 6
//	g := curried(1, 2).(fn.Func)
//	g(3)                                   // 6
//
// N is the reflection-free form for callers who already hold an erased
// fn.Func and its declared arity.
//
// I2O1, I3O1, I2O2 and I3O2 are the typed, generic, zero-reflection
// wrappers: one signature per supported arity, returning the fully-curried
// chain of unary functions.
//
// # Guarantees
//
// Every partial application is a freshly allocated closure over an
// immutable snapshot of the arguments supplied so far. Sibling partials
// never share state and no memoization is ever introduced. The dispatcher
// adds no side effects of its own: the target's return value, including a
// still-pending future, is handed back untouched.
//
// Targets of arity 0 or 1 are already in their most-curried form; Of
// returns their plain lifted form unchanged. A declared arity of 4 or more
// fails with an UnsupportedArityError naming the offending arity.
package curry

package curry

// The I{n}O{m} family gives one typed signature per supported arity over
// the same currying semantics, for call sites that want static types
// instead of the erased dispatcher.

// I2O1 returns the fully-curried form of a binary function.
func I2O1[I1, I2, O1 any](f func(I1, I2) O1) func(I1) func(I2) O1 {
	return func(i1 I1) func(I2) O1 {
		return func(i2 I2) O1 {
			return f(i1, i2)
		}
	}
}

// I3O1 returns the fully-curried form of a ternary function.
func I3O1[I1, I2, I3, O1 any](f func(I1, I2, I3) O1) func(I1) func(I2) func(I3) O1 {
	return func(i1 I1) func(I2) func(I3) O1 {
		return func(i2 I2) func(I3) O1 {
			return func(i3 I3) O1 {
				return f(i1, i2, i3)
			}
		}
	}
}

// I2O2 returns the fully-curried form of a binary function with two
// results, commonly (T, error).
func I2O2[I1, I2, O1, O2 any](f func(I1, I2) (O1, O2)) func(I1) func(I2) (O1, O2) {
	return func(i1 I1) func(I2) (O1, O2) {
		return func(i2 I2) (O1, O2) {
			return f(i1, i2)
		}
	}
}

// I3O2 returns the fully-curried form of a ternary function with two
// results.
func I3O2[I1, I2, I3, O1, O2 any](f func(I1, I2, I3) (O1, O2)) func(I1) func(I2) func(I3) (O1, O2) {
	return func(i1 I1) func(I2) func(I3) (O1, O2) {
		return func(i2 I2) func(I3) (O1, O2) {
			return func(i3 I3) (O1, O2) {
				return f(i1, i2, i3)
			}
		}
	}
}

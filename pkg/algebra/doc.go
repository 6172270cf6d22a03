// Package algebra implements quaternion arithmetic over any signed integer
// or floating-point component type.
//
// A Quaternion[T] is a plain value a + bi + cj + dk. Every operation returns
// a new value; nothing is mutated, so quaternions are safe to share between
// goroutines without locking.
//
// Ring operations (Add, Sub, Mul, Conj, Scale, CrossProduct, Exchangeable)
// are methods available for every Scalar type and compare exactly. The
// operations that need a square root or a division (Abs, Unit,
// DivElementwise, Inverse) are package functions constrained to Float,
// together with tolerance-based comparisons for those types.
package algebra

package algebra

import "golang.org/x/exp/constraints"

// Scalar is the set of component types a Quaternion can hold.
// Unsigned integers are left out since conjugation negates.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Float is the set of component types that support magnitude and
// normalization.
type Float interface {
	constraints.Float
}

// half divides by two. The commutator of two integer quaternions always has
// even components, so this is exact for integers that have not overflowed and
// equal to *0.5 for floats.
func half[T Scalar](v T) T {
	return v / 2
}

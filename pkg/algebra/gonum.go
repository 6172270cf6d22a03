package algebra

import "gonum.org/v1/gonum/num/quat"

// ToNumber converts q to gonum's quat.Number.
func ToNumber[T Float](q Quaternion[T]) quat.Number {
	return quat.Number{
		Real: float64(q.real),
		Imag: float64(q.x),
		Jmag: float64(q.y),
		Kmag: float64(q.z),
	}
}

// FromNumber converts a gonum quat.Number, rounding to T if needed.
func FromNumber[T Float](n quat.Number) Quaternion[T] {
	return New(T(n.Real), T(n.Imag), T(n.Jmag), T(n.Kmag))
}

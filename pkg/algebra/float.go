package algebra

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Abs returns the Euclidean norm sqrt(r² + x² + y² + z²).
func Abs[T Float](q Quaternion[T]) T {
	return T(math.Sqrt(float64(q.Norm2())))
}

// DivElementwise divides every component by |s|.
// The sign of s is discarded, so dividing by -2 gives the same result as
// dividing by 2.
func DivElementwise[T Float](q Quaternion[T], s T) Quaternion[T] {
	d := T(math.Abs(float64(s)))
	return Quaternion[T]{
		real: q.real / d,
		x:    q.x / d,
		y:    q.y / d,
		z:    q.z / d,
	}
}

// Unit returns q scaled to magnitude 1.
// The zero quaternion has no direction and yields NaN components; use
// UnitChecked to get an error instead.
func Unit[T Float](q Quaternion[T]) Quaternion[T] {
	return DivElementwise(q, Abs(q))
}

// UnitChecked is Unit for callers that cannot tolerate NaN results.
// The magnitude is computed without squaring in T, so components near the
// limits of T still normalize.
func UnitChecked[T Float](q Quaternion[T]) (Quaternion[T], error) {
	mag, err := guardedNorm(q)
	if err != nil {
		return Quaternion[T]{}, err
	}
	n := ToNumber(q)
	return checkResult(q, quat.Number{
		Real: n.Real / mag,
		Imag: n.Imag / mag,
		Jmag: n.Jmag / mag,
		Kmag: n.Kmag / mag,
	})
}

// Inverse returns the multiplicative inverse conj(q) / |q|².
// ErrNonFinite is returned when the inverse is not representable in T.
func Inverse[T Float](q Quaternion[T]) (Quaternion[T], error) {
	mag, err := guardedNorm(q)
	if err != nil {
		return Quaternion[T]{}, err
	}
	c := ToNumber(q.Conj())
	return checkResult(q, quat.Number{
		Real: c.Real / mag / mag,
		Imag: c.Imag / mag / mag,
		Jmag: c.Jmag / mag / mag,
		Kmag: c.Kmag / mag / mag,
	})
}

// guardedNorm returns the magnitude of q in float64, scaled by gonum to
// avoid the overflow and underflow of squaring.
func guardedNorm[T Float](q Quaternion[T]) (float64, error) {
	if !IsFinite(q) {
		return 0, errorsmod.Wrapf(ErrNonFinite, "cannot divide by the norm of %s", q)
	}
	mag := quat.Abs(ToNumber(q))
	if mag == 0 {
		return 0, errorsmod.Wrapf(ErrZeroNorm, "cannot divide by the norm of %s", q)
	}
	if math.IsInf(mag, 0) {
		return 0, errorsmod.Wrapf(ErrNonFinite, "norm of %s overflows", q)
	}
	return mag, nil
}

func checkResult[T Float](q Quaternion[T], n quat.Number) (Quaternion[T], error) {
	r := FromNumber[T](n)
	if quat.IsInf(n) || quat.IsNaN(n) || !IsFinite(r) {
		return Quaternion[T]{}, errorsmod.Wrapf(ErrNonFinite, "result for %s is out of range", q)
	}
	return r, nil
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite[T Float](q Quaternion[T]) bool {
	for _, c := range q.Components() {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether each pair of components is within tol of
// each other, either absolutely or relative to their magnitude.
func ApproxEqual[T Float](a, b Quaternion[T], tol T) bool {
	ac, bc := a.Components(), b.Components()
	for i := range ac {
		if !scalar.EqualWithinAbsOrRel(float64(ac[i]), float64(bc[i]), float64(tol), float64(tol)) {
			return false
		}
	}
	return true
}

// ExchangeableApprox is Exchangeable with every component of the
// commutator compared against zero within tol.
func ExchangeableApprox[T Float](a, b Quaternion[T], tol T) bool {
	return ApproxEqual(CrossProduct(a, b), Zero[T](), tol)
}

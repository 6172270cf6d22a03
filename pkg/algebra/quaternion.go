package algebra

import "fmt"

// Quaternion is the value real + x·i + y·j + z·k.
// Any four components form a valid quaternion.
type Quaternion[T Scalar] struct {
	real T
	x    T
	y    T
	z    T
}

// Quaternion64 is the double-precision specialization.
type Quaternion64 = Quaternion[float64]

// Quaternion32 is the single-precision specialization.
type Quaternion32 = Quaternion[float32]

// New creates a quaternion from its real part and its i, j, k parts.
func New[T Scalar](r, x, y, z T) Quaternion[T] {
	return Quaternion[T]{real: r, x: x, y: y, z: z}
}

// Pure creates a quaternion with zero real part from a vector.
func Pure[T Scalar](v Vector3[T]) Quaternion[T] {
	return Quaternion[T]{x: v.X, y: v.Y, z: v.Z}
}

// FromScalar creates a quaternion with zero imaginary part.
func FromScalar[T Scalar](s T) Quaternion[T] {
	return Quaternion[T]{real: s}
}

// Zero returns the additive identity.
func Zero[T Scalar]() Quaternion[T] {
	return Quaternion[T]{}
}

// Identity returns the multiplicative identity.
func Identity[T Scalar]() Quaternion[T] {
	return Quaternion[T]{real: 1}
}

// Real returns the scalar part.
func (q Quaternion[T]) Real() T {
	return q.real
}

// Imag returns the i, j, k parts in that order.
func (q Quaternion[T]) Imag() [3]T {
	return [3]T{q.x, q.y, q.z}
}

// Vector returns the imaginary part as a vector.
func (q Quaternion[T]) Vector() Vector3[T] {
	return Vector3[T]{X: q.x, Y: q.y, Z: q.z}
}

// Components returns real, x, y, z in that order.
func (q Quaternion[T]) Components() [4]T {
	return [4]T{q.real, q.x, q.y, q.z}
}

// Conj returns the conjugate, which negates the imaginary part.
func (q Quaternion[T]) Conj() Quaternion[T] {
	return Quaternion[T]{real: q.real, x: -q.x, y: -q.y, z: -q.z}
}

// Neg returns the additive inverse.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{real: -q.real, x: -q.x, y: -q.y, z: -q.z}
}

// Add returns the componentwise sum.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		real: q.real + o.real,
		x:    q.x + o.x,
		y:    q.y + o.y,
		z:    q.z + o.z,
	}
}

// Sub returns the componentwise difference.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		real: q.real - o.real,
		x:    q.x - o.x,
		y:    q.y - o.y,
		z:    q.z - o.z,
	}
}

// Scale multiplies every component by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{
		real: q.real * s,
		x:    q.x * s,
		y:    q.y * s,
		z:    q.z * s,
	}
}

// Mul returns the Hamilton product q·o. It is not commutative.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		real: q.real*o.real - q.x*o.x - q.y*o.y - q.z*o.z,
		x:    q.real*o.x + q.x*o.real + q.y*o.z - q.z*o.y,
		y:    q.real*o.y - q.x*o.z + q.y*o.real + q.z*o.x,
		z:    q.real*o.z + q.x*o.y - q.y*o.x + q.z*o.real,
	}
}

// GrassmanProduct returns the Hamilton product a·b.
func GrassmanProduct[T Scalar](a, b Quaternion[T]) Quaternion[T] {
	return a.Mul(b)
}

// CrossProduct returns half the commutator, (a·b - b·a) / 2.
// For two pure quaternions this is the vector cross product of their
// imaginary parts, and it is zero exactly when a and b commute.
// For integer T the result is undefined once the products overflow.
func CrossProduct[T Scalar](a, b Quaternion[T]) Quaternion[T] {
	c := a.Mul(b).Sub(b.Mul(a))
	return Quaternion[T]{
		real: half(c.real),
		x:    half(c.x),
		y:    half(c.y),
		z:    half(c.z),
	}
}

// Exchangeable reports whether q and o commute under the Hamilton product.
// Components are compared exactly; see ExchangeableApprox for floats.
func (q Quaternion[T]) Exchangeable(o Quaternion[T]) bool {
	return CrossProduct(q, o).IsZero()
}

// Dot returns the four-dimensional inner product.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.real*o.real + q.x*o.x + q.y*o.y + q.z*o.z
}

// Norm2 returns the squared magnitude.
func (q Quaternion[T]) Norm2() T {
	return q.Dot(q)
}

// Equal reports exact componentwise equality.
func (q Quaternion[T]) Equal(o Quaternion[T]) bool {
	return q == o
}

// IsZero reports whether all components are zero.
func (q Quaternion[T]) IsZero() bool {
	return q.real == 0 && q.x == 0 && q.y == 0 && q.z == 0
}

// String renders the quaternion as (real, x, y, z).
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.real, q.x, q.y, q.z)
}

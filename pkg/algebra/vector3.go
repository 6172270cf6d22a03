package algebra

// Vector3 represents the imaginary part of a quaternion as a 3D vector
type Vector3[T Scalar] struct {
	X, Y, Z T
}

// NewVector3 creates a vector from its components
func NewVector3[T Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Neg returns the vector pointing the opposite way
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns the vector scaled by a scalar
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Array returns the components in x, y, z order
func (v Vector3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// IsZero checks if the vector is zero
func (v Vector3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

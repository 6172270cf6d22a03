package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(-4, 5, 0)

	assert.Equal(t, NewVector3(-3, 7, 3), a.Add(b))
	assert.Equal(t, NewVector3(5, -3, 3), a.Sub(b))
	assert.Equal(t, NewVector3(-1, -2, -3), a.Neg())
	assert.Equal(t, NewVector3(2, 4, 6), a.Scale(2))
	assert.Equal(t, 6, a.Dot(b))
	assert.Equal(t, [3]int{1, 2, 3}, a.Array())
	assert.True(t, Vector3[int]{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestVector3Cross(t *testing.T) {
	x := NewVector3[int64](1, 0, 0)
	y := NewVector3[int64](0, 1, 0)
	z := NewVector3[int64](0, 0, 1)

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, z.Neg(), y.Cross(x))
	assert.Equal(t, x, y.Cross(z))
	assert.True(t, x.Cross(x).IsZero())
}

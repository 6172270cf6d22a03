package algebra_test

import (
	"fmt"

	"github.com/oxygene76/quaternion/pkg/algebra"
)

func ExampleQuaternion_Mul() {
	q1 := algebra.New(1.0, 2.0, 3.0, 4.0)
	q2 := algebra.New(-1.0, -2.0, -3.0, -4.0)

	fmt.Println(q1.Mul(q2))
	fmt.Println(algebra.GrassmanProduct(q1, q2))
	// Output:
	// (28, -4, -6, -8)
	// (28, -4, -6, -8)
}

func ExampleQuaternion_Exchangeable() {
	i := algebra.New(0, 1, 0, 0)
	j := algebra.New(0, 0, 1, 0)

	fmt.Println(i.Exchangeable(j))
	fmt.Println(algebra.CrossProduct(i, j))
	fmt.Println(i.Exchangeable(i.Scale(4)))
	// Output:
	// false
	// (0, 0, 0, 1)
	// true
}

func ExampleAbs() {
	fmt.Println(algebra.Abs(algebra.New(1.0, 1.0, 1.0, 1.0)))
	// Output: 2
}

func ExampleDivElementwise() {
	q := algebra.New(2.0, -4.0, 6.0, 8.0)

	fmt.Println(algebra.DivElementwise(q, -2))
	// Output: (1, -2, 3, 4)
}

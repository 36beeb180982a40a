package quat_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-quat/quat"
)

func ExampleQuat_Mul() {
	i, j := quat.UnitI[float64](), quat.UnitJ[float64]()

	fmt.Println(i.Mul(j), j.Mul(i))
	// Output:
	// k -k
}

func ExampleParse() {
	q, err := quat.Parse[float64]("1 + 2i - 3j + 4k")
	if err != nil {
		fmt.Println("error")
		return
	}

	fmt.Println(quat.FormatString(q, quat.FormatNoSpacing|quat.FormatShowOnes))
	// Output:
	// 1+2i-3j+4k
}

func ExampleSqrt() {
	fmt.Println(quat.Sqrt(quat.FromScalar(-4.0)))
	fmt.Println(quat.Sqrt(quat.New(0.0, 0, 0, 2)))
	// Output:
	// 2i
	// 1 + k
}

func ExampleExp() {
	q := quat.Exp(quat.New(0.0, 0, math.Pi/2, 0))

	fmt.Printf("%.4f %.4f %.4f %.4f\n", q.W, q.X, q.Y, q.Z)
	// Output:
	// 0.0000 0.0000 1.0000 0.0000
}

func ExampleRotateVector() {
	q := quat.FromAxisAngle(quat.Vec3[float64]{0, 0, 1}, math.Pi/3)
	v := quat.RotateVector(q, quat.Vec3[float64]{1, 0, 0})

	fmt.Printf("%.4f %.4f %.4f\n", v[0], v[1], v[2])
	// Output:
	// 0.5000 0.8660 0.0000
}

func ExampleMustParse() {
	q := quat.MustParse[float64]("2 - i")

	fmt.Println(q.Conj(), q.Mul(q.Conj()))
	// Output:
	// 2 + i 5
}

func ExampleSum() {
	a, b := quat.MustParse[float64]("i"), quat.MustParse[float64]("1 + j - i")

	fmt.Println(quat.Sum(quat.Values(a, b)))
	fmt.Println(quat.Ln(quat.Origin[float64]()))
	// Output:
	// 1 + j
	// -Inf
}

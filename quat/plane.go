package quat

import (
	"math"

	"github.com/cwbudde/algo-quat/internal/scalar"
)

// axis is the unit direction of a vector part, stored in float64.
type axis [3]float64

// lift maps q to the complex number w + |v|i in the plane span{1, u} and
// returns the axis u. A zero vector part selects the axis i. The imaginary
// part of the result is never negative.
func lift[T Float](q Quat[T]) (complex128, axis) {
	x, y, z := float64(q.X), float64(q.Y), float64(q.Z)

	r := scalar.Hypot3(x, y, z)
	if r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		if r == 0 {
			return complex(float64(q.W), 0), axis{1, 0, 0}
		}

		return complex(float64(q.W), r), infAxis(x, y, z)
	}

	return complex(float64(q.W), r), axis{x / r, y / r, z / r}
}

// infAxis picks a direction for vector parts whose length overflowed or
// is NaN.
func infAxis(x, y, z float64) axis {
	u := axis{infSign(x), infSign(y), infSign(z)}

	n := scalar.Hypot3(u[0], u[1], u[2])
	if n == 0 || math.IsNaN(n) {
		return axis{math.NaN(), math.NaN(), math.NaN()}
	}

	return axis{u[0] / n, u[1] / n, u[2] / n}
}

func infSign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(x, 1):
		return 1
	case math.IsInf(x, -1):
		return -1
	default:
		return 0
	}
}

// lower maps the complex number c = a + bi of span{1, u} back to the
// quaternion a + b*u. Components orthogonal to u stay zero even when b is
// infinite.
func lower[T Float](c complex128, u axis) Quat[T] {
	a, b := real(c), imag(c)

	var v [3]T
	for i, ui := range u {
		if ui != 0 {
			v[i] = T(b * ui)
		}
	}

	return Quat[T]{T(a), v[0], v[1], v[2]}
}

// inPlane applies f to q seen as a complex number in its own plane.
func inPlane[T Float](q Quat[T], f func(complex128) complex128) Quat[T] {
	c, u := lift(q)
	return lower[T](f(c), u)
}

func cabs(c complex128) float64 { return math.Hypot(real(c), imag(c)) }

func cexp(c complex128) complex128 {
	e := scalar.Exp(real(c))
	if imag(c) == 0 {
		return complex(e, imag(c))
	}

	s, co := scalar.SinCos(imag(c))

	return complex(e*co, e*s)
}

// clog is the principal logarithm. log(0) is -Inf.
func clog(c complex128) complex128 {
	return complex(scalar.Log(cabs(c)), math.Atan2(imag(c), real(c)))
}

// csqrt is the principal square root with the branch cut along the
// negative real axis; the sign of a zero imaginary part picks the side.
func csqrt(c complex128) complex128 {
	a, b := real(c), imag(c)

	switch {
	case a == 0 && b == 0:
		return complex(0, b)
	case math.IsInf(b, 0):
		return complex(math.Inf(1), b)
	case math.IsNaN(a) || math.IsNaN(b):
		return complex(math.NaN(), math.NaN())
	case b == 0:
		if a > 0 {
			return complex(scalar.Sqrt(a), b)
		}

		return complex(0, math.Copysign(scalar.Sqrt(-a), b))
	}

	t := scalar.Sqrt((cabs(c) + math.Abs(a)) / 2)
	if a >= 0 {
		return complex(t, b/(2*t))
	}

	return complex(math.Abs(b)/(2*t), math.Copysign(t, b))
}

// crecip returns 1/c, with 1/0 mapped to +Inf on the real axis. Real
// arguments keep the sign of their zero imaginary part.
func crecip(c complex128) complex128 {
	switch {
	case c == 0:
		return complex(math.Inf(1), 0)
	case imag(c) == 0:
		return complex(1/real(c), imag(c))
	}

	return 1 / c
}

package quat

import (
	"math"

	"github.com/cwbudde/algo-quat/internal/scalar"
)

// Sin returns sin w cosh|v| + u cos w sinh|v|.
func Sin[T Float](q Quat[T]) Quat[T] { return inPlane(q, csin) }

// Cos returns cos w cosh|v| - u sin w sinh|v|.
func Cos[T Float](q Quat[T]) Quat[T] { return inPlane(q, ccos) }

// SinCos returns Sin(q) and Cos(q), sharing the decomposition of q.
func SinCos[T Float](q Quat[T]) (sin, cos Quat[T]) {
	c, u := lift(q)
	return lower[T](csin(c), u), lower[T](ccos(c), u)
}

// Tan returns Sin(q)/Cos(q).
func Tan[T Float](q Quat[T]) Quat[T] { return inPlane(q, ctan) }

// Cot returns Cos(q)/Sin(q).
func Cot[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 { return crecip(ctan(c)) })
}

// Sec returns 1/Cos(q).
func Sec[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 { return crecip(ccos(c)) })
}

// Csc returns 1/Sin(q).
func Csc[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 { return crecip(csin(c)) })
}

// Sinh returns sinh w cos|v| + u cosh w sin|v|.
func Sinh[T Float](q Quat[T]) Quat[T] { return inPlane(q, csinh) }

// Cosh returns cosh w cos|v| + u sinh w sin|v|.
func Cosh[T Float](q Quat[T]) Quat[T] { return inPlane(q, ccosh) }

// Tanh returns Sinh(q)/Cosh(q).
func Tanh[T Float](q Quat[T]) Quat[T] { return inPlane(q, ctanh) }

// Coth returns Cosh(q)/Sinh(q).
func Coth[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 { return crecip(ctanh(c)) })
}

// Sech returns 1/Cosh(q).
func Sech[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 { return crecip(ccosh(c)) })
}

// Csch returns 1/Sinh(q).
func Csch[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 { return crecip(csinh(c)) })
}

func csin(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Sin(a), b)
	}

	s, co := scalar.SinCos(a)

	return complex(s*scalar.Cosh(b), co*scalar.Sinh(b))
}

func ccos(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Cos(a), -b)
	}

	s, co := scalar.SinCos(a)

	return complex(co*scalar.Cosh(b), -s*scalar.Sinh(b))
}

func csinh(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Sinh(a), b)
	}

	s, co := scalar.SinCos(b)

	return complex(scalar.Sinh(a)*co, scalar.Cosh(a)*s)
}

func ccosh(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Cosh(a), b)
	}

	s, co := scalar.SinCos(b)

	return complex(scalar.Cosh(a)*co, scalar.Sinh(a)*s)
}

// tanLarge bounds the imaginary part beyond which tan has converged to ±i
// to double precision and cosh would overflow soon after.
const tanLarge = 20

// ctan evaluates (sin 2a + i sinh 2b) / (cos 2a + cosh 2b).
func ctan(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Tan(a), b)
	}

	s2, c2 := scalar.SinCos(2 * a)
	if math.Abs(b) > tanLarge {
		return complex(2*s2*scalar.Exp(-2*math.Abs(b)), math.Copysign(1, b))
	}

	d := c2 + scalar.Cosh(2*b)

	return complex(s2/d, scalar.Sinh(2*b)/d)
}

// ctanh evaluates (sinh 2a + i sin 2b) / (cosh 2a + cos 2b).
func ctanh(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Tanh(a), b)
	}

	s2, c2 := scalar.SinCos(2 * b)
	if math.Abs(a) > tanLarge {
		return complex(math.Copysign(1, a), 2*s2*scalar.Exp(-2*math.Abs(a)))
	}

	d := scalar.Cosh(2*a) + c2

	return complex(scalar.Sinh(2*a)/d, s2/d)
}

// Package scalar provides the real-valued kernels shared by the quaternion
// packages. Every function is generic over float32 and float64 and computes
// in float64 internally.
//
// The exponential and logarithm kernels come in two flavours selected at
// build time: the default uses the standard library, the fastmath build
// tag switches to the approximations from algo-approx. Sqrt is exact in
// both builds since norms and renormalization are built on it.
package scalar

import (
	"math"
	"unsafe"
)

// Float is the set of scalar fields a quaternion can be built over.
type Float interface {
	~float32 | ~float64
}

// Tolerance is 2^-16, the comparison threshold used by the approximate
// relations of both widths.
const Tolerance = 1.0 / 65536

// Is32 reports whether T is a 32-bit float type.
func Is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// NaN returns an IEEE 754 not-a-number of type T.
func NaN[T Float]() T { return T(math.NaN()) }

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[T Float](sign int) T { return T(math.Inf(sign)) }

// IsNaN reports whether x is not-a-number.
func IsNaN[T Float](x T) bool { return x != x }

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool { return math.IsInf(float64(x), 0) }

// Abs returns |x|.
func Abs[T Float](x T) T { return T(math.Abs(float64(x))) }

// Sqrt returns sqrt(x).
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Sin returns sin(x).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns cos(x).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// SinCos returns sin(x) and cos(x).
func SinCos[T Float](x T) (T, T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Sinh returns sinh(x).
func Sinh[T Float](x T) T { return T(math.Sinh(float64(x))) }

// Cosh returns cosh(x).
func Cosh[T Float](x T) T { return T(math.Cosh(float64(x))) }

// Asin returns asin(x).
func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

// Acos returns acos(x), clamping x into [-1, 1] first so rounding noise
// on normalized inputs does not produce NaN.
func Acos[T Float](x T) T {
	v := float64(x)
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	return T(math.Acos(v))
}

// Atan2 returns atan2(y, x).
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Pow returns x**y.
func Pow[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Hypot3 returns sqrt(x*x + y*y + z*z) without undue overflow.
func Hypot3[T Float](x, y, z T) T {
	return T(math.Hypot(math.Hypot(float64(x), float64(y)), float64(z)))
}

// Hypot4 returns sqrt(w*w + x*x + y*y + z*z) without undue overflow.
func Hypot4[T Float](w, x, y, z T) T {
	return T(math.Hypot(math.Hypot(float64(w), float64(x)), math.Hypot(float64(y), float64(z))))
}

// Atan returns atan(x).
func Atan[T Float](x T) T { return T(math.Atan(float64(x))) }

// Asinh returns asinh(x).
func Asinh[T Float](x T) T { return T(math.Asinh(float64(x))) }

// Acosh returns acosh(x).
func Acosh[T Float](x T) T { return T(math.Acosh(float64(x))) }

// Atanh returns atanh(x).
func Atanh[T Float](x T) T { return T(math.Atanh(float64(x))) }

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign[T Float](x, y T) T { return T(math.Copysign(float64(x), float64(y))) }

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if Is32[T]() {
		return T(0x1p-23)
	}

	return T(0x1p-52)
}

// Tan returns tan(x).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// Tanh returns tanh(x).
func Tanh[T Float](x T) T { return T(math.Tanh(float64(x))) }

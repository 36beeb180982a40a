package quat

import (
	"math"

	"github.com/cwbudde/algo-quat/internal/scalar"
)

// Exp returns e^q = e^w (cos|v| + u sin|v|).
func Exp[T Float](q Quat[T]) Quat[T] { return inPlane(q, cexp) }

// Ln returns the principal natural logarithm ln|q| + u acos(w/|q|).
// Ln(0) is -Inf. A negative real number r maps to ln|r| + πi.
func Ln[T Float](q Quat[T]) Quat[T] { return inPlane(q, clog) }

// Log returns the logarithm of q to the given base, Ln(q) * inv(Ln(base)).
func Log[T Float](base, q Quat[T]) Quat[T] {
	return Ln(q).Mul(Ln(base).Inv())
}

// Sqrt returns the principal square root. Sqrt(0) is 0 and a negative real
// number r maps to sqrt(|r|) i.
func Sqrt[T Float](q Quat[T]) Quat[T] { return inPlane(q, csqrt) }

// PowU returns q^n by binary exponentiation. q^0 is the identity.
func PowU[T Float](q Quat[T], n uint) Quat[T] {
	acc := Identity[T]()

	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(q)
		}

		n >>= 1
		if n > 0 {
			q = q.Square()
		}
	}

	return acc
}

// PowI returns q^n. Negative exponents invert q first, so zero raised to a
// negative power is NaN.
func PowI[T Float](q Quat[T], n int) Quat[T] {
	if n >= 0 {
		return PowU(q, uint(n))
	}

	if q.IsZero() {
		return NaN[T]()
	}

	return PowU(q.Inv(), uint(-(n+1))+1)
}

// PowF returns q^s = |q|^s (cos sθ + u sin sθ) where θ is the angle of q
// in its plane. For q = 0 the result is 0 when s > 0, the identity when
// s = 0 and NaN otherwise.
func PowF[T Float](q Quat[T], s T) Quat[T] {
	if q.IsZero() {
		switch {
		case s > 0:
			return Quat[T]{}
		case s == 0:
			return Identity[T]()
		default:
			return NaN[T]()
		}
	}

	e := float64(s)

	return inPlane(q, func(c complex128) complex128 {
		r := scalar.Pow(cabs(c), e)
		if imag(c) == 0 && real(c) > 0 {
			return complex(r, imag(c))
		}

		sn, cs := scalar.SinCos(e * math.Atan2(imag(c), real(c)))

		return complex(r*cs, r*sn)
	})
}

// PowQ returns q^p = Exp(Ln(q) * p). For q = 0 the result is 0 when p is a
// positive real number and NaN otherwise.
func PowQ[T Float](q, p Quat[T]) Quat[T] {
	if q.IsZero() {
		if p.IsScalar() && p.W > 0 {
			return Quat[T]{}
		}

		return NaN[T]()
	}

	return Exp(Ln(q).Mul(p))
}

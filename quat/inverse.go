package quat

import (
	"math"

	"github.com/cwbudde/algo-quat/internal/scalar"
)

// The inverse functions follow the principal branches of math/cmplx. The
// lifted argument never has a negative imaginary part, so values on a
// branch cut take the limit from the side of the axis u.

// Asin returns the principal inverse sine -u ln(u q + sqrt(1 - q^2)).
func Asin[T Float](q Quat[T]) Quat[T] { return inPlane(q, casin) }

// Acos returns the principal inverse cosine π/2 - Asin(q).
func Acos[T Float](q Quat[T]) Quat[T] { return inPlane(q, cacos) }

// Atan returns the principal inverse tangent (u/2) ln((u + q)/(u - q)).
func Atan[T Float](q Quat[T]) Quat[T] { return inPlane(q, catan) }

// Acot returns Atan(inv(q)). Acot(0) is π/2.
func Acot[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 {
		if c == 0 {
			return complex(math.Pi/2, 0)
		}

		return catan(crecip(c))
	})
}

// Asec returns Acos(inv(q)). Asec(0) is NaN.
func Asec[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 {
		if c == 0 {
			return complex(math.NaN(), math.NaN())
		}

		return cacos(crecip(c))
	})
}

// Acsc returns Asin(inv(q)). Acsc(0) is NaN.
func Acsc[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 {
		if c == 0 {
			return complex(math.NaN(), math.NaN())
		}

		return casin(crecip(c))
	})
}

// Asinh returns the principal inverse hyperbolic sine ln(q + sqrt(q^2 + 1)).
func Asinh[T Float](q Quat[T]) Quat[T] { return inPlane(q, casinh) }

// Acosh returns the principal inverse hyperbolic cosine
// ln(q + sqrt(q + 1) sqrt(q - 1)).
func Acosh[T Float](q Quat[T]) Quat[T] { return inPlane(q, cacosh) }

// Atanh returns the principal inverse hyperbolic tangent
// ln((1 + q)/(1 - q)) / 2. Atanh(±1) is ±Inf.
func Atanh[T Float](q Quat[T]) Quat[T] { return inPlane(q, catanh) }

// Acoth returns Atanh(inv(q)). Acoth(0) is uπ/2.
func Acoth[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 {
		if c == 0 {
			return complex(0, math.Pi/2)
		}

		return catanh(crecip(c))
	})
}

// Asech returns Acosh(inv(q)). Asech(0) is +Inf.
func Asech[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 {
		if c == 0 {
			return complex(math.Inf(1), 0)
		}

		return cacosh(crecip(c))
	})
}

// Acsch returns Asinh(inv(q)). Acsch(0) is +Inf.
func Acsch[T Float](q Quat[T]) Quat[T] {
	return inPlane(q, func(c complex128) complex128 {
		if c == 0 {
			return complex(math.Inf(1), 0)
		}

		return casinh(crecip(c))
	})
}

func casin(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 && math.Abs(a) <= 1 {
		return complex(scalar.Asin(a), b)
	}

	cc := c * c
	root := csqrt(complex(1-real(cc), -imag(cc)))
	w := clog(complex(-b, a) + root)

	return complex(imag(w), -real(w))
}

func cacos(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 && math.Abs(a) <= 1 {
		return complex(scalar.Acos(a), -b)
	}

	w := casin(c)

	return complex(math.Pi/2-real(w), -imag(w))
}

// catan uses the closed form
// re = atan2(2a, 1 - a² - b²)/2, im = ln((a² + (b+1)²)/(a² + (b-1)²))/4.
func catan(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Atan(a), b)
	}

	a2 := a * a
	re := 0.5 * math.Atan2(2*a, 1-a2-b*b)
	num := a2 + (b+1)*(b+1)
	den := a2 + (b-1)*(b-1)

	return complex(re, 0.25*scalar.Log(num/den))
}

func casinh(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 {
		return complex(scalar.Asinh(a), b)
	}

	// Odd symmetry keeps z + sqrt(z² + 1) away from cancellation.
	if a < 0 {
		return -casinh(-c)
	}

	cc := c * c
	root := csqrt(complex(1+real(cc), imag(cc)))

	return clog(c + root)
}

func cacosh(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 && a >= 1 {
		return complex(scalar.Acosh(a), b)
	}

	p := csqrt(complex(a+1, b))
	m := csqrt(complex(a-1, b))

	return clog(c + p*m)
}

// catanh uses the closed form
// re = ln(((1+a)² + b²)/((1-a)² + b²))/4, im = atan2(2b, 1 - a² - b²)/2.
func catanh(c complex128) complex128 {
	a, b := real(c), imag(c)
	if b == 0 && math.Abs(a) < 1 {
		return complex(scalar.Atanh(a), b)
	}

	b2 := b * b
	num := (1+a)*(1+a) + b2
	den := (1-a)*(1-a) + b2

	return complex(0.25*scalar.Log(num/den), 0.5*math.Atan2(2*b, 1-a*a-b2))
}

package quat

import (
	"math"
)

// lanczosG and lanczosCoef are the g = 7, n = 9 Lanczos parameters.
const lanczosG = 7

var lanczosCoef = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Gamma returns the gamma function of q, continued into the plane of q.
// On the real axis it matches math.Gamma, including its poles.
func Gamma[T Float](q Quat[T]) Quat[T] { return inPlane(q, cgamma) }

// LnGamma returns the logarithm of Gamma(q). On the real axis the result
// is ln|Γ(w)|, plus πu where Γ(w) is negative.
func LnGamma[T Float](q Quat[T]) Quat[T] { return inPlane(q, clngamma) }

func cgamma(z complex128) complex128 {
	if imag(z) == 0 {
		return complex(math.Gamma(real(z)), imag(z))
	}

	if real(z) < 0.5 {
		// Reflection: Γ(z)Γ(1-z) = π / sin(πz).
		return complex(math.Pi, 0) / (csin(math.Pi*z) * cgamma(1-z))
	}

	t, x := lanczosSum(z - 1)

	return complex(math.Sqrt(2*math.Pi), 0) * cexp((z-0.5)*clog(t)-t) * x
}

func clngamma(z complex128) complex128 {
	if imag(z) == 0 {
		lg, sign := math.Lgamma(real(z))
		if sign < 0 {
			return complex(lg, math.Pi)
		}

		return complex(lg, imag(z))
	}

	if real(z) < 0.5 {
		return complex(math.Log(math.Pi), 0) - clog(csin(math.Pi*z)) - clngamma(1-z)
	}

	t, x := lanczosSum(z - 1)

	return complex(0.5*math.Log(2*math.Pi), 0) + (z-0.5)*clog(t) - t + clog(x)
}

// lanczosSum returns t = z + g + 1/2 and the series A_g(z).
func lanczosSum(z complex128) (t, x complex128) {
	x = complex(lanczosCoef[0], 0)
	for i := 1; i < len(lanczosCoef); i++ {
		x += complex(lanczosCoef[i], 0) / (z + complex(float64(i), 0))
	}

	return z + lanczosG + 0.5, x
}

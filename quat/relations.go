package quat

import (
	"github.com/cwbudde/algo-quat/internal/scalar"
)

// Eq reports whether all components are exactly equal.
func (q Quat[T]) Eq(o Quat[T]) bool { return q == o }

// IsZero reports whether q is exactly zero. Negative zeros count as zero.
func (q Quat[T]) IsZero() bool {
	return q.W == 0 && q.X == 0 && q.Y == 0 && q.Z == 0
}

// IsScalar reports whether the vector part is zero.
func (q Quat[T]) IsScalar() bool { return q.X == 0 && q.Y == 0 && q.Z == 0 }

// IsComplex reports whether the j and k parts are zero.
func (q Quat[T]) IsComplex() bool { return q.Y == 0 && q.Z == 0 }

// IsVector reports whether the real part is zero.
func (q Quat[T]) IsVector() bool { return q.W == 0 }

// IsOnAxisPlane reports whether at least two components are zero, that is,
// q lies in a plane spanned by two of the basis elements 1, i, j and k.
func (q Quat[T]) IsOnAxisPlane() bool {
	zeros := 0

	for _, c := range [4]T{q.W, q.X, q.Y, q.Z} {
		if c == 0 {
			zeros++
		}
	}

	return zeros >= 2
}

// IsNaN reports whether any component is NaN.
func (q Quat[T]) IsNaN() bool {
	return scalar.IsNaN(q.W) || scalar.IsNaN(q.X) || scalar.IsNaN(q.Y) || scalar.IsNaN(q.Z)
}

// IsInf reports whether any component is infinite.
func (q Quat[T]) IsInf() bool {
	return scalar.IsInf(q.W) || scalar.IsInf(q.X) || scalar.IsInf(q.Y) || scalar.IsInf(q.Z)
}

// IsNear reports whether |q - o| is below Tolerance.
func (q Quat[T]) IsNear(o Quat[T]) bool { return q.IsNearBy(o, Tolerance[T]()) }

// IsNearBy reports whether |q - o| is below tol.
func (q Quat[T]) IsNearBy(o Quat[T], tol T) bool {
	return q.DistEuclid(o) < tol
}

// IsClose reports whether q and o have nearly the same length and
// direction, using Tolerance for both.
func (q Quat[T]) IsClose(o Quat[T]) bool { return q.IsCloseBy(o, Tolerance[T]()) }

// IsCloseBy reports whether q and o agree in length up to a relative error
// of tol and point in directions whose cosine distance is below tol.
// Two zero quaternions are close; zero is close to nothing else.
func (q Quat[T]) IsCloseBy(o Quat[T], tol T) bool {
	a, b := q.Abs(), o.Abs()
	if a == 0 || b == 0 {
		return a == b
	}

	m := max(a, b)
	if scalar.Abs(a-b) >= tol*m {
		return false
	}

	return q.DistCosine(o) < tol
}

// IsNormalized reports whether |q|^2 is within Tolerance of one.
func (q Quat[T]) IsNormalized() bool {
	return scalar.Abs(q.AbsSquared()-1) < Tolerance[T]()
}

package quat

import (
	"github.com/cwbudde/algo-quat/internal/scalar"
)

// Add returns q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

// Sub returns q - o.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{q.W - o.W, q.X - o.X, q.Y - o.Y, q.Z - o.Z}
}

// Mul returns the Hamilton product q*o. Quaternion multiplication does not
// commute.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// MulReversed returns o*q.
func (q Quat[T]) MulReversed(o Quat[T]) Quat[T] { return o.Mul(q) }

// Div returns q * inv(o).
func (q Quat[T]) Div(o Quat[T]) Quat[T] { return q.Mul(o.Inv()) }

// DivReversed returns inv(q) * o.
func (q Quat[T]) DivReversed(o Quat[T]) Quat[T] { return q.Inv().Mul(o) }

// Neg returns -q.
func (q Quat[T]) Neg() Quat[T] { return Quat[T]{-q.W, -q.X, -q.Y, -q.Z} }

// Conj returns the conjugate w - xi - yj - zk.
func (q Quat[T]) Conj() Quat[T] { return Quat[T]{q.W, -q.X, -q.Y, -q.Z} }

// Scale multiplies every component by s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Unscale divides every component by s.
func (q Quat[T]) Unscale(s T) Quat[T] {
	return Quat[T]{q.W / s, q.X / s, q.Y / s, q.Z / s}
}

// Square returns q*q.
func (q Quat[T]) Square() Quat[T] {
	w2 := q.W + q.W

	return Quat[T]{q.W*q.W - q.X*q.X - q.Y*q.Y - q.Z*q.Z, w2 * q.X, w2 * q.Y, w2 * q.Z}
}

// Dot returns the four dimensional dot product.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// AbsSquared returns |q|^2.
func (q Quat[T]) AbsSquared() T { return q.Dot(q) }

// Abs returns the Euclidean norm |q|.
func (q Quat[T]) Abs() T { return scalar.Sqrt(q.AbsSquared()) }

// AbsSmall returns |q| computed with rescaling, so components near the
// underflow or overflow thresholds still give an accurate result.
func (q Quat[T]) AbsSmall() T { return scalar.Hypot4(q.W, q.X, q.Y, q.Z) }

// Norm returns q/|q|. The zero quaternion is returned unchanged.
func (q Quat[T]) Norm() Quat[T] {
	a := q.AbsSmall()
	if a == 0 {
		return q
	}

	return q.Unscale(a)
}

// Inv returns the multiplicative inverse conj(q)/|q|^2. The inverse of
// zero is NaN. |q| is divided out twice so that |q|^2 never overflows or
// underflows on its own.
func (q Quat[T]) Inv() Quat[T] {
	a := q.AbsSmall()
	if a == 0 {
		return NaN[T]()
	}

	return q.Conj().Unscale(a).Unscale(a)
}

// Angle returns acos(w/|q|), the angle between q and the real axis.
func (q Quat[T]) Angle() T { return scalar.Acos(q.AngleCos()) }

// AngleCos returns w/|q|.
func (q Quat[T]) AngleCos() T { return q.W / q.Abs() }

// AngleBetween returns the four dimensional angle between q and o.
func (q Quat[T]) AngleBetween(o Quat[T]) T { return scalar.Acos(q.AngleBetweenCos(o)) }

// AngleBetweenCos returns the cosine of the angle between q and o.
func (q Quat[T]) AngleBetweenCos(o Quat[T]) T {
	return q.Dot(o) / (q.Abs() * o.Abs())
}

// DistEuclid returns |q - o|.
func (q Quat[T]) DistEuclid(o Quat[T]) T { return q.Sub(o).Abs() }

// DistCosine returns 1 - cos of the angle between q and o.
func (q Quat[T]) DistCosine(o Quat[T]) T { return 1 - q.AngleBetweenCos(o) }

// VectorPart returns xi + yj + zk.
func (q Quat[T]) VectorPart() Quat[T] { return Quat[T]{0, q.X, q.Y, q.Z} }

// ComplexPart returns w + xi.
func (q Quat[T]) ComplexPart() Quat[T] { return Quat[T]{W: q.W, X: q.X} }

// ScalarPart returns w as a quaternion.
func (q Quat[T]) ScalarPart() Quat[T] { return Quat[T]{W: q.W} }

// Vector returns the vector part as a Vec3.
func (q Quat[T]) Vector() Vec3[T] { return Vec3[T]{q.X, q.Y, q.Z} }

// ToVector returns the vector part, discarding w.
func ToVector[T Float](q Quaternion[T]) Vec3[T] {
	return Vec3[T]{q.I(), q.J(), q.K()}
}

// ToComplex returns w + xi, discarding the j and k parts.
func ToComplex[T Float](q Quaternion[T]) Cplx[T] {
	return Cplx[T]{q.R(), q.I()}
}

// ToScalar returns the real part.
func ToScalar[T Float](q Quaternion[T]) T { return q.R() }

// Package unit provides quaternions of length one.
//
// A [Quat] can only be obtained from a checked or normalizing constructor,
// and every operation on it either preserves the unit length or widens the
// result to a general [quat.Quat]. Results are renormalized so that rounding
// does not accumulate over long chains of rotations.
package unit

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-quat/quat"
)

var (
	// ErrNotUnit is returned by New for quaternions whose length is not one.
	ErrNotUnit = errors.New("unit: quaternion is not of unit length")
	// ErrZero is returned by Normalize for the zero quaternion.
	ErrZero = errors.New("unit: zero quaternion has no direction")
)

// Quat is a unit quaternion.
type Quat[T quat.Float] struct {
	q quat.Quat[T]
}

// New returns q as a unit quaternion. It fails with ErrNotUnit when |q|²
// differs from one by more than quat.Tolerance.
func New[T quat.Float](q quat.Quaternion[T]) (Quat[T], error) {
	v := quat.From(q)
	if !v.IsNormalized() {
		return Quat[T]{}, fmt.Errorf("%w: |q|² = %g", ErrNotUnit, float64(v.AbsSquared()))
	}

	return Quat[T]{v.Norm()}, nil
}

// Normalize returns q/|q|. It fails with ErrZero for zero q and with
// ErrNotUnit when q has non-finite components.
func Normalize[T quat.Float](q quat.Quaternion[T]) (Quat[T], error) {
	v := quat.From(q)

	switch {
	case v.IsZero():
		return Quat[T]{}, ErrZero
	case v.IsNaN() || v.IsInf():
		return Quat[T]{}, fmt.Errorf("%w: %v", ErrNotUnit, v)
	}

	return Quat[T]{v.Norm()}, nil
}

// Identity returns the unit quaternion 1.
func Identity[T quat.Float]() Quat[T] { return Quat[T]{quat.Identity[T]()} }

// FromAxisAngle returns the rotation by angle radians about axis. A zero
// axis gives the identity.
func FromAxisAngle[T quat.Float](axis quat.Vector[T], angle T) Quat[T] {
	return Quat[T]{quat.FromAxisAngle(axis, angle)}
}

// FromTo returns the shortest rotation taking the direction of from to the
// direction of to.
func FromTo[T quat.Float](from, to quat.Vector[T]) Quat[T] {
	return Quat[T]{quat.RotationFromTo(from, to)}
}

// Exp returns e^v for the pure vector v, which always has unit length.
func Exp[T quat.Float](v quat.Vector[T]) Quat[T] {
	return Quat[T]{quat.Exp(quat.FromVector(v)).Norm()}
}

// Slerp interpolates along the shorter great arc from a to b.
func Slerp[T quat.Float](a, b Quat[T], t T) Quat[T] {
	return Quat[T]{quat.Slerp(a.q, b.q, t).Norm()}
}

func (u Quat[T]) R() T { return u.q.W }
func (u Quat[T]) I() T { return u.q.X }
func (u Quat[T]) J() T { return u.q.Y }
func (u Quat[T]) K() T { return u.q.Z }

// Quat returns u as a general quaternion.
func (u Quat[T]) Quat() quat.Quat[T] { return u.q }

// String renders u in the default quat format.
func (u Quat[T]) String() string { return u.q.String() }

// Mul returns the Hamilton product u*o, the rotation o followed by u.
func (u Quat[T]) Mul(o Quat[T]) Quat[T] { return Quat[T]{u.q.Mul(o.q).Norm()} }

// MulReversed returns o*u.
func (u Quat[T]) MulReversed(o Quat[T]) Quat[T] { return o.Mul(u) }

// Div returns u*conj(o), which equals u*inv(o) for unit o.
func (u Quat[T]) Div(o Quat[T]) Quat[T] { return Quat[T]{u.q.Mul(o.q.Conj()).Norm()} }

// Neg returns -u, which describes the same rotation as u.
func (u Quat[T]) Neg() Quat[T] { return Quat[T]{u.q.Neg()} }

// Conj returns the conjugate of u.
func (u Quat[T]) Conj() Quat[T] { return Quat[T]{u.q.Conj()} }

// Inv returns the inverse of u, which is its conjugate.
func (u Quat[T]) Inv() Quat[T] { return u.Conj() }

// Dot returns the four-dimensional dot product, the cosine of half the
// angle between the rotations u and o.
func (u Quat[T]) Dot(o Quat[T]) T { return u.q.Dot(o.q) }

// Ln returns the logarithm of u, a pure vector of length half the
// rotation angle.
func (u Quat[T]) Ln() quat.Vec3[T] { return quat.Ln(u.q).Vector() }

// Sqrt returns the principal square root, the rotation by half the angle
// about the same axis.
func (u Quat[T]) Sqrt() Quat[T] { return Quat[T]{quat.Sqrt(u.q).Norm()} }

// Pow returns u^t, the rotation scaled to t times the angle.
func (u Quat[T]) Pow(t T) Quat[T] { return Quat[T]{quat.PowF(u.q, t).Norm()} }

// Rotate returns the vector v rotated by u.
func (u Quat[T]) Rotate(v quat.Vector[T]) quat.Vec3[T] { return quat.RotateVector(u.q, v) }

// AxisAngle returns the rotation axis and angle of u. The identity reports
// a zero axis.
func (u Quat[T]) AxisAngle() (quat.Vec3[T], T) { return quat.ToAxisAngle(u.q) }

// Euler returns the Z-Y-X Euler angles of u.
func (u Quat[T]) Euler() quat.Euler[T] { return quat.ToEuler(u.q) }

// Matrix returns the 3x3 rotation matrix of u.
func (u Quat[T]) Matrix() quat.Mat3[T] { return quat.ToMatrix3(u.q) }

// AddAny returns u + o as a general quaternion; the sum of unit
// quaternions is not of unit length in general.
func (u Quat[T]) AddAny(o quat.Quaternion[T]) quat.Quat[T] { return u.q.Add(quat.From(o)) }

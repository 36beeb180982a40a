package quat

import (
	"github.com/cwbudde/algo-quat/internal/scalar"
)

// FromAxisAngle returns the rotation by angle radians about axis. The axis
// is normalized first; a zero axis gives the identity.
func FromAxisAngle[T Float](axis Vector[T], angle T) Quat[T] {
	x, y, z := axis.X(), axis.Y(), axis.Z()

	n := scalar.Hypot3(x, y, z)
	if n == 0 {
		return Identity[T]()
	}

	return FromAxisAngleUnchecked(Vec3[T]{x / n, y / n, z / n}, angle)
}

// FromAxisAngleUnchecked is FromAxisAngle for an axis already known to be
// of unit length.
func FromAxisAngleUnchecked[T Float](axis Vector[T], angle T) Quat[T] {
	s, c := scalar.SinCos(angle / 2)

	return Quat[T]{c, axis.X() * s, axis.Y() * s, axis.Z() * s}
}

// FromAxisAngleChecked is FromAxisAngleUnchecked that returns
// ErrNotNormalized when axis is not of unit length.
func FromAxisAngleChecked[T Float](axis Vector[T], angle T) (Quat[T], error) {
	if !isUnitVector(axis) {
		return Quat[T]{}, ErrNotNormalized
	}

	return FromAxisAngleUnchecked(axis, angle), nil
}

// ToAxisAngle returns the axis and angle of the rotation described by q.
// The angle is 2 atan2(|v|, w) and lies in [0, 2π] for unit q. A zero
// vector part gives a zero axis and a zero angle.
func ToAxisAngle[T Float](q Quat[T]) (Vec3[T], T) {
	r := scalar.Hypot3(q.X, q.Y, q.Z)
	if r == 0 {
		return Vec3[T]{}, 0
	}

	return Vec3[T]{q.X / r, q.Y / r, q.Z / r}, 2 * scalar.Atan2(r, q.W)
}

// RotateVector returns q v conj(q), the rotation of v by the unit
// quaternion q.
func RotateVector[T Float](q Quat[T], v Vector[T]) Vec3[T] {
	vx, vy, vz := v.X(), v.Y(), v.Z()

	// t = 2 (qv × v); v' = v + w t + qv × t
	tx := 2 * (q.Y*vz - q.Z*vy)
	ty := 2 * (q.Z*vx - q.X*vz)
	tz := 2 * (q.X*vy - q.Y*vx)

	return Vec3[T]{
		vx + q.W*tx + q.Y*tz - q.Z*ty,
		vy + q.W*ty + q.Z*tx - q.X*tz,
		vz + q.W*tz + q.X*ty - q.Y*tx,
	}
}

// PointRotation rotates v by q, normalizing q first.
func PointRotation[T Float](q Quat[T], v Vector[T]) Vec3[T] {
	return RotateVector(q.Norm(), v)
}

// PointRotationChecked rotates v by q and returns ErrNotNormalized when q
// is not a unit quaternion.
func PointRotationChecked[T Float](q Quat[T], v Vector[T]) (Vec3[T], error) {
	if !q.IsNormalized() {
		return Vec3[T]{}, ErrNotNormalized
	}

	return RotateVector(q, v), nil
}

// FrameRotation returns conj(q) v q: the coordinates of v in the frame
// rotated by q. q is normalized first.
func FrameRotation[T Float](q Quat[T], v Vector[T]) Vec3[T] {
	return RotateVector(q.Norm().Conj(), v)
}

// FrameRotationChecked is FrameRotation that returns ErrNotNormalized
// when q is not a unit quaternion.
func FrameRotationChecked[T Float](q Quat[T], v Vector[T]) (Vec3[T], error) {
	if !q.IsNormalized() {
		return Vec3[T]{}, ErrNotNormalized
	}

	return RotateVector(q.Conj(), v), nil
}

// RotationFromTo returns the shortest-arc unit quaternion that rotates the
// direction of from onto the direction of to. Antiparallel vectors give a
// half turn about an axis orthogonal to from. A zero vector gives the
// identity.
func RotationFromTo[T Float](from, to Vector[T]) Quat[T] {
	a, okA := unitVec(from)
	b, okB := unitVec(to)

	if !okA || !okB {
		return Identity[T]()
	}

	// With h = a + b, 1 + a·b = |h|²/2 and a×b = a×h. Both stay accurate
	// when a and b are nearly opposite and h is small.
	h := Vec3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
	if scalar.Hypot3(h[0], h[1], h[2]) < 64*scalar.Epsilon[T]() {
		o := cross(a, Vec3[T]{1, 0, 0})
		if scalar.Hypot3(o[0], o[1], o[2]) < Tolerance[T]() {
			o = cross(a, Vec3[T]{0, 1, 0})
		}

		o, _ = unitVec[T](o)

		return Quat[T]{0, o[0], o[1], o[2]}
	}

	c := cross(a, h)
	w := (h[0]*h[0] + h[1]*h[1] + h[2]*h[2]) / 2

	return Quat[T]{w, c[0], c[1], c[2]}.Norm()
}

// Slerp interpolates along the shorter great arc between the unit
// quaternions a and b. t = 0 gives a and t = 1 gives b or -b.
func Slerp[T Float](a, b Quat[T], t T) Quat[T] {
	d := a.Dot(b)
	if d < 0 {
		b = b.Neg()
		d = -d
	}

	if d > 1-Tolerance[T]() {
		return Nlerp(a, b, t)
	}

	theta := scalar.Acos(d)
	s := scalar.Sin(theta)
	wa := scalar.Sin((1-t)*theta) / s
	wb := scalar.Sin(t*theta) / s

	return a.Scale(wa).Add(b.Scale(wb))
}

// Nlerp interpolates linearly between a and b and normalizes the result.
func Nlerp[T Float](a, b Quat[T], t T) Quat[T] {
	return a.Scale(1 - t).Add(b.Scale(t)).Norm()
}

func isUnitVector[T Float](v Vector[T]) bool {
	x, y, z := v.X(), v.Y(), v.Z()

	return scalar.Abs(x*x+y*y+z*z-1) < Tolerance[T]()
}

func unitVec[T Float](v Vector[T]) (Vec3[T], bool) {
	x, y, z := v.X(), v.Y(), v.Z()

	n := scalar.Hypot3(x, y, z)
	if n == 0 {
		return Vec3[T]{}, false
	}

	return Vec3[T]{x / n, y / n, z / n}, true
}

func cross[T Float](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

package quat

import (
	"math"

	"github.com/cwbudde/algo-quat/internal/scalar"
)

// FromEuler returns the rotation that applies yaw about z, then pitch about
// y, then roll about x (intrinsic Z-Y-X, aerospace order).
func FromEuler[T Float](e Rotation[T]) Quat[T] {
	sr, cr := scalar.SinCos(e.Roll() / 2)
	sp, cp := scalar.SinCos(e.Pitch() / 2)
	sy, cy := scalar.SinCos(e.Yaw() / 2)

	return Quat[T]{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// ToEuler returns the Z-Y-X Euler angles of the rotation described by q,
// which is normalized first. At pitch = ±π/2 roll and yaw are no longer
// independent; the yaw is reported as zero and the whole turn as roll.
func ToEuler[T Float](q Quat[T]) Euler[T] {
	q = q.Norm()
	w, x, y, z := float64(q.W), float64(q.X), float64(q.Y), float64(q.Z)

	sinp := 2 * (w*y - z*x)
	lock := 1 - 64*float64(scalar.Epsilon[T]())

	switch {
	case sinp >= lock:
		return Euler[T]{T(2 * math.Atan2(x, w)), math.Pi / 2, 0}
	case sinp <= -lock:
		return Euler[T]{T(2 * math.Atan2(x, w)), -math.Pi / 2, 0}
	}

	roll := math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	yaw := math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))

	return Euler[T]{T(roll), T(math.Asin(sinp)), T(yaw)}
}

// FromPolar returns abs (cos angle + axis sin angle). axis must be a unit
// vector, otherwise ErrNotNormalized is returned.
func FromPolar[T Float](abs, angle T, axis Vector[T]) (Quat[T], error) {
	if !isUnitVector(axis) {
		return Quat[T]{}, ErrNotNormalized
	}

	s, c := scalar.SinCos(angle)

	return Quat[T]{abs * c, abs * s * axis.X(), abs * s * axis.Y(), abs * s * axis.Z()}, nil
}

// ToPolar returns |q|, the angle of q in its plane and its axis. A zero
// vector part reports the axis i.
func ToPolar[T Float](q Quat[T]) (abs, angle T, axis Vec3[T]) {
	c, u := lift(q)

	return T(cabs(c)), T(math.Atan2(imag(c), real(c))), Vec3[T]{T(u[0]), T(u[1]), T(u[2])}
}

// ToMatrix2 returns the complex 2x2 matrix
//
//	| w + xi   y + zi |
//	| -y + zi  w - xi |
//
// The map respects multiplication: ToMatrix2(p*q) = ToMatrix2(p) ToMatrix2(q).
func ToMatrix2[T Float](q Quat[T]) Mat2[T] {
	return Mat2[T]{
		{{q.W, q.X}, {q.Y, q.Z}},
		{{-q.Y, q.Z}, {q.W, -q.X}},
	}
}

// FromMatrix2 inverts ToMatrix2. It returns ErrInvalidMatrix when m lacks
// the required structure beyond Tolerance, relative to the largest entry.
func FromMatrix2[T Float](m Mat2[T]) (Quat[T], error) {
	var scale T = 1
	for _, row := range m {
		for _, e := range row {
			scale = max(scale, scalar.Abs(e.Re), scalar.Abs(e.Im))
		}
	}

	tol := Tolerance[T]() * scale

	near := func(a, b T) bool { return scalar.Abs(a-b) <= tol }
	if !near(m[0][0].Re, m[1][1].Re) || !near(m[0][0].Im, -m[1][1].Im) ||
		!near(m[0][1].Re, -m[1][0].Re) || !near(m[0][1].Im, m[1][0].Im) {
		return Quat[T]{}, ErrInvalidMatrix
	}

	return FromMatrix2Unchecked(m), nil
}

// FromMatrix2Unchecked reads q from the first row of m without checking
// the rest.
func FromMatrix2Unchecked[T Float](m Mat2[T]) Quat[T] {
	return Quat[T]{m[0][0].Re, m[0][0].Im, m[0][1].Re, m[0][1].Im}
}

// ToMatrix3 returns the rotation matrix of the unit quaternion q, so that
// ToMatrix3(q) v equals RotateVector(q, v). For q of length s the matrix
// is s² times a rotation.
func ToMatrix3[T Float](q Quat[T]) Mat3[T] {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	ww, xx, yy, zz := w*w, x*x, y*y, z*z

	return Mat3[T]{
		{ww + xx - yy - zz, 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), ww - xx + yy - zz, 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), ww - xx - yy + zz},
	}
}

// FromMatrix3 returns the unit quaternion of the rotation matrix m using
// Shepperd's method, which divides by the largest of the four possible
// pivots. The sign is chosen so that the pivot component is positive.
func FromMatrix3[T Float](m Mat3[T]) Quat[T] {
	tr := m[0][0] + m[1][1] + m[2][2]

	var q Quat[T]

	switch {
	case tr > 0:
		s := 2 * scalar.Sqrt(tr+1)
		q = Quat[T]{s / 4, (m[2][1] - m[1][2]) / s, (m[0][2] - m[2][0]) / s, (m[1][0] - m[0][1]) / s}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := 2 * scalar.Sqrt(1+m[0][0]-m[1][1]-m[2][2])
		q = Quat[T]{(m[2][1] - m[1][2]) / s, s / 4, (m[0][1] + m[1][0]) / s, (m[0][2] + m[2][0]) / s}
	case m[1][1] > m[2][2]:
		s := 2 * scalar.Sqrt(1+m[1][1]-m[0][0]-m[2][2])
		q = Quat[T]{(m[0][2] - m[2][0]) / s, (m[0][1] + m[1][0]) / s, s / 4, (m[1][2] + m[2][1]) / s}
	default:
		s := 2 * scalar.Sqrt(1+m[2][2]-m[0][0]-m[1][1])
		q = Quat[T]{(m[1][0] - m[0][1]) / s, (m[0][2] + m[2][0]) / s, (m[1][2] + m[2][1]) / s, s / 4}
	}

	return q.Norm()
}

// ToMatrix4 returns the real matrix of left multiplication by q:
// ToMatrix4(q) applied to the column (w, x, y, z) of p gives q*p.
func ToMatrix4[T Float](q Quat[T]) Mat4[T] {
	w, x, y, z := q.W, q.X, q.Y, q.Z

	return Mat4[T]{
		{w, -x, -y, -z},
		{x, w, -z, y},
		{y, z, w, -x},
		{z, -y, x, w},
	}
}

// FromMatrix4 inverts ToMatrix4 by reading the first column of m.
func FromMatrix4[T Float](m Mat4[T]) Quat[T] {
	return Quat[T]{m[0][0], m[1][0], m[2][0], m[3][0]}
}

// Apply returns m v.
func (m Mat3[T]) Apply(v Vector[T]) Vec3[T] {
	x, y, z := v.X(), v.Y(), v.Z()

	return Vec3[T]{
		m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z,
	}
}

// Mul returns the complex matrix product m n.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	var out Mat2[T]

	for r := range 2 {
		for c := range 2 {
			var re, im T
			for k := range 2 {
				a, b := m[r][k], n[k][c]
				re += a.Re*b.Re - a.Im*b.Im
				im += a.Re*b.Im + a.Im*b.Re
			}

			out[r][c] = Cplx[T]{re, im}
		}
	}

	return out
}

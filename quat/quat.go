package quat

import (
	"github.com/cwbudde/algo-quat/internal/scalar"
)

// Float is the set of scalar fields supported by the package.
type Float = scalar.Float

// Quaternion is implemented by every quaternion representation.
// R is the real part; I, J and K are the imaginary parts.
type Quaternion[T Float] interface {
	R() T
	I() T
	J() T
	K() T
}

// Vector is a three dimensional vector, the pure imaginary quaternions.
type Vector[T Float] interface {
	X() T
	Y() T
	Z() T
}

// Complex is a complex number, the quaternions without j and k parts.
type Complex[T Float] interface {
	Real() T
	Imag() T
}

// Rotation is a set of Euler angles in radians.
type Rotation[T Float] interface {
	Roll() T
	Pitch() T
	Yaw() T
}

// Setter is implemented by pointers to representations that can be
// overwritten component-wise.
type Setter[T Float] interface {
	SetComponents(r, i, j, k T)
}

// Constructor constrains P to be a pointer to Q that implements Setter.
type Constructor[T Float, Q any] interface {
	*Q
	Setter[T]
}

// Quat is the package's quaternion value type: W + Xi + Yj + Zk.
type Quat[T Float] struct {
	W, X, Y, Z T
}

// R returns the real part.
func (q Quat[T]) R() T { return q.W }

// I returns the i part.
func (q Quat[T]) I() T { return q.X }

// J returns the j part.
func (q Quat[T]) J() T { return q.Y }

// K returns the k part.
func (q Quat[T]) K() T { return q.Z }

// SetComponents overwrites all four components.
func (q *Quat[T]) SetComponents(r, i, j, k T) {
	*q = Quat[T]{r, i, j, k}
}

// Array stores a quaternion as [r, i, j, k].
type Array[T Float] [4]T

func (a Array[T]) R() T { return a[0] }
func (a Array[T]) I() T { return a[1] }
func (a Array[T]) J() T { return a[2] }
func (a Array[T]) K() T { return a[3] }

// SetComponents overwrites all four components.
func (a *Array[T]) SetComponents(r, i, j, k T) {
	*a = Array[T]{r, i, j, k}
}

// Vec3 is a vector stored as [x, y, z].
type Vec3[T Float] [3]T

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

// Cplx is a complex number over T.
type Cplx[T Float] struct {
	Re, Im T
}

func (c Cplx[T]) Real() T { return c.Re }
func (c Cplx[T]) Imag() T { return c.Im }

// Euler holds [roll, pitch, yaw] in radians: roll about x, pitch about y
// and yaw about z.
type Euler[T Float] [3]T

func (e Euler[T]) Roll() T  { return e[0] }
func (e Euler[T]) Pitch() T { return e[1] }
func (e Euler[T]) Yaw() T   { return e[2] }

// Mat2 is a 2x2 complex matrix, indexed [row][column].
type Mat2[T Float] [2][2]Cplx[T]

// Mat3 is a 3x3 real matrix, indexed [row][column].
type Mat3[T Float] [3][3]T

// Mat4 is a 4x4 real matrix, indexed [row][column].
type Mat4[T Float] [4][4]T

// New returns w + xi + yj + zk.
func New[T Float](w, x, y, z T) Quat[T] {
	return Quat[T]{w, x, y, z}
}

// Origin returns the zero quaternion.
func Origin[T Float]() Quat[T] { return Quat[T]{} }

// Identity returns the multiplicative identity 1.
func Identity[T Float]() Quat[T] { return Quat[T]{W: 1} }

// NaN returns a quaternion whose components are all NaN.
func NaN[T Float]() Quat[T] {
	n := scalar.NaN[T]()
	return Quat[T]{n, n, n, n}
}

// UnitR returns 1.
func UnitR[T Float]() Quat[T] { return Quat[T]{W: 1} }

// UnitI returns i.
func UnitI[T Float]() Quat[T] { return Quat[T]{X: 1} }

// UnitJ returns j.
func UnitJ[T Float]() Quat[T] { return Quat[T]{Y: 1} }

// UnitK returns k.
func UnitK[T Float]() Quat[T] { return Quat[T]{Z: 1} }

// Tolerance returns the threshold used by IsNear, IsClose and the checked
// constructors.
func Tolerance[T Float]() T { return T(scalar.Tolerance) }

// From copies any quaternion representation into a Quat.
func From[T Float](q Quaternion[T]) Quat[T] {
	return Quat[T]{q.R(), q.I(), q.J(), q.K()}
}

// Convert builds a value of representation Out from q.
//
//	m := quat.Convert[mglquat.Quat64, float64](q)
func Convert[Out any, T Float, P Constructor[T, Out]](q Quaternion[T]) Out {
	var out Out
	P(&out).SetComponents(q.R(), q.I(), q.J(), q.K())

	return out
}

// FromArray returns a[0] + a[1]i + a[2]j + a[3]k.
func FromArray[T Float](a [4]T) Quat[T] {
	return Quat[T]{a[0], a[1], a[2], a[3]}
}

// FromVector returns the pure quaternion xi + yj + zk.
func FromVector[T Float](v Vector[T]) Quat[T] {
	return Quat[T]{0, v.X(), v.Y(), v.Z()}
}

// FromComplex returns re + im*i.
func FromComplex[T Float](c Complex[T]) Quat[T] {
	return Quat[T]{W: c.Real(), X: c.Imag()}
}

// FromScalar returns the real quaternion s.
func FromScalar[T Float](s T) Quat[T] {
	return Quat[T]{W: s}
}

// FromComplex128 embeds c as real(c) + imag(c)i.
func FromComplex128(c complex128) Quat[float64] {
	return Quat[float64]{W: real(c), X: imag(c)}
}

// FromComplex64 embeds c as real(c) + imag(c)i.
func FromComplex64(c complex64) Quat[float32] {
	return Quat[float32]{W: real(c), X: imag(c)}
}

// Array returns the components as [w, x, y, z].
func (q Quat[T]) Array() Array[T] { return Array[T]{q.W, q.X, q.Y, q.Z} }

// Complex128 returns w + xi, dropping the j and k parts.
func (q Quat[T]) Complex128() complex128 {
	return complex(float64(q.W), float64(q.X))
}

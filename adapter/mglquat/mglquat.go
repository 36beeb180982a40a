// Package mglquat connects the go-gl/mathgl quaternion and matrix types to
// the quat interfaces.
//
// [Quat64] and [Quat32] have the layout of mgl64.Quat and mgl32.Quat and
// convert to and from them freely. mathgl vectors already provide X, Y and
// Z, so mgl64.Vec3 and mgl32.Vec3 can be passed wherever a quat.Vector is
// expected.
//
// mathgl matrices are column-major; quat matrices are row-major. Mat3 and
// FromMat3 translate between the two.
package mglquat

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-quat/quat"
)

// Quat64 is mgl64.Quat with the quat accessor methods.
type Quat64 mgl64.Quat

// Quat32 is mgl32.Quat with the quat accessor methods.
type Quat32 mgl32.Quat

var (
	_ quat.Quaternion[float64] = Quat64{}
	_ quat.Setter[float64]     = (*Quat64)(nil)
	_ quat.Quaternion[float32] = Quat32{}
	_ quat.Setter[float32]     = (*Quat32)(nil)
	_ quat.Vector[float64]     = mgl64.Vec3{}
	_ quat.Vector[float32]     = mgl32.Vec3{}
)

func (q Quat64) R() float64 { return q.W }
func (q Quat64) I() float64 { return q.V[0] }
func (q Quat64) J() float64 { return q.V[1] }
func (q Quat64) K() float64 { return q.V[2] }

// SetComponents sets q to r + i·i + j·j + k·k.
func (q *Quat64) SetComponents(r, i, j, k float64) {
	*q = Quat64{W: r, V: mgl64.Vec3{i, j, k}}
}

// Mgl returns q as mathgl's type.
func (q Quat64) Mgl() mgl64.Quat { return mgl64.Quat(q) }

// Quat returns q as a quat.Quat.
func (q Quat64) Quat() quat.Quat[float64] { return quat.From[float64](q) }

func (q Quat32) R() float32 { return q.W }
func (q Quat32) I() float32 { return q.V[0] }
func (q Quat32) J() float32 { return q.V[1] }
func (q Quat32) K() float32 { return q.V[2] }

// SetComponents sets q to r + i·i + j·j + k·k.
func (q *Quat32) SetComponents(r, i, j, k float32) {
	*q = Quat32{W: r, V: mgl32.Vec3{i, j, k}}
}

// Mgl returns q as mathgl's type.
func (q Quat32) Mgl() mgl32.Quat { return mgl32.Quat(q) }

// Quat returns q as a quat.Quat.
func (q Quat32) Quat() quat.Quat[float32] { return quat.From[float32](q) }

// From64 converts any float64 quaternion to mgl64.Quat.
func From64(q quat.Quaternion[float64]) mgl64.Quat {
	return mgl64.Quat{W: q.R(), V: mgl64.Vec3{q.I(), q.J(), q.K()}}
}

// From32 converts any float32 quaternion to mgl32.Quat.
func From32(q quat.Quaternion[float32]) mgl32.Quat {
	return mgl32.Quat{W: q.R(), V: mgl32.Vec3{q.I(), q.J(), q.K()}}
}

// Vec64 converts any float64 vector to mgl64.Vec3.
func Vec64(v quat.Vector[float64]) mgl64.Vec3 { return mgl64.Vec3{v.X(), v.Y(), v.Z()} }

// Vec32 converts any float32 vector to mgl32.Vec3.
func Vec32(v quat.Vector[float32]) mgl32.Vec3 { return mgl32.Vec3{v.X(), v.Y(), v.Z()} }

// Rotate rotates v by the unit quaternion q and returns a mathgl vector.
func Rotate(q quat.Quat[float64], v mgl64.Vec3) mgl64.Vec3 {
	return Vec64(quat.RotateVector(q, v))
}

// Mat3 converts a row-major quat matrix to mathgl's column-major layout.
func Mat3(m quat.Mat3[float64]) mgl64.Mat3 {
	var out mgl64.Mat3
	for r := range 3 {
		for c := range 3 {
			out[c*3+r] = m[r][c]
		}
	}

	return out
}

// FromMat3 converts a column-major mathgl matrix to a quat matrix.
func FromMat3(m mgl64.Mat3) quat.Mat3[float64] {
	var out quat.Mat3[float64]
	for r := range 3 {
		for c := range 3 {
			out[r][c] = m[c*3+r]
		}
	}

	return out
}

// Mat4 returns the homogeneous rotation matrix of the unit quaternion q,
// as mgl64.Quat.Mat4 does.
func Mat4(q quat.Quat[float64]) mgl64.Mat4 {
	m := quat.ToMatrix3(q)

	var out mgl64.Mat4
	for r := range 3 {
		for c := range 3 {
			out[c*4+r] = m[r][c]
		}
	}

	out[15] = 1

	return out
}

// FromMat4 returns the rotation in the upper-left block of a homogeneous
// mathgl matrix.
func FromMat4(m mgl64.Mat4) quat.Quat[float64] {
	var r quat.Mat3[float64]
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m.At(i, j)
		}
	}

	return quat.FromMatrix3(r)
}

package mglquat_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cwbudde/algo-quat/adapter/mglquat"
	"github.com/cwbudde/algo-quat/internal/testutil"
	"github.com/cwbudde/algo-quat/quat"
)

func requireVec(t *testing.T, got, want mgl64.Vec3, eps float64) {
	t.Helper()

	testutil.RequireSliceNearlyEqual(t, got[:], want[:], eps)
}

// requireSameRotation accepts q or -q.
func requireSameRotation(t *testing.T, got, want quat.Quat[float64], eps float64) {
	t.Helper()

	if got.Dot(want) < 0 {
		got = got.Neg()
	}

	testutil.RequireQuatNear(t, got, want, eps)
}

var axes = []mgl64.Vec3{
	{1, 0, 0},
	{0, 0, 1},
	mgl64.Vec3{1, -2, 0.5}.Normalize(),
	mgl64.Vec3{-0.3, 0.4, 1}.Normalize(),
}

func TestConversions(t *testing.T) {
	m := mgl64.Quat{W: 1, V: mgl64.Vec3{2, 3, 4}}

	q := quat.From[float64](mglquat.Quat64(m))
	if !q.Eq(quat.New(1.0, 2, 3, 4)) || !mglquat.Quat64(m).Quat().Eq(q) {
		t.Fatalf("From(Quat64) = %v", q)
	}

	if back := quat.Convert[mglquat.Quat64, float64](q).Mgl(); back != m {
		t.Fatalf("Convert round trip = %v, want %v", back, m)
	}

	if got := mglquat.From64(quat.Array[float64]{1, 2, 3, 4}); got != m {
		t.Fatalf("From64 = %v", got)
	}

	m32 := mgl32.Quat{W: 0.5, V: mgl32.Vec3{-0.5, 0.5, -0.5}}

	q32 := mglquat.Quat32(m32).Quat()
	if !q32.Eq(quat.New[float32](0.5, -0.5, 0.5, -0.5)) {
		t.Fatalf("Quat32.Quat() = %v", q32)
	}

	if back := mglquat.From32(q32); back != m32 {
		t.Fatalf("From32 = %v", back)
	}

	if got := quat.Convert[mglquat.Quat32, float32](q32).Mgl(); got != m32 {
		t.Fatalf("Convert[Quat32] = %v", got)
	}

	v := mglquat.Vec32(quat.Vec3[float32]{1, 2, 3})
	if v != (mgl32.Vec3{1, 2, 3}) || mglquat.Vec64(mgl64.Vec3{4, 5, 6}) != (mgl64.Vec3{4, 5, 6}) {
		t.Fatalf("vector conversion failed: %v", v)
	}
}

func TestAxisAngleAndRotate(t *testing.T) {
	v := mgl64.Vec3{0.3, -1.2, 2}

	for _, axis := range axes {
		for _, angle := range []float64{0.1, 1, math.Pi / 2, 3} {
			want := mgl64.QuatRotate(angle, axis)
			got := quat.FromAxisAngle(axis, angle)

			testutil.RequireQuatNear(t, got, mglquat.Quat64(want), 1e-14)
			requireVec(t, mglquat.Rotate(got, v), want.Rotate(v), 1e-13)
		}
	}
}

func TestHamiltonProduct(t *testing.T) {
	a := mgl64.QuatRotate(0.7, axes[2])
	b := mgl64.QuatRotate(-1.9, axes[3])

	got := mglquat.Quat64(a).Quat().Mul(mglquat.Quat64(b).Quat())
	testutil.RequireQuatNear(t, got, mglquat.Quat64(a.Mul(b)), 1e-15)

	inv := mglquat.Quat64(a).Quat().Inv()
	testutil.RequireQuatNear(t, inv, mglquat.Quat64(a.Inverse()), 1e-15)
}

func TestMatrices(t *testing.T) {
	for _, axis := range axes {
		mq := mgl64.QuatRotate(1.1, axis)
		q := mglquat.Quat64(mq).Quat()

		want := mq.Mat4()
		got := mglquat.Mat4(q)

		testutil.RequireSliceNearlyEqual(t, got[:], want[:], 1e-14)

		m3 := mglquat.Mat3(quat.ToMatrix3(q))
		for r := range 3 {
			for c := range 3 {
				testutil.RequireNear(t, "mat3", m3.At(r, c), want.At(r, c), 1e-14)
			}
		}

		if back := mglquat.FromMat3(m3); back != quat.ToMatrix3(q) {
			t.Fatalf("FromMat3 round trip = %v", back)
		}

		requireSameRotation(t, mglquat.FromMat4(want), q, 1e-13)
		requireSameRotation(t, mglquat.Quat64(mgl64.Mat4ToQuat(want)).Quat(), q, 1e-13)
	}
}

func TestEulerMatchesAnglesToQuat(t *testing.T) {
	tests := []struct {
		roll, pitch, yaw float64
	}{
		{0.1, 0.2, 0.3},
		{-1, 0.5, 2},
		{2.5, -1.2, -0.4},
	}

	for _, tt := range tests {
		want := mgl64.AnglesToQuat(tt.yaw, tt.pitch, tt.roll, mgl64.ZYX)
		got := quat.FromEuler[float64](quat.Euler[float64]{tt.roll, tt.pitch, tt.yaw})

		requireSameRotation(t, got, mglquat.Quat64(want).Quat(), 1e-14)
	}
}

func TestSlerp(t *testing.T) {
	a := mgl64.QuatRotate(0.2, axes[2])
	b := mgl64.QuatRotate(1.4, axes[3])

	for _, amount := range []float64{0, 0.3, 0.5, 0.9, 1} {
		want := mgl64.QuatSlerp(a, b, amount)
		got := quat.Slerp(mglquat.Quat64(a).Quat(), mglquat.Quat64(b).Quat(), amount)

		testutil.RequireQuatNear(t, got, mglquat.Quat64(want), 1e-6)
	}
}

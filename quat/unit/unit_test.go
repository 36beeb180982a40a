package unit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-quat/internal/testutil"
	"github.com/cwbudde/algo-quat/quat"
	"github.com/cwbudde/algo-quat/quat/unit"
)

type v3 = quat.Vec3[float64]

func requireUnit(t *testing.T, u unit.Quat[float64]) {
	t.Helper()

	testutil.RequireNear(t, "|u|", u.Quat().Abs(), 1, 1e-12)
}

func mustUnit(t *testing.T, q quat.Quaternion[float64]) unit.Quat[float64] {
	t.Helper()

	u, err := unit.Normalize(q)
	if err != nil {
		t.Fatalf("Normalize(%v): %v", q, err)
	}

	return u
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		q    quat.Quat[float64]
		want error
	}{
		{"identity", quat.Identity[float64](), nil},
		{"unit k", quat.UnitK[float64](), nil},
		{"tilted", quat.New(0.5, 0.5, 0.5, 0.5), nil},
		{"double", quat.New(2.0, 0, 0, 0), unit.ErrNotUnit},
		{"zero", quat.Origin[float64](), unit.ErrNotUnit},
		{"nan", quat.NaN[float64](), unit.ErrNotUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := unit.New[float64](tt.q)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New(%v) error = %v, want %v", tt.q, err, tt.want)
			}

			if err == nil {
				testutil.RequireQuatNear(t, u, tt.q, 1e-15)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	u := mustUnit(t, quat.New(0.0, 3, 0, 4))
	requireUnit(t, u)
	testutil.RequireQuatNear(t, u, quat.New(0.0, 0.6, 0, 0.8), 1e-15)

	if _, err := unit.Normalize[float64](quat.Origin[float64]()); !errors.Is(err, unit.ErrZero) {
		t.Fatalf("Normalize(0) error = %v, want ErrZero", err)
	}

	inf := quat.New(math.Inf(1), 0, 0, 0)
	if _, err := unit.Normalize[float64](inf); !errors.Is(err, unit.ErrNotUnit) {
		t.Fatalf("Normalize(Inf) error = %v, want ErrNotUnit", err)
	}

	// Arrays satisfy the interface as well.
	a := quat.Array[float64]{0, 0, 2, 0}
	testutil.RequireQuatNear(t, mustUnit(t, a), quat.UnitJ[float64](), 0)
}

func TestGroupOperations(t *testing.T) {
	a := unit.FromAxisAngle(v3{1, 2, 3}, 0.7)
	b := unit.FromAxisAngle(v3{-1, 0, 1}, 2.1)

	requireUnit(t, a)
	requireUnit(t, b)

	testutil.RequireQuatNear(t, a.Mul(b), a.Quat().Mul(b.Quat()), 1e-14)
	testutil.RequireQuatNear(t, a.MulReversed(b), b.Quat().Mul(a.Quat()), 1e-14)
	testutil.RequireQuatNear(t, a.Div(b), a.Quat().Div(b.Quat()), 1e-14)
	testutil.RequireQuatNear(t, a.Inv(), a.Quat().Inv(), 1e-15)
	testutil.RequireQuatNear(t, a.Mul(a.Inv()), quat.Identity[float64](), 1e-14)
	testutil.RequireQuatNear(t, a.Neg(), a.Quat().Neg(), 0)
	testutil.RequireNear(t, "dot", a.Dot(b), a.Quat().Dot(b.Quat()), 0)

	// Rotations compose: (a*b) v = a (b v).
	v := v3{0.3, -1, 2}
	got := a.Mul(b).Rotate(v)
	want := a.Rotate(b.Rotate(v))

	testutil.RequireSliceNearlyEqual(t, got[:], want[:], 1e-13)

	// Long chains stay on the unit sphere.
	c := unit.Identity[float64]()
	for range 10000 {
		c = c.Mul(a)
	}

	requireUnit(t, c)
}

func TestLnExpSqrtPow(t *testing.T) {
	testutil.SkipFastMath(t)

	u := unit.FromAxisAngle(v3{0, 1, 1}, 1.2)

	ln := u.Ln()
	testutil.RequireNear(t, "|ln u|", math.Sqrt(ln[0]*ln[0]+ln[1]*ln[1]+ln[2]*ln[2]), 0.6, 1e-14)
	testutil.RequireQuatNear(t, unit.Exp[float64](ln), u, 1e-14)

	s := u.Sqrt()
	testutil.RequireQuatNear(t, s.Mul(s), u, 1e-14)

	_, angle := s.AxisAngle()
	testutil.RequireNear(t, "sqrt angle", angle, 0.6, 1e-14)

	testutil.RequireQuatNear(t, u.Pow(3), u.Mul(u).Mul(u), 1e-14)
	testutil.RequireQuatNear(t, u.Pow(0), unit.Identity[float64](), 1e-15)
	testutil.RequireQuatNear(t, u.Pow(-1), u.Inv(), 1e-14)
}

func TestSlerp(t *testing.T) {
	z := v3{0, 0, 1}
	a := unit.Identity[float64]()
	b := unit.FromAxisAngle(z, math.Pi/2)

	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		got := unit.Slerp(a, b, tt)
		requireUnit(t, got)
		testutil.RequireQuatNear(t, got, unit.FromAxisAngle(z, tt*math.Pi/2), 1e-14)
	}

	// The shorter arc is taken when b is given with the opposite sign.
	got := unit.Slerp(a, b.Neg(), 0.5)
	testutil.RequireQuatNear(t, got, unit.FromAxisAngle(z, math.Pi/4), 1e-14)
}

func TestFromToAndViews(t *testing.T) {
	u := unit.FromTo[float64](v3{1, 0, 0}, v3{0, 0, 5})
	requireUnit(t, u)

	got := u.Rotate(v3{1, 0, 0})
	testutil.RequireSliceNearlyEqual(t, got[:], []float64{0, 0, 1}, 1e-14)

	m := u.Matrix().Apply(v3{1, 0, 0})
	testutil.RequireSliceNearlyEqual(t, m[:], got[:], 1e-14)

	e := u.Euler()
	testutil.RequireNear(t, "pitch", e.Pitch(), -math.Pi/2, 1e-6)

	axis, angle := unit.Identity[float64]().AxisAngle()
	if angle != 0 || axis != (v3{}) {
		t.Fatalf("identity AxisAngle = %v, %v", axis, angle)
	}

	sum := u.AddAny(quat.Array[float64]{1, 0, 0, 0})
	testutil.RequireQuatNear(t, sum, u.Quat().Add(quat.Identity[float64]()), 0)

	if s := unit.Identity[float64]().String(); s != "1" {
		t.Fatalf("String() = %q", s)
	}
}

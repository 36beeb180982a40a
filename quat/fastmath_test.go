//go:build fastmath

package quat_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-quat/internal/testutil"
	"github.com/cwbudde/algo-quat/quat"
)

func TestFastMathMatchesCmplx(t *testing.T) {
	tests := []struct {
		name string
		q    qfunc
		c    func(complex128) complex128
	}{
		{"exp", quat.Exp[float64], cmplx.Exp},
		{"ln", quat.Ln[float64], cmplx.Log},
		{"sinh", quat.Sinh[float64], cmplx.Sinh},
		{"tanh", quat.Tanh[float64], cmplx.Tanh},
		{"asinh", quat.Asinh[float64], cmplx.Asinh},
		{"atanh", quat.Atanh[float64], cmplx.Atanh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, z := range complexSamples {
				want := tt.c(z)
				got := tt.q(quat.FromComplex128(z))

				testutil.RequireQuatNear(t, got, quat.New(real(want), imag(want), 0, 0), testutil.FastMathEps)
			}
		})
	}
}

func TestFastMathIdentities(t *testing.T) {
	for _, q := range samples {
		testutil.RequireQuatNear(t, quat.Exp(quat.Ln(q)), q, testutil.FastMathEps)
		testutil.RequireQuatNear(t, quat.PowF(q, 2), q.Square(), testutil.FastMathEps)
	}
}

// Norms and rotations do not go through the approximate kernels.
func TestFastMathKeepsNormsExact(t *testing.T) {
	q := quat.New(1.0, 2, 2, 4)
	if got := q.Abs(); got != 5 {
		t.Fatalf("Abs = %v, want 5", got)
	}

	if n := q.Norm(); math.Abs(n.AbsSquared()-1) > 1e-15 {
		t.Fatalf("Norm = %v is not a unit quaternion", n)
	}

	if got := quat.Exp(quat.Origin[float64]()); !got.Eq(quat.Identity[float64]()) {
		t.Fatalf("Exp(0) = %v, want 1", got)
	}
}

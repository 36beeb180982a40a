package testutil

import (
	"fmt"
	"math"
	"testing"
)

// Quaternion is the accessor set shared by every quaternion representation
// under test.
type Quaternion interface {
	R() float64
	I() float64
	J() float64
	K() float64
}

// Components returns the four components of q as [r, i, j, k].
func Components(q Quaternion) [4]float64 {
	return [4]float64{q.R(), q.I(), q.J(), q.K()}
}

// RequireNear fails t if got and want differ by more than eps relative to
// max(1, |want|). Two NaNs compare equal, as do infinities of equal sign.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()

	if !Near(got, want, eps) {
		t.Fatalf("%s: got %v, want %v (eps %v)", name, got, want, eps)
	}
}

// RequireQuatNear fails t if any component of got differs from want by more
// than eps relative to max(1, |want|).
func RequireQuatNear(t *testing.T, got, want Quaternion, eps float64) {
	t.Helper()

	g, w := Components(got), Components(want)
	scale := math.Max(1, math.Sqrt(w[0]*w[0]+w[1]*w[1]+w[2]*w[2]+w[3]*w[3]))

	for i := range g {
		if !nearScaled(g[i], w[i], eps*scale) {
			t.Fatalf("component %d: got %v, want %v (eps %v)", i, g, w, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any component is NaN or Inf.
func RequireFinite(t *testing.T, q Quaternion) {
	t.Helper()
	for i, v := range Components(q) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("component %d: non-finite value %v", i, v)
		}
	}
}

// Near reports whether a and b agree within eps relative to max(1, |b|).
func Near(a, b, eps float64) bool {
	return nearScaled(a, b, eps*math.Max(1, math.Abs(b)))
}

func nearScaled(a, b, tol float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(b, 0):
		return a == b
	}

	return math.Abs(a-b) <= tol
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// SkipFastMath skips t in fastmath builds, where exp and log carry errors
// of about 1e-5 and full-precision comparisons cannot hold.
func SkipFastMath(t *testing.T) {
	t.Helper()

	if FastMath {
		t.Skip("exp and log are approximated in fastmath builds")
	}
}

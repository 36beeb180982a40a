package batch_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-quat/internal/testutil"
	"github.com/cwbudde/algo-quat/quat"
	"github.com/cwbudde/algo-quat/quat/batch"
)

func sampleBatch(seed int64, n int) batch.Quats {
	w, x, y, z := testutil.Lanes(testutil.DeterministicComponents(seed, 2, n))
	return batch.Quats{W: w, X: x, Y: y, Z: z}
}

func TestLayout(t *testing.T) {
	arrays := []quat.Array[float64]{{1, 2, 3, 4}, {-1, 0, 0.5, 0}}

	b := batch.FromSlice(arrays)
	if b.Len() != 2 || b.Validate() != nil {
		t.Fatalf("FromSlice: len %d, err %v", b.Len(), b.Validate())
	}

	if got := b.At(1); !got.Eq(quat.New(-1.0, 0, 0.5, 0)) {
		t.Fatalf("At(1) = %v", got)
	}

	b.Set(0, quat.UnitK[float64]())

	got := b.ToSlice()
	if !got[0].Eq(quat.UnitK[float64]()) || !got[1].Eq(quat.From[float64](arrays[1])) {
		t.Fatalf("ToSlice = %v", got)
	}

	m := batch.Make(3)
	if m.Len() != 3 || len(m.Z) != 3 || cap(m.W) != 3 {
		t.Fatalf("Make(3) lanes = %d/%d/%d", len(m.W), len(m.Z), cap(m.W))
	}

	m.W = m.W[:2]
	if err := m.Validate(); !errors.Is(err, batch.ErrLengthMismatch) {
		t.Fatalf("Validate() = %v, want ErrLengthMismatch", err)
	}
}

func TestElementwiseMatchesQuat(t *testing.T) {
	// Odd length exercises the SIMD tails.
	const n = 37

	a, b := sampleBatch(1, n), sampleBatch(2, n)

	tests := []struct {
		name string
		run  func(dst batch.Quats) error
		want func(p, q quat.Quat[float64]) quat.Quat[float64]
	}{
		{"add", func(d batch.Quats) error { return batch.Add(d, a, b) }, quat.Quat[float64].Add},
		{"sub", func(d batch.Quats) error { return batch.Sub(d, a, b) }, quat.Quat[float64].Sub},
		{"mul", func(d batch.Quats) error { return batch.Mul(d, a, b) }, quat.Quat[float64].Mul},
		{"scale", func(d batch.Quats) error { return batch.Scale(d, a, -1.5) },
			func(p, _ quat.Quat[float64]) quat.Quat[float64] { return p.Scale(-1.5) }},
		{"conj", func(d batch.Quats) error { return batch.Conj(d, a) },
			func(p, _ quat.Quat[float64]) quat.Quat[float64] { return p.Conj() }},
		{"normalize", func(d batch.Quats) error { return batch.Normalize(d, a) },
			func(p, _ quat.Quat[float64]) quat.Quat[float64] { return p.Norm() }},
		{"exp", func(d batch.Quats) error { return batch.Apply(d, a, quat.Exp[float64]) },
			func(p, _ quat.Quat[float64]) quat.Quat[float64] { return quat.Exp(p) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := batch.Make(n)
			if err := tt.run(dst); err != nil {
				t.Fatalf("run: %v", err)
			}

			for i := range n {
				testutil.RequireQuatNear(t, dst.At(i), tt.want(a.At(i), b.At(i)), 1e-14)
			}
		})
	}
}

func TestMulInPlace(t *testing.T) {
	a, b := sampleBatch(3, 9), sampleBatch(4, 9)

	want := make([]quat.Quat[float64], a.Len())
	for i := range want {
		want[i] = a.At(i).Mul(b.At(i))
	}

	if err := batch.Mul(a, a, b); err != nil {
		t.Fatal(err)
	}

	for i, w := range want {
		testutil.RequireQuatNear(t, a.At(i), w, 1e-14)
	}
}

func TestReductions(t *testing.T) {
	a, b := sampleBatch(5, 20), sampleBatch(6, 20)

	dot := make([]float64, a.Len())
	abs := make([]float64, a.Len())
	abs2 := make([]float64, a.Len())

	if err := batch.Dot(dot, a, b); err != nil {
		t.Fatal(err)
	}

	if err := batch.Abs(abs, a); err != nil {
		t.Fatal(err)
	}

	if err := batch.AbsSquared(abs2, a); err != nil {
		t.Fatal(err)
	}

	var inner float64
	for i := range a.Len() {
		p, q := a.At(i), b.At(i)
		testutil.RequireNear(t, "dot", dot[i], p.Dot(q), 1e-14)
		testutil.RequireNear(t, "abs", abs[i], p.Abs(), 1e-14)
		testutil.RequireNear(t, "abs²", abs2[i], p.AbsSquared(), 1e-14)

		inner += p.Dot(q)
	}

	got, err := batch.InnerProduct(a, b)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, "inner product", got, inner, 1e-12)

	testutil.RequireQuatNear(t, batch.Sum(a), quat.Sum(a.All()), 1e-13)
	testutil.RequireQuatNear(t, batch.Product(a), quat.Product(a.All()), 0)

	if p := batch.Product(batch.Make(0)); !p.Eq(quat.Identity[float64]()) {
		t.Fatalf("empty Product = %v", p)
	}
}

func TestNormalizeZero(t *testing.T) {
	a := batch.FromSlice([]quat.Quat[float64]{{}, quat.New(0.0, 0, 3, 4)})
	if err := batch.Normalize(a, a); err != nil {
		t.Fatal(err)
	}

	if !a.At(0).IsZero() {
		t.Fatalf("zero normalized to %v", a.At(0))
	}

	testutil.RequireQuatNear(t, a.At(1), quat.New(0.0, 0, 0.6, 0.8), 1e-15)
}

func TestEqualApprox(t *testing.T) {
	a := sampleBatch(7, 8)
	b := batch.Make(a.Len())

	if err := batch.Scale(b, a, 1+1e-12); err != nil {
		t.Fatal(err)
	}

	if !batch.EqualApprox(a, b, 1e-9) {
		t.Fatal("nearly equal batches reported different")
	}

	b.Z[3] += 1
	if batch.EqualApprox(a, b, 1e-9) {
		t.Fatal("different batches reported equal")
	}

	d, err := testutil.MaxAbsDiff(a.Z, b.Z)
	if err != nil || math.Abs(d-1) > 1e-9 {
		t.Fatalf("MaxAbsDiff = %v, %v; want 1", d, err)
	}

	if batch.EqualApprox(a, batch.Make(3), 1) {
		t.Fatal("batches of different length reported equal")
	}
}

func TestLengthMismatch(t *testing.T) {
	a, b := batch.Make(4), batch.Make(5)
	short := make([]float64, 3)

	errs := []error{
		batch.Add(a, a, b),
		batch.Sub(b, a, a),
		batch.Mul(a, b, a),
		batch.Scale(a, b, 2),
		batch.Conj(b, a),
		batch.Normalize(a, b),
		batch.Apply(a, b, quat.Sqrt[float64]),
		batch.Dot(short, a, a),
		batch.Abs(short, a),
		batch.AbsSquared(short, a),
	}

	_, err := batch.InnerProduct(a, b)
	errs = append(errs, err)

	for i, err := range errs {
		if !errors.Is(err, batch.ErrLengthMismatch) {
			t.Fatalf("case %d: error = %v, want ErrLengthMismatch", i, err)
		}
	}

	if got := batch.Sum(batch.Make(0)); !got.IsZero() || math.Signbit(got.W) {
		t.Fatalf("empty Sum = %v", got)
	}
}

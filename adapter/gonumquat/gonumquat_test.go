package gonumquat_test

import (
	"testing"

	gquat "gonum.org/v1/gonum/num/quat"

	"github.com/cwbudde/algo-quat/adapter/gonumquat"
	"github.com/cwbudde/algo-quat/internal/testutil"
	"github.com/cwbudde/algo-quat/quat"
)

var samples = []quat.Quat[float64]{
	{W: 0.5, X: -0.3, Y: 0.8, Z: 0.2},
	{W: -1.2, X: 0.4, Y: 0.1, Z: -0.6},
	{W: 2, X: 1, Y: -1, Z: 0.5},
	{W: 0.1, Z: 1.5},
}

func TestConversions(t *testing.T) {
	g := gquat.Number{Real: 1, Imag: -2, Jmag: 3, Kmag: -4}

	n := gonumquat.Number(g)
	if n.R() != 1 || n.I() != -2 || n.J() != 3 || n.K() != -4 {
		t.Fatalf("accessors = %v %v %v %v", n.R(), n.I(), n.J(), n.K())
	}

	q := quat.From[float64](n)
	if !q.Eq(quat.New(1.0, -2, 3, -4)) || !n.Quat().Eq(q) {
		t.Fatalf("From(Number) = %v", q)
	}

	back := quat.Convert[gonumquat.Number, float64](q).Gonum()
	if back != g {
		t.Fatalf("Convert round trip = %v, want %v", back, g)
	}

	if got := gonumquat.From(quat.Array[float64]{1, -2, 3, -4}); got != n {
		t.Fatalf("From(Array) = %v", got)
	}

	if n.String() != "1 - 2i + 3j - 4k" {
		t.Fatalf("String() = %q", n.String())
	}
}

func TestParse(t *testing.T) {
	n, err := gonumquat.Parse("1+2i-3j+4k")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want, err := quat.Parse[float64]("1 + 2i - 3j + 4k")
	if err != nil {
		t.Fatal(err)
	}

	if !n.Quat().Eq(want) {
		t.Fatalf("gonum Parse = %v, quat.Parse = %v", n, want)
	}

	if _, err := gonumquat.Parse("not a quaternion"); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

func TestFunctionsAgree(t *testing.T) {
	testutil.SkipFastMath(t)

	ours := map[string]func(quat.Quat[float64]) quat.Quat[float64]{
		"exp":  quat.Exp[float64],
		"log":  quat.Ln[float64],
		"sqrt": quat.Sqrt[float64],
		"sin":  quat.Sin[float64],
		"cos":  quat.Cos[float64],
		"tan":  quat.Tan[float64],
		"sinh": quat.Sinh[float64],
		"cosh": quat.Cosh[float64],
		"tanh": quat.Tanh[float64],
		"inv":  quat.Quat[float64].Inv,
		"conj": quat.Quat[float64].Conj,
	}

	for name, f := range ours {
		g, ok := gonumquat.Functions[name]
		if !ok {
			t.Fatalf("no gonum function %q", name)
		}

		lifted := gonumquat.Lift(g)

		t.Run(name, func(t *testing.T) {
			for _, q := range samples {
				testutil.RequireQuatNear(t, f(q), lifted(q), 1e-10)
			}
		})
	}
}

func TestLower(t *testing.T) {
	testutil.SkipFastMath(t)

	lowered := gonumquat.Lower(quat.Exp[float64])

	for _, q := range samples {
		g := gonumquat.From(q).Gonum()
		testutil.RequireQuatNear(t, gonumquat.Number(lowered(g)), gonumquat.Number(gquat.Exp(g)), 1e-12)
	}
}

func TestPowMatchesGonum(t *testing.T) {
	testutil.SkipFastMath(t)

	for _, q := range samples {
		g := gonumquat.From(q).Gonum()

		got := quat.PowF(q, 2.5)
		want := gonumquat.Number(gquat.PowReal(g, 2.5))
		testutil.RequireQuatNear(t, got, want, 1e-10)

		p := samples[0]
		got = quat.PowQ(q, p)
		want = gonumquat.Number(gquat.Pow(g, gonumquat.From(p).Gonum()))
		testutil.RequireQuatNear(t, got, want, 1e-10)

		testutil.RequireNear(t, "abs", q.Abs(), gquat.Abs(g), 1e-14)
	}
}

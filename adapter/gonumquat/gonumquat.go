// Package gonumquat lets gonum's num/quat numbers take part in the quat
// interfaces.
//
// [Number] has the memory layout of quat.Number from
// gonum.org/v1/gonum/num/quat, so the two convert freely, and adds the
// accessors of [quat.Quaternion] and [quat.Setter]:
//
//	n := gonumquat.Number(gq)          // gonum -> adapter
//	q := quat.From[float64](n)         // adapter -> quat.Quat
//	gq = quat.Convert[gonumquat.Number, float64](q).Gonum()
package gonumquat

import (
	gquat "gonum.org/v1/gonum/num/quat"

	"github.com/cwbudde/algo-quat/quat"
)

// Number is gonum's quat.Number with the quat accessor methods.
type Number gquat.Number

var (
	_ quat.Quaternion[float64] = Number{}
	_ quat.Setter[float64]     = (*Number)(nil)
)

func (n Number) R() float64 { return n.Real }
func (n Number) I() float64 { return n.Imag }
func (n Number) J() float64 { return n.Jmag }
func (n Number) K() float64 { return n.Kmag }

// SetComponents sets n to r + i·i + j·j + k·k.
func (n *Number) SetComponents(r, i, j, k float64) {
	*n = Number{Real: r, Imag: i, Jmag: j, Kmag: k}
}

// From converts any float64 quaternion to a Number.
func From(q quat.Quaternion[float64]) Number {
	return Number{Real: q.R(), Imag: q.I(), Jmag: q.J(), Kmag: q.K()}
}

// Gonum returns n as gonum's type.
func (n Number) Gonum() gquat.Number { return gquat.Number(n) }

// Quat returns n as a quat.Quat.
func (n Number) Quat() quat.Quat[float64] { return quat.From[float64](n) }

// String renders n in the quat text format.
func (n Number) String() string { return n.Quat().String() }

// Parse reads a quaternion with gonum's parser, which accepts forms such
// as "1+2i-3j+4k" and "(1+2i-3j+4k)".
func Parse(s string) (Number, error) {
	g, err := gquat.Parse(s)
	if err != nil {
		return Number{}, err
	}

	return Number(g), nil
}

// Func is a gonum function of one quaternion, such as gquat.Exp.
type Func func(gquat.Number) gquat.Number

// Lift turns a gonum function into one on quat.Quat values.
func Lift(f Func) func(quat.Quat[float64]) quat.Quat[float64] {
	return func(q quat.Quat[float64]) quat.Quat[float64] {
		return Number(f(From(q).Gonum())).Quat()
	}
}

// Lower turns a quat function into one on gonum numbers.
func Lower(f func(quat.Quat[float64]) quat.Quat[float64]) Func {
	return func(g gquat.Number) gquat.Number {
		return From(f(Number(g).Quat())).Gonum()
	}
}

// Functions lists the gonum counterparts of quat functions by name. The
// keys match the names used by cmd/quatcalc.
var Functions = map[string]Func{
	"exp":   gquat.Exp,
	"log":   gquat.Log,
	"sqrt":  gquat.Sqrt,
	"sin":   gquat.Sin,
	"cos":   gquat.Cos,
	"tan":   gquat.Tan,
	"sinh":  gquat.Sinh,
	"cosh":  gquat.Cosh,
	"tanh":  gquat.Tanh,
	"asin":  gquat.Asin,
	"acos":  gquat.Acos,
	"atan":  gquat.Atan,
	"asinh": gquat.Asinh,
	"acosh": gquat.Acosh,
	"atanh": gquat.Atanh,
	"inv":   gquat.Inv,
	"conj":  gquat.Conj,
}

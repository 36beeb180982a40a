package batch

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-quat/quat"
)

// Add stores a + b in dst.
func Add(dst, a, b Quats) error {
	if err := sameLen(dst, a, b); err != nil {
		return err
	}

	for c, l := range dst.lanes() {
		floats.AddTo(l, a.lanes()[c], b.lanes()[c])
	}

	return nil
}

// Sub stores a - b in dst.
func Sub(dst, a, b Quats) error {
	if err := sameLen(dst, a, b); err != nil {
		return err
	}

	for c, l := range dst.lanes() {
		floats.SubTo(l, a.lanes()[c], b.lanes()[c])
	}

	return nil
}

// Scale stores s*a in dst.
func Scale(dst, a Quats, s float64) error {
	if err := sameLen(dst, a); err != nil {
		return err
	}

	for c, l := range dst.lanes() {
		vecmath.ScaleBlock(l, a.lanes()[c], s)
	}

	return nil
}

// Conj stores the conjugates of a in dst.
func Conj(dst, a Quats) error {
	if err := sameLen(dst, a); err != nil {
		return err
	}

	copy(dst.W, a.W)
	vecmath.ScaleBlock(dst.X, a.X, -1)
	vecmath.ScaleBlock(dst.Y, a.Y, -1)
	vecmath.ScaleBlock(dst.Z, a.Z, -1)

	return nil
}

// product is one signed term a*b of a Hamilton product component.
type product struct {
	neg  bool
	a, b []float64
}

// accumulate stores the sum of the signed products in acc, using tmp as
// scratch. The first term must be positive.
func accumulate(acc, tmp []float64, terms ...product) {
	vecmath.MulBlock(acc, terms[0].a, terms[0].b)

	for _, t := range terms[1:] {
		vecmath.MulBlock(tmp, t.a, t.b)

		if t.neg {
			vecmath.ScaleBlock(tmp, tmp, -1)
		}

		vecmath.AddBlockInPlace(acc, tmp)
	}
}

// Mul stores the element-wise Hamilton products a[n]*b[n] in dst.
func Mul(dst, a, b Quats) error {
	if err := sameLen(dst, a, b); err != nil {
		return err
	}

	n := dst.Len()
	if n == 0 {
		return nil
	}

	s, buf := getScratch(n, 5)
	defer putScratch(buf)

	w, x, y, z, tmp := s[0], s[1], s[2], s[3], s[4]

	accumulate(w, tmp,
		product{false, a.W, b.W}, product{true, a.X, b.X},
		product{true, a.Y, b.Y}, product{true, a.Z, b.Z})
	accumulate(x, tmp,
		product{false, a.W, b.X}, product{false, a.X, b.W},
		product{false, a.Y, b.Z}, product{true, a.Z, b.Y})
	accumulate(y, tmp,
		product{false, a.W, b.Y}, product{true, a.X, b.Z},
		product{false, a.Y, b.W}, product{false, a.Z, b.X})
	accumulate(z, tmp,
		product{false, a.W, b.Z}, product{false, a.X, b.Y},
		product{true, a.Y, b.X}, product{false, a.Z, b.W})

	copy(dst.W, w)
	copy(dst.X, x)
	copy(dst.Y, y)
	copy(dst.Z, z)

	return nil
}

// Dot stores the four-dimensional dot products of a[n] and b[n] in dst.
func Dot(dst []float64, a, b Quats) error {
	if err := sameLen(a, b); err != nil {
		return err
	}

	if len(dst) != a.Len() {
		return lengthError(len(dst), a.Len())
	}

	n := len(dst)
	if n == 0 {
		return nil
	}

	s, buf := getScratch(n, 2)
	defer putScratch(buf)

	accumulate(s[0], s[1],
		product{false, a.W, b.W}, product{false, a.X, b.X},
		product{false, a.Y, b.Y}, product{false, a.Z, b.Z})
	copy(dst, s[0])

	return nil
}

// AbsSquared stores |a[n]|² in dst.
func AbsSquared(dst []float64, a Quats) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if len(dst) != a.Len() {
		return lengthError(len(dst), a.Len())
	}

	s, buf := getScratch(len(dst), 1)
	defer putScratch(buf)

	vecmath.Power(s[0], a.W, a.X)
	vecmath.Power(dst, a.Y, a.Z)
	vecmath.AddBlockInPlace(dst, s[0])

	return nil
}

// Abs stores |a[n]| in dst.
func Abs(dst []float64, a Quats) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if len(dst) != a.Len() {
		return lengthError(len(dst), a.Len())
	}

	s, buf := getScratch(len(dst), 2)
	defer putScratch(buf)

	vecmath.Magnitude(s[0], a.W, a.X)
	vecmath.Magnitude(s[1], a.Y, a.Z)
	vecmath.Magnitude(dst, s[0], s[1])

	return nil
}

// Normalize stores a[n]/|a[n]| in dst. Zero quaternions stay zero.
func Normalize(dst, a Quats) error {
	if err := sameLen(dst, a); err != nil {
		return err
	}

	s, buf := getScratch(a.Len(), 1)
	defer putScratch(buf)

	inv := s[0]
	if err := Abs(inv, a); err != nil {
		return err
	}

	for i, v := range inv {
		if v != 0 {
			inv[i] = 1 / v
		}
	}

	for c, l := range dst.lanes() {
		vecmath.MulBlock(l, a.lanes()[c], inv)
	}

	return nil
}

// Apply stores f(a[n]) in dst, for instance with f = quat.Exp[float64].
func Apply(dst, a Quats, f func(quat.Quat[float64]) quat.Quat[float64]) error {
	if err := sameLen(dst, a); err != nil {
		return err
	}

	for i := range a.Len() {
		dst.Set(i, f(a.At(i)))
	}

	return nil
}

// Sum returns the sum of all quaternions in a.
func Sum(a Quats) quat.Quat[float64] {
	return quat.Quat[float64]{W: floats.Sum(a.W), X: floats.Sum(a.X), Y: floats.Sum(a.Y), Z: floats.Sum(a.Z)}
}

// Product returns the ordered product a[0]*a[1]*...; the identity for an
// empty batch.
func Product(a Quats) quat.Quat[float64] { return quat.Product(a.All()) }

// InnerProduct returns the sum of the dot products of a[n] and b[n], the
// Euclidean inner product of the batches seen as vectors in R^4N.
func InnerProduct(a, b Quats) (float64, error) {
	if err := sameLen(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for c, l := range a.lanes() {
		sum += floats.Dot(l, b.lanes()[c])
	}

	return sum, nil
}

// EqualApprox reports whether a and b have the same length and all
// components agree within tol, absolutely or relatively.
func EqualApprox(a, b Quats, tol float64) bool {
	if sameLen(a, b) != nil {
		return false
	}

	for c, l := range a.lanes() {
		if !floats.EqualApprox(l, b.lanes()[c], tol) {
			return false
		}
	}

	return true
}

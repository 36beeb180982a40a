//go:build fastmath

package scalar

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// Exp computes e**x using fast approximation.
// Non-finite inputs fall back to the standard library so IEEE edge cases
// keep their meaning.
func Exp[T Float](x T) T {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return T(math.Exp(v))
	}

	return T(approx.FastExp(v))
}

// Log computes ln(x) using fast approximation.
// Zero, negative and non-finite inputs use the standard library.
func Log[T Float](x T) T {
	v := float64(x)
	if !(v > 0) || math.IsInf(v, 0) {
		return T(math.Log(v))
	}

	return T(approx.FastLog(v))
}

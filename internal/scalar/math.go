//go:build !fastmath

package scalar

import "math"

// Exp computes e**x using standard library math.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}

// Log computes ln(x) using standard library math.
func Log[T Float](x T) T {
	return T(math.Log(float64(x)))
}

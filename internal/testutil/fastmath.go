//go:build fastmath

package testutil

// FastMath reports whether the fastmath build tag is set.
const FastMath = true

// FastMathEps is the relative tolerance for exp and log based results in
// fastmath builds.
const FastMathEps = 1e-4

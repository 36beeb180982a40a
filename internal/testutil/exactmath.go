//go:build !fastmath

package testutil

// FastMath reports whether the fastmath build tag is set.
const FastMath = false


package quat

import "errors"

var (
	// ErrNotNormalized is returned by checked constructors when an axis or
	// quaternion that must have unit length does not.
	ErrNotNormalized = errors.New("quat: not normalized")
	// ErrInvalidMatrix is returned when a 2x2 complex matrix does not have
	// the structure of a quaternion.
	ErrInvalidMatrix = errors.New("quat: matrix does not represent a quaternion")
	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("quat: invalid syntax")
)

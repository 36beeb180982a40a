// Package quat provides a quaternion algebra that works across several
// independent quaternion representations.
//
// Any type with R, I, J and K accessors satisfies [Quaternion] and can be
// lifted into the package's own value type [Quat] with [From], or turned
// into another representation with [Convert]. Go arrays, complex numbers
// and plain floats are covered by the small wrapper types [Array], [Cplx]
// and [FromScalar]; third-party representations live in the adapter
// packages.
//
// # Functions
//
// The transcendental functions treat a quaternion q = w + v as a complex
// number in the plane spanned by 1 and the unit axis u = v/|v|. Every
// result lies in that same plane. When v is zero the axis i is used, so
// on the complex sub-algebra the results agree with [math/cmplx]:
//
//	Exp, Ln, Log, Sqrt, PowI, PowU, PowF, PowQ
//	Sin, Cos, SinCos, Tan, Cot, Sec, Csc
//	Sinh, Cosh, Tanh, Coth, Sech, Csch
//	Asin, Acos, Atan, Acot, Asec, Acsc
//	Asinh, Acosh, Atanh, Acoth, Asech, Acsch
//	Gamma, LnGamma
//
// Degenerate inputs never panic. Poles and undefined values produce the
// IEEE 754 infinities and NaN.
//
// # Rotations
//
// Unit quaternions describe rotations in three dimensions. See
// [FromAxisAngle], [FromEuler], [RotateVector], [Slerp] and the matrix
// conversions [ToMatrix3] and [FromMatrix3]. The unit sub-package keeps
// the unit norm as a type-level invariant.
//
// # Text
//
// [Quat.String] renders quaternions as "1 + 2i - 3j + 4k"; [Parse] reads
// the same notation back. The layout is tunable with [Format].
package quat

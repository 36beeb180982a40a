package quat

import (
	"strconv"

	"github.com/cwbudde/algo-quat/internal/scalar"
)

// Format selects how quaternions are rendered as text. The zero value
// gives the default layout "1 + 2i - 3j + 4k".
type Format uint8

const (
	// FormatSpaceFirst separates a leading minus sign: "- 1 + 2i".
	FormatSpaceFirst Format = 1 << iota
	// FormatNoSpacing drops the blanks around signs: "1+2i-3j".
	FormatNoSpacing
	// FormatShowOnes prints unit coefficients: "1i" instead of "i".
	FormatShowOnes
	// FormatExplicitReal suffixes the real part with "r".
	FormatExplicitReal
	// FormatExplicitPlus prefixes a positive leading term with "+".
	FormatExplicitPlus
	// FormatShowZeros prints zero components instead of omitting them.
	FormatShowZeros
)

// With returns f with the flags of o set.
func (f Format) With(o Format) Format { return f | o }

// Without returns f with the flags of o cleared.
func (f Format) Without(o Format) Format { return f &^ o }

// Has reports whether every flag of o is set in f.
func (f Format) Has(o Format) bool { return f&o == o }

// String renders q in the default format.
func (q Quat[T]) String() string { return FormatString(q, 0) }

// FormatString renders q with the flags in f.
func FormatString[T Float](q Quat[T], f Format) string {
	return string(AppendFormat(nil, q, f))
}

// AppendFormat appends the text form of q to dst and returns the extended
// buffer. Zero components are left out unless FormatShowZeros is set; the
// zero quaternion is "0". Non-finite components print as Inf and NaN, and
// NaN always takes a plus sign.
func AppendFormat[T Float](dst []byte, q Quat[T], f Format) []byte {
	p := printer[T]{buf: dst, f: f}

	switch {
	case q.W != 0 || f.Has(FormatShowZeros):
		p.scalarTerm(q.W)
		p.next(q.X, 'i')
		p.next(q.Y, 'j')
		p.next(q.Z, 'k')
	case q.X != 0:
		p.first(q.X, 'i')
		p.next(q.Y, 'j')
		p.next(q.Z, 'k')
	case q.Y != 0:
		p.first(q.Y, 'j')
		p.next(q.Z, 'k')
	case q.Z != 0:
		p.first(q.Z, 'k')
	default:
		p.buf = append(p.buf, '0')
	}

	return p.buf
}

type printer[T Float] struct {
	buf []byte
	f   Format
}

// num writes v without its sign. Infinities print as "Inf" so the sign
// comes only from the surrounding term.
func (p *printer[T]) num(v T) {
	switch {
	case scalar.IsNaN(v):
		p.buf = append(p.buf, "NaN"...)
		return
	case scalar.IsInf(v):
		p.buf = append(p.buf, "Inf"...)
		return
	}

	bits := 64
	if scalar.Is32[T]() {
		bits = 32
	}

	p.buf = strconv.AppendFloat(p.buf, float64(v), 'g', -1, bits)
}

// lead writes the sign of a leading term.
func (p *printer[T]) lead(v T) {
	switch {
	case v < 0 && p.f.Has(FormatSpaceFirst):
		p.buf = append(p.buf, "- "...)
	case v < 0:
		p.buf = append(p.buf, '-')
	case p.f.Has(FormatExplicitPlus) && p.f.Has(FormatSpaceFirst):
		p.buf = append(p.buf, "+ "...)
	case p.f.Has(FormatExplicitPlus):
		p.buf = append(p.buf, '+')
	}
}

func (p *printer[T]) scalarTerm(v T) {
	if p.f.Has(FormatExplicitReal) {
		p.first(v, 'r')
		return
	}

	p.lead(v)
	p.num(scalar.Abs(v))
}

func (p *printer[T]) first(v T, unit byte) {
	p.lead(v)
	p.coef(scalar.Abs(v), unit)
}

func (p *printer[T]) next(v T, unit byte) {
	if v == 0 && !p.f.Has(FormatShowZeros) {
		return
	}

	sign := byte('+')
	if v < 0 {
		sign = '-'
	}

	if p.f.Has(FormatNoSpacing) {
		p.buf = append(p.buf, sign)
	} else {
		p.buf = append(p.buf, ' ', sign, ' ')
	}

	p.coef(scalar.Abs(v), unit)
}

// coef writes a non-negative coefficient followed by its unit, leaving
// out a coefficient of one unless FormatShowOnes is set.
func (p *printer[T]) coef(v T, unit byte) {
	if v != 1 || p.f.Has(FormatShowOnes) {
		p.num(v)
	}

	p.buf = append(p.buf, unit)
}

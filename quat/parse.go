package quat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-quat/internal/scalar"
)

// Parse reads a quaternion written as a signed sum of terms, each a number
// followed by an optional unit r, i, j or k (either case). A unit without a
// number has coefficient one; a number without a unit is real. Repeated
// units accumulate, so "1 + i + 2i" is 1 + 3i. Blanks between tokens are
// ignored. The words Inf and NaN (either case) are accepted as numbers, so
// everything AppendFormat produces parses back to the same value.
//
// Errors wrap ErrSyntax, and the strconv error when a number is malformed.
func Parse[T Float](s string) (Quat[T], error) {
	bits := 64
	if scalar.Is32[T]() {
		bits = 32
	}

	var comp [4]float64

	sign, signed, terms := 1.0, false, 0

	for i := 0; i < len(s); {
		c := s[i]

		switch {
		case isBlank(c):
			i++

			continue
		case c == '+' || c == '-':
			if signed {
				return Quat[T]{}, fmt.Errorf("%w: %q: repeated sign at offset %d", ErrSyntax, s, i)
			}

			signed = true
			if c == '-' {
				sign = -1
			}

			i++

			continue
		}

		if terms > 0 && !signed {
			return Quat[T]{}, fmt.Errorf("%w: %q: missing sign at offset %d", ErrSyntax, s, i)
		}

		j := scanNumber(s, i)
		if j == i {
			j = scanWord(s, i)
		}

		v := 1.0
		if j > i {
			f, err := strconv.ParseFloat(s[i:j], bits)
			if err != nil {
				return Quat[T]{}, fmt.Errorf("%w: %w", ErrSyntax, err)
			}

			v = f
		}

		idx := 0
		if j < len(s) {
			if u := unitIndex(s[j]); u >= 0 {
				idx = u
				j++
			}
		}

		if j == i || (j < len(s) && !isBlank(s[j]) && s[j] != '+' && s[j] != '-') {
			return Quat[T]{}, fmt.Errorf("%w: %q: unexpected character at offset %d", ErrSyntax, s, j)
		}

		comp[idx] += sign * v
		sign, signed = 1, false
		terms++
		i = j
	}

	if terms == 0 || signed {
		return Quat[T]{}, fmt.Errorf("%w: %q: incomplete expression", ErrSyntax, s)
	}

	return Quat[T]{T(comp[0]), T(comp[1]), T(comp[2]), T(comp[3])}, nil
}

// MustParse is Parse that panics on error. It is intended for literals in
// tests and examples.
func MustParse[T Float](s string) Quat[T] {
	q, err := Parse[T](s)
	if err != nil {
		panic(err)
	}

	return q
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// scanNumber returns the end of the decimal number starting at s[i],
// including an exponent with its sign.
func scanNumber(s string, i int) int {
	j := i
	for ; j < len(s); j++ {
		c := s[j]

		switch {
		case c >= '0' && c <= '9', c == '.':
		case (c == 'e' || c == 'E') && j > i:
			if j+1 < len(s) && (s[j+1] == '+' || s[j+1] == '-') {
				j++
			}
		default:
			return j
		}
	}

	return j
}

// scanWord returns the end of an Inf or NaN starting at s[i], or i.
func scanWord(s string, i int) int {
	if len(s)-i < 3 {
		return i
	}

	w := s[i : i+3]
	if strings.EqualFold(w, "inf") || strings.EqualFold(w, "nan") {
		return i + 3
	}

	return i
}

func unitIndex(c byte) int {
	switch c {
	case 'r', 'R':
		return 0
	case 'i', 'I':
		return 1
	case 'j', 'J':
		return 2
	case 'k', 'K':
		return 3
	}

	return -1
}

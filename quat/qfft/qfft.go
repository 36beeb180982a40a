// Package qfft implements the discrete quaternion Fourier transform of a
// sequence of float64 quaternions.
//
// With the axis i a quaternion splits as f = (w + x i) + (y + z i) j, the
// symplectic decomposition into two complex numbers of span{1, i}. Since
// exp(-iθ) commutes with the first part and j exp(-iθ) = exp(iθ) j, each
// side of the transform reduces to two complex FFTs:
//
//	left:  F = FFT(z1) + FFT(z2) j
//	right: F = FFT(z1) + N IFFT(z2) j
//
// Any other axis μ is handled by conjugating with the rotation that takes
// i to μ. The inverse is normalized, so Inverse(Forward(f)) = f.
package qfft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-quat/quat"
)

var (
	// ErrInvalidLength is returned by New for non-positive lengths.
	ErrInvalidLength = errors.New("qfft: invalid transform length")
	// ErrLengthMismatch is returned when a buffer does not match the
	// transform length.
	ErrLengthMismatch = errors.New("qfft: buffer length mismatch")
)

// Transform is a planned quaternion DFT of fixed length. It keeps scratch
// buffers and is not safe for concurrent use.
type Transform struct {
	n    int
	cfg  Config
	plan *algofft.Plan[complex128]

	// basis rotates i onto the axis; identity for the axis i.
	basis quat.Quat[float64]

	z1, z2, tmp []complex128
}

// New plans a transform of length n.
func New(n int, opts ...Option) (*Transform, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("qfft: failed to create FFT plan: %w", err)
	}

	cfg := ApplyOptions(opts...)

	return &Transform{
		n:     n,
		cfg:   cfg,
		plan:  plan,
		basis: quat.RotationFromTo[float64](quat.Vec3[float64]{1, 0, 0}, cfg.Axis),
		z1:    make([]complex128, n),
		z2:    make([]complex128, n),
		tmp:   make([]complex128, n),
	}, nil
}

// Len returns the transform length.
func (t *Transform) Len() int { return t.n }

// Config returns the settings the transform was planned with.
func (t *Transform) Config() Config { return t.cfg }

// Forward stores the transform of src in dst. dst and src may be the same
// slice.
func (t *Transform) Forward(dst, src []quat.Quat[float64]) error {
	return t.run(dst, src, false)
}

// Inverse stores the inverse transform of src in dst, including the 1/N
// normalization. dst and src may be the same slice.
func (t *Transform) Inverse(dst, src []quat.Quat[float64]) error {
	return t.run(dst, src, true)
}

func (t *Transform) run(dst, src []quat.Quat[float64], inverse bool) error {
	if len(dst) != t.n || len(src) != t.n {
		return fmt.Errorf("%w: dst %d, src %d, want %d", ErrLengthMismatch, len(dst), len(src), t.n)
	}

	b, bc := t.basis, t.basis.Conj()

	for i, q := range src {
		q = bc.Mul(q).Mul(b)
		t.z1[i] = complex(q.W, q.X)
		t.z2[i] = complex(q.Y, q.Z)
	}

	// z1 follows the kernel direction on both sides; on the right side z2
	// sees the conjugate kernel.
	flip := t.cfg.Side == Right

	if err := t.step(t.z1, inverse); err != nil {
		return err
	}

	if err := t.step(t.z2, inverse != flip); err != nil {
		return err
	}

	if flip {
		s := complex(float64(t.n), 0)
		if inverse {
			s = 1 / s
		}

		for i := range t.z2 {
			t.z2[i] *= s
		}
	}

	for i := range dst {
		q := quat.Quat[float64]{W: real(t.z1[i]), X: imag(t.z1[i]), Y: real(t.z2[i]), Z: imag(t.z2[i])}
		dst[i] = b.Mul(q).Mul(bc)
	}

	return nil
}

// step replaces z by its FFT, or by its inverse FFT including the 1/N
// normalization.
func (t *Transform) step(z []complex128, inverse bool) error {
	var err error
	if inverse {
		err = t.plan.Inverse(t.tmp, z)
	} else {
		err = t.plan.Forward(t.tmp, z)
	}

	if err != nil {
		return fmt.Errorf("qfft: %w", err)
	}

	copy(z, t.tmp)

	return nil
}

// Package batch applies quaternion operations to many float64 quaternions
// at once.
//
// Quaternions are stored as four component lanes (structure of arrays), so
// that the Hamilton product and the norms reduce to element-wise block
// kernels from algo-vecmath, which select SIMD implementations (AVX2, SSE2,
// NEON) when the CPU supports them. Reductions use gonum's floats package.
//
// Unless stated otherwise a destination may alias any of the sources.
package batch

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/cwbudde/algo-quat/quat"
)

// ErrLengthMismatch is returned when lanes or batches differ in length.
var ErrLengthMismatch = errors.New("batch: length mismatch")

// Quats holds quaternions as four lanes of equal length: element n is
// W[n] + X[n]i + Y[n]j + Z[n]k.
type Quats struct {
	W, X, Y, Z []float64
}

// Make returns a batch of n zero quaternions.
func Make(n int) Quats {
	buf := make([]float64, 4*n)

	return Quats{W: buf[:n:n], X: buf[n : 2*n : 2*n], Y: buf[2*n : 3*n : 3*n], Z: buf[3*n:]}
}

// FromSlice copies qs into a new batch.
func FromSlice[Q quat.Quaternion[float64]](qs []Q) Quats {
	b := Make(len(qs))
	for i, q := range qs {
		b.Set(i, q)
	}

	return b
}

// Len returns the number of quaternions in b.
func (b Quats) Len() int { return len(b.W) }

// Validate returns ErrLengthMismatch unless all four lanes have the same
// length.
func (b Quats) Validate() error {
	n := len(b.W)
	if len(b.X) != n || len(b.Y) != n || len(b.Z) != n {
		return fmt.Errorf("%w: lanes %d/%d/%d/%d", ErrLengthMismatch, n, len(b.X), len(b.Y), len(b.Z))
	}

	return nil
}

// At returns element i.
func (b Quats) At(i int) quat.Quat[float64] {
	return quat.Quat[float64]{W: b.W[i], X: b.X[i], Y: b.Y[i], Z: b.Z[i]}
}

// Set stores q at element i.
func (b Quats) Set(i int, q quat.Quaternion[float64]) {
	b.W[i], b.X[i], b.Y[i], b.Z[i] = q.R(), q.I(), q.J(), q.K()
}

// ToSlice copies b into a slice of quaternions.
func (b Quats) ToSlice() []quat.Quat[float64] {
	out := make([]quat.Quat[float64], b.Len())
	for i := range out {
		out[i] = b.At(i)
	}

	return out
}

// All returns an iterator over the elements of b in order.
func (b Quats) All() iter.Seq[quat.Quat[float64]] {
	return func(yield func(quat.Quat[float64]) bool) {
		for i := range b.Len() {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}

func (b Quats) lanes() [4][]float64 { return [4][]float64{b.W, b.X, b.Y, b.Z} }

// sameLen checks that every batch is valid and as long as the first.
func sameLen(bs ...Quats) error {
	for _, b := range bs {
		if err := b.Validate(); err != nil {
			return err
		}

		if b.Len() != bs[0].Len() {
			return lengthError(b.Len(), bs[0].Len())
		}
	}

	return nil
}

func lengthError(got, want int) error {
	return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, got, want)
}

// scratch holds pooled lane memory for kernels that cannot write into
// their destination directly.
type scratch struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{} },
}

// getScratch returns k lanes of length n backed by pooled memory.
func getScratch(n, k int) ([][]float64, *scratch) {
	buf := scratchPool.Get().(*scratch)
	if need := n * k; cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	out := make([][]float64, k)
	for i := range out {
		out[i] = buf.data[i*n : (i+1)*n : (i+1)*n]
	}

	return out, buf
}

func putScratch(buf *scratch) {
	scratchPool.Put(buf)
}

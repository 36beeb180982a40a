package testutil

import (
	"math/rand"
)

// DeterministicComponents returns n quaternions as [r, i, j, k] with
// components drawn uniformly from [-amplitude, amplitude) using a fixed
// seed.
func DeterministicComponents(seed int64, amplitude float64, n int) [][4]float64 {
	out := make([][4]float64, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		for c := range out[i] {
			out[i][c] = (rng.Float64()*2 - 1) * amplitude
		}
	}

	return out
}

// Lanes splits quaternion components into four slices, one per component.
func Lanes(qs [][4]float64) (w, x, y, z []float64) {
	w = make([]float64, len(qs))
	x = make([]float64, len(qs))
	y = make([]float64, len(qs))
	z = make([]float64, len(qs))

	for i, q := range qs {
		w[i], x[i], y[i], z[i] = q[0], q[1], q[2], q[3]
	}

	return w, x, y, z
}

// Impulse returns n zero quaternions with value at position pos.
func Impulse(n, pos int, value [4]float64) [][4]float64 {
	out := make([][4]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = value
	}

	return out
}

package quat

import "iter"

// Sum adds every quaternion yielded by seq. The sum of nothing is zero.
func Sum[T Float](seq iter.Seq[Quat[T]]) Quat[T] {
	var acc Quat[T]
	for q := range seq {
		acc = acc.Add(q)
	}

	return acc
}

// Product multiplies the quaternions yielded by seq from left to right.
// The product of nothing is the identity. Iteration stops as soon as the
// running product is exactly zero.
func Product[T Float](seq iter.Seq[Quat[T]]) Quat[T] {
	acc := Identity[T]()
	for q := range seq {
		acc = acc.Mul(q)
		if acc.IsZero() {
			break
		}
	}

	return acc
}

// Values yields its arguments in order, for use with Sum and Product.
// Unlike slices.Values it takes the quaternions as a variadic list.
func Values[T Float](qs ...Quat[T]) iter.Seq[Quat[T]] {
	return func(yield func(Quat[T]) bool) {
		for _, q := range qs {
			if !yield(q) {
				return
			}
		}
	}
}

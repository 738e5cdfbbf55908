package vector

import "iter"

// All returns an iterator over index-value pairs of the live elements, front
// to back. Mutating v during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.live()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

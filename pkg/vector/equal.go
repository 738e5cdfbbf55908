package vector

// Equal reports whether a and b hold the same number of elements and the
// elements compare equal index by index. Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}

	as, bs := a.live(), b.live()
	for i := range as {
		if !eq(as[i], bs[i]) {
			return false
		}
	}

	return true
}

// Swap exchanges the contents, sizes and capacities of a and b in O(1).
// Iterators follow their buffer to the other vector.
func Swap[T any](a, b *Vector[T]) {
	a.buf, b.buf = b.buf, a.buf
	a.size, b.size = b.size, a.size
}

// Swap exchanges the contents of v and other. See [Swap].
func (v *Vector[T]) Swap(other *Vector[T]) { Swap(v, other) }

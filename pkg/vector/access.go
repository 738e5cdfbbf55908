package vector

import "fmt"

// Front returns the first element, or [ErrOutOfRange] if v is empty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty vector", ErrOutOfRange)
	}

	return v.buf.slots[0], nil
}

// Back returns the last element, or [ErrOutOfRange] if v is empty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty vector", ErrOutOfRange)
	}

	return v.buf.slots[v.size-1], nil
}

// At returns the element at index i, or [ErrOutOfRange] if i is outside
// [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: at index %d, size %d", ErrOutOfRange, i, v.size)
	}

	return v.buf.slots[i], nil
}

// SetAt replaces the element at index i, or returns [ErrOutOfRange] if i is
// outside [0, Len()).
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: set at index %d, size %d", ErrOutOfRange, i, v.size)
	}

	v.buf.slots[i] = x

	return nil
}

// Index returns the slot at index i without checking it against Len().
// Slots in [Len(), Cap()) hold stale or zero values. Indexing at or beyond
// Cap() panics.
func (v *Vector[T]) Index(i int) T { return v.slots()[i] }

// Ref returns a pointer to the slot at index i without checking it against
// Len(). The pointer is only meaningful until the next reallocation.
func (v *Vector[T]) Ref(i int) *T { return &v.slots()[i] }

// SetIndex stores x in the slot at index i without checking it against
// Len().
func (v *Vector[T]) SetIndex(i int, x T) { v.slots()[i] = x }

// Data returns the live elements. The slice aliases the buffer and is only
// valid until the next structural mutation.
func (v *Vector[T]) Data() []T { return v.live() }

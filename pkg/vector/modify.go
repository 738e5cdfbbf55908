package vector

import (
	"fmt"
	"slices"
)

// Clear removes all live elements. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.size = 0
}

// PushBack appends x, growing the buffer if it is full. Amortized O(1).
func (v *Vector[T]) PushBack(x T) {
	if v.full() {
		v.grow()
	}

	v.buf.slots[v.size] = x
	v.size++
}

// PushFront prepends x, shifting every live element one slot right. O(n).
func (v *Vector[T]) PushFront(x T) {
	if v.full() {
		v.grow()
	}

	v.openGap(0, 1)
	v.buf.slots[0] = x
}

// PopBack removes the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}

	v.size--

	var zero T
	v.buf.slots[v.size] = zero
}

// PopFront removes the first element, shifting the rest one slot left.
// It does nothing on an empty vector.
func (v *Vector[T]) PopFront() {
	if v.size == 0 {
		return
	}

	v.closeGap(0, 1)
}

// Insert inserts x before pos and returns an iterator to it.
//
// pos must lie in [Begin, End] of the current buffer, otherwise
// [ErrOutOfRange] is returned and v is unchanged. A full vector grows by
// the implicit policy. The returned iterator is computed after any
// reallocation; pos itself may be stale afterwards.
func (v *Vector[T]) Insert(pos Position[T], x T) (Iterator[T], error) {
	off, err := v.offsetOf("insert", pos.iterator(), v.size)
	if err != nil {
		return Iterator[T]{}, err
	}

	v.makeRoom(1)
	v.openGap(off, 1)
	v.buf.slots[off] = x

	return Iterator[T]{buf: v.buf, pos: off}, nil
}

// InsertValues inserts values before pos, in order, and returns an iterator
// to the first inserted element (pos's offset if values is empty).
//
// When the values do not fit, the buffer is reserved to Cap()+len(values)
// (or grown by the implicit policy for a single value). values may alias v.
func (v *Vector[T]) InsertValues(pos Position[T], values ...T) (Iterator[T], error) {
	off, err := v.offsetOf("insert", pos.iterator(), v.size)
	if err != nil {
		return Iterator[T]{}, err
	}

	v.insertAt(off, values)

	return Iterator[T]{buf: v.buf, pos: off}, nil
}

// InsertRange inserts a copy of [first, last) before pos and returns an
// iterator to the first inserted element.
//
// The source range may come from v itself, in which case it must end at or
// before End. Returns [ErrOutOfRange] if pos is invalid for v or the range is
// malformed; v is unchanged in that case.
func (v *Vector[T]) InsertRange(pos, first, last Position[T]) (Iterator[T], error) {
	off, err := v.offsetOf("insert", pos.iterator(), v.size)
	if err != nil {
		return Iterator[T]{}, err
	}

	src, err := v.sourceRange("insert", first.iterator(), last.iterator())
	if err != nil {
		return Iterator[T]{}, err
	}

	v.insertAt(off, src)

	return Iterator[T]{buf: v.buf, pos: off}, nil
}

func (v *Vector[T]) insertAt(off int, values []T) {
	if len(values) == 0 {
		return
	}

	// Shifting below may overwrite values when they alias the live range.
	src := slices.Clone(values)

	v.makeRoom(len(src))
	v.openGap(off, len(src))
	copy(v.buf.slots[off:], src)
}

// Erase removes the element at pos and returns an iterator to the element
// that takes its place (End if pos was the last element).
//
// pos must lie in [Begin, End); otherwise [ErrOutOfRange] is returned.
func (v *Vector[T]) Erase(pos Position[T]) (Iterator[T], error) {
	if v.size == 0 {
		return Iterator[T]{}, fmt.Errorf("%w: erase on empty vector", ErrOutOfRange)
	}

	off, err := v.offsetOf("erase", pos.iterator(), v.size-1)
	if err != nil {
		return Iterator[T]{}, err
	}

	v.closeGap(off, 1)

	return Iterator[T]{buf: v.buf, pos: off}, nil
}

// EraseRange removes the elements in [first, last) and returns an iterator
// at first's offset.
//
// Both ends must lie in [Begin, End] and first must not be after last;
// otherwise [ErrOutOfRange] is returned and v is unchanged.
func (v *Vector[T]) EraseRange(first, last Position[T]) (Iterator[T], error) {
	lo, err := v.offsetOf("erase", first.iterator(), v.size)
	if err != nil {
		return Iterator[T]{}, err
	}

	hi, err := v.offsetOf("erase", last.iterator(), v.size)
	if err != nil {
		return Iterator[T]{}, err
	}

	if lo > hi {
		return Iterator[T]{}, fmt.Errorf("%w: erase range first %d after last %d", ErrOutOfRange, lo, hi)
	}

	v.closeGap(lo, hi-lo)

	return Iterator[T]{buf: v.buf, pos: lo}, nil
}

// Assign replaces the contents with count copies of x.
//
// If count <= Len() the buffer is reused; otherwise v is reallocated to
// exactly count slots. It panics if count is negative.
func (v *Vector[T]) Assign(count int, x T) {
	if count < 0 {
		panic("vector: negative count")
	}

	v.resetTo(count)

	for i := range v.live() {
		v.buf.slots[i] = x
	}
}

// AssignValues replaces the contents with a copy of values, using the same
// reuse-or-reallocate rule as [Vector.Assign]. values may alias v.
func (v *Vector[T]) AssignValues(values ...T) {
	if len(values) <= v.size {
		copy(v.slots(), values)
		clear(v.slots()[len(values):v.size])
		v.size = len(values)

		return
	}

	// The old buffer stays reachable through values until the copy is done.
	nb := newBuffer[T](len(values))
	copy(nb.slots, values)
	v.buf = nb
	v.size = len(values)
}

// AssignRange replaces the contents with a copy of [first, last). A range
// over v itself must end at or before End.
//
// Returns [ErrOutOfRange] if the range is malformed; v is unchanged.
func (v *Vector[T]) AssignRange(first, last Position[T]) error {
	src, err := v.sourceRange("assign", first.iterator(), last.iterator())
	if err != nil {
		return err
	}

	v.AssignValues(src...)

	return nil
}

// sourceRange is rangeOf for ranges passed to v's own methods. A range over
// v's current buffer must also end at or before End.
func (v *Vector[T]) sourceRange(op string, first, last Iterator[T]) ([]T, error) {
	src, err := rangeOf(first, last)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if first.buf == v.buf && last.pos > v.size {
		return nil, fmt.Errorf("%w: %s range [%d, %d) past end %d", ErrOutOfRange, op, first.pos, last.pos, v.size)
	}

	return src, nil
}

// resetTo makes v hold exactly count (unspecified) live slots, reusing the
// buffer when count <= Len().
func (v *Vector[T]) resetTo(count int) {
	if count <= v.size {
		clear(v.slots()[count:v.size])
		v.size = count

		return
	}

	v.buf = newBuffer[T](count)
	v.size = count
}

// openGap shifts [off, size) right by n. The caller guarantees room.
func (v *Vector[T]) openGap(off, n int) {
	s := v.buf.slots
	copy(s[off+n:v.size+n], s[off:v.size])
	v.size += n
}

// closeGap shifts [off+n, size) left by n and zeroes the vacated tail.
func (v *Vector[T]) closeGap(off, n int) {
	if n == 0 {
		return
	}

	s := v.buf.slots
	copy(s[off:], s[off+n:v.size])
	clear(s[v.size-n : v.size])
	v.size -= n
}

package vector

import (
	"fmt"
	"iter"
)

// DefaultCapacity is the capacity of the first implicit allocation of an
// empty vector. Later implicit growth doubles the capacity.
const DefaultCapacity = 10

// buffer is one allocation of slots. A new buffer is created on every
// reallocation, so a *buffer identifies a generation of storage.
type buffer[T any] struct {
	slots []T
}

func newBuffer[T any](n int) *buffer[T] {
	if n == 0 {
		return nil
	}

	return &buffer[T]{slots: make([]T, n)}
}

// Vector is a resizable sequence stored in one contiguous buffer.
//
// The zero value is an empty vector with no storage, ready to use.
// A Vector must not be copied by value after first use; use [Vector.Clone]
// or [Vector.CopyFrom].
type Vector[T any] struct {
	buf  *buffer[T]
	size int
}

// New returns a vector holding n zero values with Cap() == n.
// New(0) has no storage. It panics if n is negative.
func New[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative size")
	}

	return &Vector[T]{buf: newBuffer[T](n), size: n}
}

// Of returns a vector holding a copy of values, sized exactly to them.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{buf: newBuffer[T](len(values)), size: len(values)}
	copy(v.slots(), values)

	return v
}

// FromRange returns a vector holding a copy of the elements in
// [first, last), sized exactly to them.
//
// Returns [ErrOutOfRange] if first and last belong to different buffers,
// first is after last, or the range leaves the buffer. The owning vector is
// unknown here, so the range is bounded by capacity rather than Len(): like
// [Vector.Index], slots past End are copied as they are.
func FromRange[T any](first, last Position[T]) (*Vector[T], error) {
	src, err := rangeOf(first.iterator(), last.iterator())
	if err != nil {
		return nil, fmt.Errorf("from range: %w", err)
	}

	return Of(src...), nil
}

// FromSeq returns a vector holding the values yielded by seq, shrunk so that
// Cap() == Len().
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	for x := range seq {
		v.PushBack(x)
	}

	v.ShrinkToFit()

	return v
}

// Clone returns a deep copy of v with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{buf: newBuffer[T](v.Cap()), size: v.size}
	copy(c.slots(), v.live())

	return c
}

// CopyFrom replaces the contents of v with a copy of src.
//
// The existing buffer is reused when src fits in it; otherwise v is
// reallocated to exactly src.Len() slots.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}

	if src.size <= v.Cap() {
		slots := v.slots()
		copy(slots, src.live())

		if v.size > src.size {
			clear(slots[src.size:v.size])
		}

		v.size = src.size

		return
	}

	v.buf = newBuffer[T](src.size)
	copy(v.buf.slots, src.live())
	v.size = src.size
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v.buf == nil {
		return 0
	}

	return len(v.buf.slots)
}

// Empty reports whether v has no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Reserve grows the buffer to exactly n slots if n > Cap(). It never
// shrinks. Reallocation invalidates all iterators.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}

	v.reallocate(n)
}

// ShrinkToFit reallocates the buffer to exactly Len() slots if it has spare
// capacity.
func (v *Vector[T]) ShrinkToFit() {
	if v.Cap() > v.size {
		v.reallocate(v.size)
	}
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{buf: v.buf, pos: 0} }

// End returns an iterator one past the last live element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{buf: v.buf, pos: v.size} }

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] { return v.Begin().Const() }

// CEnd returns a read-only iterator one past the last live element.
func (v *Vector[T]) CEnd() ConstIterator[T] { return v.End().Const() }

// reallocate moves the live elements into a fresh buffer of n slots.
// n must be >= v.size.
func (v *Vector[T]) reallocate(n int) {
	nb := newBuffer[T](n)
	if nb != nil {
		copy(nb.slots, v.live())
	}

	v.buf = nb
}

// grow applies the implicit growth policy: DefaultCapacity from empty,
// doubling afterwards.
func (v *Vector[T]) grow() {
	if v.Cap() == 0 {
		v.reallocate(DefaultCapacity)
		return
	}

	v.reallocate(2 * v.Cap())
}

// makeRoom ensures n more elements fit. A single element grows by the
// implicit policy; more than one reserves Cap()+n.
func (v *Vector[T]) makeRoom(n int) {
	if v.size+n <= v.Cap() {
		return
	}

	if n == 1 {
		v.grow()
		return
	}

	v.reallocate(v.Cap() + n)
}

func (v *Vector[T]) full() bool { return v.size == v.Cap() }

func (v *Vector[T]) slots() []T {
	if v.buf == nil {
		return nil
	}

	return v.buf.slots
}

func (v *Vector[T]) live() []T { return v.slots()[:v.size] }

// offsetOf validates that it names a slot of v's current buffer in
// [0, limit] and returns its offset.
func (v *Vector[T]) offsetOf(op string, it Iterator[T], limit int) (int, error) {
	if it.buf != v.buf {
		return 0, fmt.Errorf("%w: %s with iterator from another buffer", ErrOutOfRange, op)
	}

	if it.pos < 0 || it.pos > limit {
		return 0, fmt.Errorf("%w: %s at offset %d, valid [0, %d]", ErrOutOfRange, op, it.pos, limit)
	}

	return it.pos, nil
}

// rangeOf returns the slots in [first, last) of their shared buffer. The
// result aliases that buffer. It is bounded by the buffer, not by any
// vector's size; see sourceRange.
func rangeOf[T any](first, last Iterator[T]) ([]T, error) {
	if first.buf != last.buf {
		return nil, fmt.Errorf("%w: range spans two buffers", ErrOutOfRange)
	}

	if first.pos > last.pos {
		return nil, fmt.Errorf("%w: range first %d after last %d", ErrOutOfRange, first.pos, last.pos)
	}

	var slots []T
	if first.buf != nil {
		slots = first.buf.slots
	}

	if first.pos < 0 || last.pos > len(slots) {
		return nil, fmt.Errorf("%w: range [%d, %d) outside buffer of %d slots", ErrOutOfRange, first.pos, last.pos, len(slots))
	}

	return slots[first.pos:last.pos], nil
}

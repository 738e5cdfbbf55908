package vector

import (
	"cmp"
	"fmt"
)

// Position is implemented by [Iterator] and [ConstIterator]. Vector methods
// that take a location accept either.
type Position[T any] interface {
	iterator() Iterator[T]
}

// Iterator is a random-access cursor on one slot of a vector's buffer.
//
// It holds no ownership of the buffer. After the vector reallocates, an
// Iterator keeps referring to the old buffer and the vector rejects it.
// Movement is unchecked: stepping outside [Begin, End] is the caller's
// responsibility, and dereferencing outside the buffer panics.
//
// The zero Iterator is the nil iterator; dereferencing it panics with
// [ErrNilIterator].
type Iterator[T any] struct {
	buf *buffer[T]
	pos int
}

func (it Iterator[T]) iterator() Iterator[T] { return it }

// Const returns a read-only view of it.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// Value returns the element it points to.
func (it Iterator[T]) Value() T { return *it.Ptr() }

// Ptr returns a pointer to the slot it points to.
func (it Iterator[T]) Ptr() *T {
	if it.buf == nil {
		panic(ErrNilIterator)
	}

	return &it.buf.slots[it.pos]
}

// Set stores x in the slot it points to.
func (it Iterator[T]) Set(x T) { *it.Ptr() = x }

// Offset returns the slot index it points to.
func (it Iterator[T]) Offset() int { return it.pos }

// IsNil reports whether it is the zero Iterator or points into an empty
// vector without storage.
func (it Iterator[T]) IsNil() bool { return it.buf == nil }

// Next returns an iterator one slot forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns an iterator one slot back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns an iterator n slots forward (backward if n is negative).
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns an iterator n slots back.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Inc moves it one slot forward.
func (it *Iterator[T]) Inc() { it.pos++ }

// Dec moves it one slot back.
func (it *Iterator[T]) Dec() { it.pos-- }

// Advance moves it n slots forward (backward if n is negative).
func (it *Iterator[T]) Advance(n int) { it.pos += n }

// Distance returns the signed number of slots from other to it.
// Only meaningful when both point into the same buffer.
func (it Iterator[T]) Distance(other Iterator[T]) int { return it.pos - other.pos }

// Compare orders iterators by slot position: -1, 0 or +1.
// Only meaningful when both point into the same buffer.
func (it Iterator[T]) Compare(other Iterator[T]) int { return cmp.Compare(it.pos, other.pos) }

// Less reports whether it is before other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// LessEqual reports whether it is not after other.
func (it Iterator[T]) LessEqual(other Iterator[T]) bool { return it.pos <= other.pos }

// Greater reports whether it is after other.
func (it Iterator[T]) Greater(other Iterator[T]) bool { return it.pos > other.pos }

// GreaterEqual reports whether it is not before other.
func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool { return it.pos >= other.pos }

// Equal reports whether it and other point to the same slot of the same
// buffer. It does not look at the elements; see [SameValue].
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.buf == other.buf && it.pos == other.pos
}

// String renders it as "[@ pos: value ]", or without the value when the
// position is outside the buffer.
func (it Iterator[T]) String() string {
	if it.buf == nil {
		return "[@ nil ]"
	}

	if it.pos < 0 || it.pos >= len(it.buf.slots) {
		return fmt.Sprintf("[@ %d ]", it.pos)
	}

	return fmt.Sprintf("[@ %d: %v ]", it.pos, it.buf.slots[it.pos])
}

// SameValue reports whether the elements a and b point to are equal,
// regardless of where they are. Both must be dereferenceable.
func SameValue[T comparable](a, b Position[T]) bool {
	return a.iterator().Value() == b.iterator().Value()
}

// ConstIterator is a read-only [Iterator].
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (c ConstIterator[T]) iterator() Iterator[T] { return c.it }

// Value returns the element c points to.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Offset returns the slot index c points to.
func (c ConstIterator[T]) Offset() int { return c.it.pos }

// Next returns a read-only iterator one slot forward.
func (c ConstIterator[T]) Next() ConstIterator[T] { return c.Add(1) }

// Prev returns a read-only iterator one slot back.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return c.Add(-1) }

// Add returns a read-only iterator n slots forward.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return c.it.Add(n).Const() }

// Sub returns a read-only iterator n slots back.
func (c ConstIterator[T]) Sub(n int) ConstIterator[T] { return c.it.Add(-n).Const() }

// Inc moves c one slot forward.
func (c *ConstIterator[T]) Inc() { c.it.Inc() }

// Dec moves c one slot back.
func (c *ConstIterator[T]) Dec() { c.it.Dec() }

// Advance moves c n slots forward (backward if n is negative).
func (c *ConstIterator[T]) Advance(n int) { c.it.Advance(n) }

// Distance returns the signed number of slots from other to c.
func (c ConstIterator[T]) Distance(other ConstIterator[T]) int { return c.it.Distance(other.it) }

// Compare orders read-only iterators by slot position.
func (c ConstIterator[T]) Compare(other ConstIterator[T]) int { return c.it.Compare(other.it) }

// Less reports whether c is before other.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }

// LessEqual reports whether c is not after other.
func (c ConstIterator[T]) LessEqual(other ConstIterator[T]) bool { return c.it.LessEqual(other.it) }

// Greater reports whether c is after other.
func (c ConstIterator[T]) Greater(other ConstIterator[T]) bool { return c.it.Greater(other.it) }

// GreaterEqual reports whether c is not before other.
func (c ConstIterator[T]) GreaterEqual(other ConstIterator[T]) bool { return c.it.GreaterEqual(other.it) }

// Equal reports whether c and other point to the same slot.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

func (c ConstIterator[T]) String() string { return c.it.String() }

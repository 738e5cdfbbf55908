// Package model provides a deliberately simple, offset-addressed state model
// of the vector package's publicly observable behavior.
//
// The model is intentionally easy to audit: it favors clarity over
// performance, tracks capacity as a plain number next to a Go slice, and
// addresses everything by offset instead of by iterator.
package model

import (
	"slices"

	"github.com/calvinalkan/vec/pkg/vector"
)

// State is the observable state of a vector.
type State[T any] struct {
	Values   []T
	Capacity int
}

// Vector is the model of a [vector.Vector].
type Vector[T any] struct {
	State State[T]
}

// New mirrors [vector.New].
func New[T any](n int) *Vector[T] {
	return &Vector[T]{State: State[T]{Values: make([]T, n), Capacity: n}}
}

// Of mirrors [vector.Of].
func Of[T any](values ...T) *Vector[T] {
	return &Vector[T]{State: State[T]{Values: slices.Clone(values), Capacity: len(values)}}
}

// Snapshot returns a copy of the observable state. Values is never nil so
// snapshots compare equal regardless of how the state was reached.
func (m *Vector[T]) Snapshot() State[T] {
	values := make([]T, len(m.State.Values))
	copy(values, m.State.Values)

	return State[T]{Values: values, Capacity: m.State.Capacity}
}

// Len returns the number of elements.
func (m *Vector[T]) Len() int { return len(m.State.Values) }

func (m *Vector[T]) grow() {
	if m.State.Capacity == 0 {
		m.State.Capacity = vector.DefaultCapacity
		return
	}

	m.State.Capacity *= 2
}

func (m *Vector[T]) makeRoom(n int) {
	if m.Len()+n <= m.State.Capacity {
		return
	}

	if n == 1 {
		m.grow()
		return
	}

	m.State.Capacity += n
}

// Reserve mirrors [vector.Vector.Reserve].
func (m *Vector[T]) Reserve(n int) {
	if n > m.State.Capacity {
		m.State.Capacity = n
	}
}

// ShrinkToFit mirrors [vector.Vector.ShrinkToFit].
func (m *Vector[T]) ShrinkToFit() { m.State.Capacity = m.Len() }

// Clear mirrors [vector.Vector.Clear].
func (m *Vector[T]) Clear() { m.State.Values = m.State.Values[:0] }

// PushBack mirrors [vector.Vector.PushBack].
func (m *Vector[T]) PushBack(x T) {
	m.makeRoom(1)
	m.State.Values = append(m.State.Values, x)
}

// PushFront mirrors [vector.Vector.PushFront].
func (m *Vector[T]) PushFront(x T) {
	m.makeRoom(1)
	m.State.Values = slices.Insert(m.State.Values, 0, x)
}

// PopBack mirrors [vector.Vector.PopBack].
func (m *Vector[T]) PopBack() {
	if m.Len() > 0 {
		m.State.Values = m.State.Values[:m.Len()-1]
	}
}

// PopFront mirrors [vector.Vector.PopFront].
func (m *Vector[T]) PopFront() {
	if m.Len() > 0 {
		m.State.Values = slices.Delete(m.State.Values, 0, 1)
	}
}

// Insert inserts values at offset off and returns off.
func (m *Vector[T]) Insert(off int, values ...T) (int, error) {
	if off < 0 || off > m.Len() {
		return 0, vector.ErrOutOfRange
	}

	if len(values) > 0 {
		m.makeRoom(len(values))
		m.State.Values = slices.Insert(m.State.Values, off, values...)
	}

	return off, nil
}

// Erase removes the element at offset off and returns off.
func (m *Vector[T]) Erase(off int) (int, error) {
	if off < 0 || off >= m.Len() {
		return 0, vector.ErrOutOfRange
	}

	m.State.Values = slices.Delete(m.State.Values, off, off+1)

	return off, nil
}

// EraseRange removes the elements in [lo, hi) and returns lo.
func (m *Vector[T]) EraseRange(lo, hi int) (int, error) {
	if lo < 0 || hi > m.Len() || lo > hi {
		return 0, vector.ErrOutOfRange
	}

	m.State.Values = slices.Delete(m.State.Values, lo, hi)

	return lo, nil
}

// Assign mirrors [vector.Vector.Assign].
func (m *Vector[T]) Assign(count int, x T) {
	values := make([]T, count)
	for i := range values {
		values[i] = x
	}

	m.AssignValues(values...)
}

// AssignValues mirrors [vector.Vector.AssignValues].
func (m *Vector[T]) AssignValues(values ...T) {
	if len(values) > m.Len() {
		m.State.Capacity = len(values)
	}

	m.State.Values = slices.Clone(values)
}

// At mirrors [vector.Vector.At].
func (m *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= m.Len() {
		var zero T
		return zero, vector.ErrOutOfRange
	}

	return m.State.Values[i], nil
}

// Front mirrors [vector.Vector.Front].
func (m *Vector[T]) Front() (T, error) { return m.At(0) }

// Back mirrors [vector.Vector.Back].
func (m *Vector[T]) Back() (T, error) { return m.At(m.Len() - 1) }

// CopyFrom mirrors [vector.Vector.CopyFrom].
func (m *Vector[T]) CopyFrom(src *Vector[T]) {
	if m == src {
		return
	}

	if src.Len() > m.State.Capacity {
		m.State.Capacity = src.Len()
	}

	m.State.Values = slices.Clone(src.State.Values)
}

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/vec/pkg/vector"
)

func Test_Iterator_Walks_Forward_And_Back_When_Moved(t *testing.T) {
	t.Parallel()

	v := vector.Of(10, 20, 30)

	var got []int
	for it := v.Begin(); it.Less(v.End()); it.Inc() {
		got = append(got, it.Value())
	}

	assert.Equal(t, []int{10, 20, 30}, got)

	got = got[:0]
	for it := v.End(); it.Greater(v.Begin()); {
		it.Dec()
		got = append(got, it.Value())
	}

	assert.Equal(t, []int{30, 20, 10}, got)
}

func Test_Iterator_Arithmetic_Matches_Offsets_When_Applied(t *testing.T) {
	t.Parallel()

	v := vector.Of(1, 2, 3, 4, 5)
	begin := v.Begin()

	it := begin.Add(3)
	assert.Equal(t, 4, it.Value())
	assert.Equal(t, 3, it.Distance(begin))
	assert.Equal(t, -3, begin.Distance(it))
	assert.Equal(t, 2, it.Sub(2).Value())
	assert.Equal(t, 5, it.Next().Value())
	assert.Equal(t, 3, it.Prev().Value())

	it.Advance(-3)
	assert.True(t, it.Equal(begin))

	assert.Equal(t, 5, v.End().Distance(v.Begin()))
}

func Test_Iterator_Ordering_Compares_Positions_When_Same_Buffer(t *testing.T) {
	t.Parallel()

	v := vector.Of(1, 1, 1)
	a, b := v.Begin(), v.Begin().Next()

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(a))
	assert.True(t, b.GreaterEqual(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))
}

func Test_Iterator_Equal_Is_Positional_When_Values_Match(t *testing.T) {
	t.Parallel()

	v := vector.Of(7, 7)
	a, b := v.Begin(), v.Begin().Next()

	assert.False(t, a.Equal(b), "different slots are not equal even with equal values")
	assert.True(t, vector.SameValue[int](a, b), "SameValue compares the pointed-to elements")

	w := vector.Of(7, 7)
	assert.False(t, a.Equal(w.Begin()), "same offset in another buffer is not equal")

	require.NoError(t, v.SetAt(1, 8))
	assert.False(t, vector.SameValue[int](a, b))
}

func Test_Iterator_Set_Writes_Through_When_Dereferenced(t *testing.T) {
	t.Parallel()

	v := vector.Of(1, 2, 3)

	v.Begin().Next().Set(20)
	*v.End().Prev().Ptr() = 30

	assert.Equal(t, []int{1, 20, 30}, v.Data())
}

func Test_Iterator_Panics_With_Sentinel_When_Nil(t *testing.T) {
	t.Parallel()

	var it vector.Iterator[int]

	assert.True(t, it.IsNil())
	assert.PanicsWithValue(t, vector.ErrNilIterator, func() { it.Value() })
	assert.PanicsWithValue(t, vector.ErrNilIterator, func() { it.Ptr() })
	assert.PanicsWithValue(t, vector.ErrNilIterator, func() { it.Set(1) })

	var empty vector.Vector[int]
	assert.PanicsWithValue(t, vector.ErrNilIterator, func() { empty.Begin().Value() })
}

func Test_Iterator_Reads_Old_Buffer_When_Vector_Reallocates(t *testing.T) {
	t.Parallel()

	v := vector.Of(1, 2)
	it := v.Begin()

	v.Reserve(100)
	require.NoError(t, v.SetAt(0, 50))

	assert.Equal(t, 1, it.Value(), "stale iterator still reads its own buffer")
	assert.False(t, it.Equal(v.Begin()), "stale iterator is not part of the new buffer")

	_, err := v.Erase(it)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func Test_Iterator_Sees_Shift_When_Elements_Move_In_Place(t *testing.T) {
	t.Parallel()

	v := vector.Of(1, 2, 3)
	v.Reserve(10)

	second := v.Begin().Next()
	v.PushFront(0)

	assert.Equal(t, 1, second.Value(), "slot now holds the shifted element")
	assert.True(t, second.Equal(v.Begin().Next()), "no reallocation, iterator still valid")
}

func Test_Iterator_String_Renders_Position_When_Formatted(t *testing.T) {
	t.Parallel()

	v := vector.Of(4, 5)

	assert.Equal(t, "[@ 1: 5 ]", v.Begin().Next().String())
	assert.Equal(t, "[@ 2 ]", v.End().String())
	assert.Equal(t, "[@ nil ]", vector.Iterator[int]{}.String())
	assert.Equal(t, "[@ 0: 4 ]", v.CBegin().String())
}

func Test_ConstIterator_Mirrors_Iterator_When_Moved(t *testing.T) {
	t.Parallel()

	v := vector.Of(1, 2, 3)
	c := v.CBegin()

	assert.Equal(t, 1, c.Value())
	assert.Equal(t, 2, c.Next().Value())
	assert.Equal(t, 3, c.Add(2).Value())
	assert.Equal(t, 2, c.Add(2).Prev().Value())
	assert.Equal(t, 1, c.Add(2).Sub(2).Value())
	assert.Equal(t, 3, v.CEnd().Distance(c))
	assert.True(t, c.Less(v.CEnd()))
	assert.True(t, c.Add(3).Equal(v.CEnd()))
	assert.Equal(t, -1, c.Compare(v.CEnd()))
	assert.Equal(t, 3, v.CEnd().Offset())
}

func Test_ConstIterator_Orders_And_Moves_In_Place_When_Stepped(t *testing.T) {
	t.Parallel()

	v := vector.Of(10, 20, 30, 40)
	c := v.CBegin()

	c.Inc()
	assert.Equal(t, 20, c.Value())

	c.Advance(2)
	assert.Equal(t, 40, c.Value())

	c.Dec()
	assert.Equal(t, 30, c.Value())

	c.Advance(-2)
	assert.True(t, c.Equal(v.CBegin()))

	end := v.CEnd()
	assert.True(t, c.LessEqual(end))
	assert.True(t, c.LessEqual(v.CBegin()))
	assert.False(t, c.Greater(end))
	assert.True(t, end.Greater(c))
	assert.True(t, end.GreaterEqual(end))
	assert.False(t, c.GreaterEqual(end))
}

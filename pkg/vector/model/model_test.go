package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/vec/pkg/vector"
	"github.com/calvinalkan/vec/pkg/vector/model"
)

func Test_Model_Follows_Growth_Policy_When_Pushed(t *testing.T) {
	t.Parallel()

	m := &model.Vector[int]{}
	m.PushBack(1)
	assert.Equal(t, vector.DefaultCapacity, m.State.Capacity)

	for m.Len() < m.State.Capacity {
		m.PushBack(0)
	}

	m.PushFront(0)
	assert.Equal(t, 2*vector.DefaultCapacity, m.State.Capacity)
}

func Test_Model_Rejects_Offsets_When_Out_Of_Range(t *testing.T) {
	t.Parallel()

	m := model.Of(1, 2, 3)

	_, err := m.Insert(4, 0)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	_, err = m.Erase(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	_, err = m.EraseRange(2, 1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	_, err = m.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	empty := model.New[int](0)

	_, err = empty.Front()
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func Test_Model_Snapshot_Is_Independent_When_Mutated(t *testing.T) {
	t.Parallel()

	m := model.Of(1, 2)
	snap := m.Snapshot()

	m.PushBack(3)

	want := model.State[int]{Values: []int{1, 2}, Capacity: 2}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot changed (-want +got):\n%s", diff)
	}
}

func Test_Model_Assign_Reallocates_Only_When_Growing_Past_Size(t *testing.T) {
	t.Parallel()

	m := model.Of(1, 2, 3, 4, 5)

	m.Assign(2, 7)
	assert.Equal(t, model.State[int]{Values: []int{7, 7}, Capacity: 5}, m.Snapshot())

	m.Assign(10, 3)
	assert.Equal(t, 10, m.State.Capacity)
}

package vector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/vec/pkg/vector"
	"github.com/calvinalkan/vec/pkg/vector/model"
)

// stateOf captures the observable state of v in the model's shape.
func stateOf[T any](v *vector.Vector[T]) model.State[T] {
	values := make([]T, v.Len())
	copy(values, v.Data())

	return model.State[T]{Values: values, Capacity: v.Cap()}
}

// requireState fails the test if v does not hold exactly values with the
// given capacity.
func requireState(t *testing.T, v *vector.Vector[int], values []int, capacity int) {
	t.Helper()

	want := model.State[int]{Values: values, Capacity: capacity}
	if want.Values == nil {
		want.Values = []int{}
	}

	if diff := cmp.Diff(want, stateOf(v)); diff != "" {
		t.Fatalf("vector state mismatch (-want +got):\n%s", diff)
	}
}

// requireUnchanged fails the test if v's state differs from before.
func requireUnchanged(t *testing.T, before model.State[int], v *vector.Vector[int]) {
	t.Helper()

	if diff := cmp.Diff(before, stateOf(v)); diff != "" {
		t.Fatalf("failed operation mutated the vector (-before +after):\n%s", diff)
	}
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

package vector

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a diagnostic rendering of every slot in the buffer to w:
//
//	{ 1 2 3 | 0 0 0 0 0 0 0 }, size=3, capacity=10
//
// The bar marks the end of the live range and is omitted when the vector is
// full. Slots after it are stale. The format is for debugging only.
func (v *Vector[T]) Dump(w io.Writer) error {
	_, err := io.WriteString(w, v.String())
	return err
}

// String returns the same rendering as [Vector.Dump].
func (v *Vector[T]) String() string {
	var sb strings.Builder

	sb.WriteString("{ ")

	for i, x := range v.slots() {
		if i == v.size {
			sb.WriteString("| ")
		}

		fmt.Fprintf(&sb, "%v ", x)
	}

	fmt.Fprintf(&sb, "}, size=%d, capacity=%d", v.size, v.Cap())

	return sb.String()
}

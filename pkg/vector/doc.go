// Package vector provides a generic, contiguous sequence container with an
// explicit, observable capacity policy.
//
// A [Vector] owns a single slot buffer of Cap() slots holding Len() live
// elements at the front. It grows at either end, supports index and
// iterator addressed mutation, and has value semantics through [Vector.Clone],
// [Vector.CopyFrom], [Equal] and [Swap].
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3)
//	v.PushBack(4)
//
//	it, err := v.Insert(v.Begin().Add(1), 9) // {1 9 2 3 4}
//	if err != nil {
//	    // errors.Is(err, vector.ErrOutOfRange)
//	}
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Capacity
//
// Implicit growth (PushBack, PushFront, single-element Insert into a full
// vector) goes to [DefaultCapacity] from an empty buffer and doubles the
// capacity afterwards. Multi-element inserts reserve Cap()+n when the new
// elements do not fit. [Vector.Reserve] and [Vector.ShrinkToFit] reallocate
// to exactly the requested slot count. Callers may rely on these values.
//
// # Iterators
//
// An [Iterator] is a weak handle on one slot of one buffer. Any operation
// that reallocates (growth, Reserve, ShrinkToFit, growing Assign) leaves
// outstanding iterators pointing at the old buffer; the vector rejects them
// with [ErrOutOfRange]. Operations that shift elements (Insert, Erase,
// PushFront, PopFront) keep the buffer but change what a slot holds. Reading
// through a stale iterator is memory safe but meaningless.
//
// Iterator equality is positional: two iterators are equal when they name the
// same slot of the same buffer. Use [SameValue] to compare the elements they
// point at.
//
// # Error Handling
//
// Checked operations return [ErrOutOfRange] (wrapped with context) before
// changing any state. Unchecked operations ([Vector.Index], [Vector.Ref],
// iterator movement) perform no validation beyond the Go runtime's own slice
// bounds checks.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. Callers that share one across
// goroutines must synchronize all access themselves.
package vector

package vector

import "errors"

// Sentinel errors returned by vector operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, vector.ErrOutOfRange) {
//	    // retry with a valid position
//	}
var (
	// ErrOutOfRange indicates a position or index outside the bound an
	// operation accepts.
	//
	// Causes: an insert position outside [Begin, End], an erase position
	// outside [Begin, End), an erase range with first after last, an
	// iterator from another (or a replaced) buffer, At/SetAt with an index
	// outside [0, Len), Front/Back on an empty vector.
	//
	// The vector is left unchanged.
	ErrOutOfRange = errors.New("vector: out of range")

	// ErrNilIterator is the panic value raised when a zero [Iterator] is
	// dereferenced.
	//
	// This is a programming error.
	ErrNilIterator = errors.New("vector: dereference of nil iterator")
)

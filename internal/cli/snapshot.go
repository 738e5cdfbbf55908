package cli

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/natefinch/atomic"

	"github.com/calvinalkan/vec/pkg/vector"
)

// snapshot is the on-disk form of a session vector.
//
//	{"elem":"int","capacity":10,"values":[1,2,3]}
type snapshot[T any] struct {
	Elem     string `json:"elem"`
	Capacity int    `json:"capacity"`
	Values   []T    `json:"values"`
}

// saveSnapshot writes v to path. The file is replaced atomically, so a crash
// leaves either the old or the new snapshot.
func saveSnapshot[T any](path, elem string, v *vector.Vector[T]) error {
	snap := snapshot[T]{
		Elem:     elem,
		Capacity: v.Cap(),
		Values:   v.Data(),
	}

	if snap.Values == nil {
		snap.Values = []T{}
	}

	data, err := json.MarshalWithOption(snap, json.DisableHTMLEscape())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	data = append(data, '\n')

	err = atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}

	return nil
}

// loadSnapshot reads a snapshot written by saveSnapshot. The returned vector
// has the recorded values and capacity.
func loadSnapshot[T any](path, elem string) (*vector.Vector[T], error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var header struct {
		Elem string `json:"elem"`
	}

	err = json.Unmarshal(data, &header)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errSnapshotInvalid, path, err)
	}

	if header.Elem != elem {
		return nil, fmt.Errorf("%w %s: holds %q elements, session holds %q", errSnapshotInvalid, path, header.Elem, elem)
	}

	var snap snapshot[T]

	err = json.Unmarshal(data, &snap)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errSnapshotInvalid, path, err)
	}

	if snap.Capacity > maxCapacity {
		return nil, fmt.Errorf("%w %s: capacity %d exceeds %d", errSnapshotInvalid, path, snap.Capacity, maxCapacity)
	}

	if snap.Capacity < len(snap.Values) {
		return nil, fmt.Errorf("%w %s: capacity %d below size %d", errSnapshotInvalid, path, snap.Capacity, len(snap.Values))
	}

	v := vector.Of(snap.Values...)
	v.Reserve(snap.Capacity)

	return v, nil
}

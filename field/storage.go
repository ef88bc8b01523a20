package field

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Storage is a fixed-length array of values paired with a presence mask of
// the same length. A position whose mask entry is false is logically null;
// the value underneath is unspecified and never read.
type Storage[T any] struct {
	values  []T
	present []bool
}

// NewStorage creates storage of n positions, all null.
func NewStorage[T any](n int) *Storage[T] {
	return &Storage[T]{
		values:  make([]T, n),
		present: make([]bool, n),
	}
}

// StorageOf creates storage from parallel value and presence slices, which
// it takes ownership of. The lengths are fixed at the call site, so a
// mismatch is a programming error and panics.
func StorageOf[T any](values []T, present []bool) *Storage[T] {
	if len(values) != len(present) {
		panic(fmt.Errorf("%d values but %d presence entries", len(values), len(present)))
	}
	return &Storage[T]{values: values, present: present}
}

// FromSlice creates storage holding the given values, all present.
func FromSlice[T any](values []T) *Storage[T] {
	present := make([]bool, len(values))
	for i := range present {
		present[i] = true
	}
	return &Storage[T]{values: slices.Clone(values), present: present}
}

// Len returns the number of positions.
func (s *Storage[T]) Len() int {
	return len(s.values)
}

// Get returns the value at pos and whether it is present. For a null
// position the value is the zero value of T.
func (s *Storage[T]) Get(pos int) (T, bool) {
	if !s.present[pos] {
		var zero T
		return zero, false
	}
	return s.values[pos], true
}

// Set stores a value at pos and marks it present.
func (s *Storage[T]) Set(pos int, value T) {
	s.values[pos] = value
	s.present[pos] = true
}

// SetNull marks pos null. The stale value underneath is kept but never
// read while the mask is clear.
func (s *Storage[T]) SetNull(pos int) {
	s.present[pos] = false
}

// Clone returns a private copy of the storage.
func (s *Storage[T]) Clone() *Storage[T] {
	return &Storage[T]{
		values:  slices.Clone(s.values),
		present: slices.Clone(s.present),
	}
}

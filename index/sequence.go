package index

import "fmt"

// A Sequence is an index with integer keys backed by an explicit list of
// positions. Key i resolves to the i-th list element; negative keys wrap
// around from the end, so -1 addresses the last element.
//
// Composed on top of an existing index, a sequence reorders it without
// touching storage, which is how sorting is implemented.
type Sequence struct {
	positions []int
}

// NewSequence creates a sequence index from a list of positions. The
// positions must be unique; duplicates fail with ErrConstruction.
func NewSequence(positions []int) (*Sequence, error) {
	seen := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if _, ok := seen[p]; ok {
			return nil, fmt.Errorf("%w: duplicate position %d in sequence", ErrConstruction, p)
		}
		seen[p] = struct{}{}
	}
	return &Sequence{positions: positions}, nil
}

// Range creates the identity sequence over positions 0 to n-1.
func Range(n int) *Sequence {
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	return &Sequence{positions: positions}
}

// Contains reports whether key is a valid non-negative key. Negative keys
// are accepted by Find but are aliases, not domain members.
func (s *Sequence) Contains(key int) bool {
	return key >= 0 && key < len(s.positions)
}

// Len returns the number of keys.
func (s *Sequence) Len() int {
	return len(s.positions)
}

// Keys returns 0 to n-1 in ascending order.
func (s *Sequence) Keys() []int {
	keys := make([]int, len(s.positions))
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// Find resolves key to its position. Negative keys wrap around once from
// the end; a key still outside [0, n) after wrapping fails with
// ErrNotFound rather than being clamped.
func (s *Sequence) Find(key int) (int, error) {
	i, err := coerce(key, len(s.positions))
	if err != nil {
		return 0, err
	}
	return s.positions[i], nil
}

// coerce normalizes a possibly-negative integer key against extent n.
func coerce(key, n int) (int, error) {
	i := key
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d out of range [-%d, %d)", ErrNotFound, key, n, n)
	}
	return i, nil
}

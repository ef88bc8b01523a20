package index

import (
	"bytes"
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

// A Mapping is an index with arbitrary indexable keys resolved through a
// dictionary.
type Mapping[K comparable] struct {
	positions map[K]int
	keys      []K
}

// NewMapping creates a mapping index from a key-to-position map. Since a Go
// map carries no order, the canonical iteration order is ascending order of
// the serialized keys, the order a radix-tree index would enumerate them
// in.
func NewMapping[K comparable](positions map[K]int) *Mapping[K] {
	keyFn := keyFnFor[K]()
	keys := make([]K, 0, len(positions))
	for key := range positions {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b K) bool {
		return bytes.Compare(keyFn(reflect.ValueOf(a)), keyFn(reflect.ValueOf(b))) < 0
	})
	m, err := MappingOf(keys, positionsOf(keys, positions))
	if err != nil {
		panic(err) // unreachable: map keys are unique
	}
	return m
}

// MappingOf creates a mapping index from parallel lists of keys and
// positions. The given key order becomes the canonical iteration order.
// Duplicate keys and mismatched lengths fail with ErrConstruction.
func MappingOf[K comparable](keys []K, positions []int) (*Mapping[K], error) {
	if len(keys) != len(positions) {
		return nil, fmt.Errorf("%w: %d keys but %d positions", ErrConstruction, len(keys), len(positions))
	}
	m := make(map[K]int, len(keys))
	for i, key := range keys {
		if _, ok := m[key]; ok {
			return nil, fmt.Errorf("%w: duplicate key %v in mapping", ErrConstruction, key)
		}
		m[key] = positions[i]
	}
	return &Mapping[K]{positions: m, keys: slices.Clone(keys)}, nil
}

func positionsOf[K comparable](keys []K, m map[K]int) []int {
	positions := make([]int, len(keys))
	for i, key := range keys {
		positions[i] = m[key]
	}
	return positions
}

// Contains reports whether key is in the mapping.
func (m *Mapping[K]) Contains(key K) bool {
	_, ok := m.positions[key]
	return ok
}

// Len returns the number of keys.
func (m *Mapping[K]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in canonical order.
func (m *Mapping[K]) Keys() []K {
	return slices.Clone(m.keys)
}

// Find resolves key through the dictionary. A missing key fails with
// ErrNotFound.
func (m *Mapping[K]) Find(key K) (int, error) {
	pos, ok := m.positions[key]
	if !ok {
		return 0, fmt.Errorf("%w: %v not in mapping", ErrNotFound, key)
	}
	return pos, nil
}

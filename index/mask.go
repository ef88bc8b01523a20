package index

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type masked[K comparable] struct {
	parent Index[K]
	keys   []K
	member map[K]struct{}
}

// Mask narrows an index to the keys for which keep returns true,
// preserving their relative order. The predicate is evaluated once, at
// construction. Lookup of a masked-out key fails with ErrNotFound even
// though the parent still resolves it.
func Mask[K comparable](parent Index[K], keep func(K) bool) Index[K] {
	var keys []K
	member := map[K]struct{}{}
	for _, key := range parent.Keys() {
		if keep(key) {
			keys = append(keys, key)
			member[key] = struct{}{}
		}
	}
	return &masked[K]{parent: parent, keys: keys, member: member}
}

func (m *masked[K]) Contains(key K) bool {
	_, ok := m.member[key]
	return ok
}

func (m *masked[K]) Len() int {
	return len(m.keys)
}

func (m *masked[K]) Keys() []K {
	return slices.Clone(m.keys)
}

func (m *masked[K]) Find(key K) (int, error) {
	if !m.Contains(key) {
		return 0, fmt.Errorf("%w: %v is masked out", ErrNotFound, key)
	}
	return m.parent.Find(key)
}

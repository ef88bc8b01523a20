package field

import (
	"errors"

	"github.com/jackhall/datapy/index"
	"golang.org/x/exp/slices"
)

// Accum left-folds fn over the field's present values in the index's
// canonical iteration order, starting from init. Null positions are
// skipped: there is no value to feed the fold.
//
// The fold order is part of the contract. Callers folding with a
// non-commutative function must know the canonical order of the field's
// index variant.
func Accum[K comparable, T, U any](f *Field[K, T], fn func(U, T) U, init U) (U, error) {
	acc := init
	for _, key := range f.Keys() {
		value, ok, err := f.Get(key)
		if err != nil {
			return init, err
		}
		if ok {
			acc = fn(acc, value)
		}
	}
	return acc, nil
}

// Convert materializes the field through a type-changing function. Unlike
// Map it cannot be deferred, since the pending chain is monomorphic; the
// result owns fresh dense storage over the same keys. Nulls stay null.
func Convert[K comparable, T, U any](f *Field[K, T], fn func(T) U) (*Field[K, U], error) {
	keys := f.Keys()
	store := NewStorage[U](len(keys))
	for i, key := range keys {
		value, ok, err := f.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			store.Set(i, fn(value))
		}
	}
	ix, err := index.Flatten(keys)
	if err != nil {
		return nil, err
	}
	return &Field[K, U]{ix: ix, store: store}, nil
}

// Sort returns an integer-keyed view of the field's present values in
// ascending order of less, nulls after all values. When the value order
// maps to unique storage positions the result is a sequence index
// composed over the shared storage, built without copying; fields whose
// keys alias positions fall back to a private dense copy.
func Sort[K comparable, T any](f *Field[K, T], less func(a, b T) bool) (*Field[int, T], error) {
	type element struct {
		pos     int
		value   T
		present bool
	}
	elements := make([]element, 0, f.Len())
	for _, key := range f.Keys() {
		pos, err := f.find(key)
		if err != nil {
			return nil, err
		}
		value, ok, err := f.Get(key)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element{pos: pos, value: value, present: ok})
	}
	slices.SortStableFunc(elements, func(a, b element) bool {
		switch {
		case !a.present:
			return false
		case !b.present:
			return true
		default:
			return less(a.value, b.value)
		}
	})

	positions := make([]int, len(elements))
	for i, e := range elements {
		positions[i] = e.pos
	}
	if seq, err := index.NewSequence(positions); err == nil {
		return &Field[int, T]{ix: seq, store: f.store, maps: f.maps}, nil
	} else if !errors.Is(err, index.ErrConstruction) {
		return nil, err
	}

	// Duplicate positions: materialize instead.
	store := NewStorage[T](len(elements))
	for i, e := range elements {
		if e.present {
			store.Set(i, e.value)
		}
	}
	return &Field[int, T]{ix: index.Range(len(elements)), store: store}, nil
}

// GroupBy splits the field into per-group views keyed by fn applied to
// each key and its present value. Every group field shares this field's
// storage and pending maps, narrowed to the group's keys with their
// relative order intact. Null positions belong to no group.
func GroupBy[K comparable, T any, G comparable](f *Field[K, T], fn func(K, T) G) (map[G]*Field[K, T], error) {
	membership := make(map[K]G)
	var groups []G
	for _, key := range f.Keys() {
		value, ok, err := f.Get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		group := fn(key, value)
		membership[key] = group
		if !slices.Contains(groups, group) {
			groups = append(groups, group)
		}
	}

	result := make(map[G]*Field[K, T], len(groups))
	for _, group := range groups {
		group := group
		narrowed := index.Mask[K](f.ix, func(key K) bool {
			g, ok := membership[key]
			return ok && g == group
		})
		result[group] = &Field[K, T]{ix: narrowed, store: f.store, maps: f.maps}
	}
	return result, nil
}

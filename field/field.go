package field

import (
	"fmt"

	"github.com/jackhall/datapy/index"
)

// A Field is a nullable sequence of values addressed by the keys of an
// index. Derived fields share storage with their parents; see the package
// documentation for the sharing rules.
type Field[K comparable, T any] struct {
	ix    index.Index[K]
	store *Storage[T]
	maps  []func(T) T
}

// New binds an index to storage. Every key of the index must resolve to a
// position inside the storage; a stray position fails with
// ErrDomainMismatch.
func New[K comparable, T any](ix index.Index[K], store *Storage[T]) (*Field[K, T], error) {
	for _, key := range ix.Keys() {
		pos, err := ix.Find(key)
		if err != nil {
			return nil, err
		}
		if pos < 0 || pos >= store.Len() {
			return nil, fmt.Errorf("%w: key %v resolves to position %d outside storage of %d",
				index.ErrDomainMismatch, key, pos, store.Len())
		}
	}
	return &Field[K, T]{ix: ix, store: store}, nil
}

// Of creates a field over the given values with the identity integer
// index, all values present.
func Of[T any](values []T) *Field[int, T] {
	return &Field[int, T]{ix: index.Range(len(values)), store: FromSlice(values)}
}

// Index returns the field's index.
func (f *Field[K, T]) Index() index.Index[K] {
	return f.ix
}

// Len returns the number of keys.
func (f *Field[K, T]) Len() int {
	return f.ix.Len()
}

// Keys returns the keys in the index's canonical order.
func (f *Field[K, T]) Keys() []K {
	return f.ix.Keys()
}

// Get reads the value at key. The second result is false for a null; the
// pending map chain is applied, in the order the maps were added, only to
// present values. A key outside the index's domain fails with ErrNotFound.
func (f *Field[K, T]) Get(key K) (T, bool, error) {
	var zero T
	pos, err := f.find(key)
	if err != nil {
		return zero, false, err
	}
	value, ok := f.store.Get(pos)
	if !ok {
		return zero, false, nil
	}
	for _, fn := range f.maps {
		value = fn(value)
	}
	return value, true, nil
}

// Set replaces the value at an existing key and marks it present. A field
// never grows on write: a key outside the domain fails with ErrNotFound.
// The value is stored as given; if the field has pending maps, a later Get
// applies them to it like to any other stored value.
func (f *Field[K, T]) Set(key K, value T) error {
	pos, err := f.find(key)
	if err != nil {
		return err
	}
	f.store.Set(pos, value)
	return nil
}

// SetNull clears the value at an existing key.
func (f *Field[K, T]) SetNull(key K) error {
	pos, err := f.find(key)
	if err != nil {
		return err
	}
	f.store.SetNull(pos)
	return nil
}

// Map returns a field that applies fn after this field's effective value
// on every read. Storage and index are shared; nothing is evaluated until
// a key is read. Nulls are never passed to fn.
func (f *Field[K, T]) Map(fn func(T) T) *Field[K, T] {
	maps := make([]func(T) T, 0, len(f.maps)+1)
	maps = append(maps, f.maps...)
	return &Field[K, T]{ix: f.ix, store: f.store, maps: append(maps, fn)}
}

// WithIndex rebinds the field to another index over the same storage,
// subject to the same containment check as New. The map chain carries
// over.
func (f *Field[K, T]) WithIndex(ix index.Index[K]) (*Field[K, T], error) {
	rebound, err := New(ix, f.store)
	if err != nil {
		return nil, err
	}
	rebound.maps = f.maps
	return rebound, nil
}

// Filter returns a field narrowed to the keys whose present value
// satisfies pred. The predicate is evaluated once, here, over every key:
// pending maps are forced for the whole domain, but storage is not copied.
// Null positions are dropped, since they have no value to satisfy the
// predicate with.
func (f *Field[K, T]) Filter(pred func(T) bool) (*Field[K, T], error) {
	keep := make(map[K]struct{})
	for _, key := range f.Keys() {
		value, ok, err := f.Get(key)
		if err != nil {
			return nil, err
		}
		if ok && pred(value) {
			keep[key] = struct{}{}
		}
	}
	narrowed := index.Mask[K](f.ix, func(key K) bool {
		_, ok := keep[key]
		return ok
	})
	return &Field[K, T]{ix: narrowed, store: f.store, maps: f.maps}, nil
}

// Resolve materializes the pending maps and the index chain: the result
// has a fresh dense storage covering exactly the live keys and a flat
// index that resolves them in O(1). The keys themselves are preserved.
// Resolving a resolved field is a plain copy.
func (f *Field[K, T]) Resolve() (*Field[K, T], error) {
	keys := f.Keys()
	store := NewStorage[T](len(keys))
	for i, key := range keys {
		value, ok, err := f.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			store.Set(i, value)
		}
	}
	ix, err := index.Flatten(keys)
	if err != nil {
		return nil, err
	}
	return &Field[K, T]{ix: ix, store: store}, nil
}

// Update returns a field with this field's domain where the value at
// every key shared with other (null included) is taken from other.
// Partial overlap is fine; keys unique to either side are left as they
// are. The result owns a private copy of storage.
func (f *Field[K, T]) Update(other *Field[K, T]) (*Field[K, T], error) {
	updated, err := f.Resolve()
	if err != nil {
		return nil, err
	}
	for _, key := range updated.Keys() {
		if !other.ix.Contains(key) {
			continue
		}
		value, ok, err := other.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			err = updated.Set(key, value)
		} else {
			err = updated.SetNull(key)
		}
		if err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// find resolves a key, distinguishing a key outside the domain from an
// index that points outside the storage (possible after an unverified
// composition).
func (f *Field[K, T]) find(key K) (int, error) {
	pos, err := f.ix.Find(key)
	if err != nil {
		return 0, err
	}
	if pos < 0 || pos >= f.store.Len() {
		return 0, fmt.Errorf("%w: key %v resolves to position %d outside storage of %d",
			index.ErrDomainMismatch, key, pos, f.store.Len())
	}
	return pos, nil
}

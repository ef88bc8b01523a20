package frame

import (
	"fmt"

	"github.com/jackhall/datapy/field"
	"github.com/jackhall/datapy/index"
	"golang.org/x/exp/slices"
)

// A Row addresses one key's values across all columns of a frame. Values
// can be read and replaced, but a row never gains or loses columns.
type Row[K comparable] struct {
	frame *Frame[K]
	key   K
}

// Key returns the row's key.
func (r Row[K]) Key() K {
	return r.key
}

// Names returns the column names, in frame order.
func (r Row[K]) Names() []string {
	return slices.Clone(r.frame.names)
}

// Value reads the named column at this row; the second result is false
// for a null. An unknown column fails with ErrNotFound.
func (r Row[K]) Value(name string) (any, bool, error) {
	col, ok := r.frame.cols[name]
	if !ok {
		return nil, false, fmt.Errorf("%w: no column %q", index.ErrNotFound, name)
	}
	return col.Value(r.key)
}

// Set replaces the named column's value at this row; nil clears it.
func (r Row[K]) Set(name string, value any) error {
	col, ok := r.frame.cols[name]
	if !ok {
		return fmt.Errorf("%w: no column %q", index.ErrNotFound, name)
	}
	return col.SetValue(r.key, value)
}

// Rows is the key-addressed view of a frame.
type Rows[K comparable] struct {
	frame *Frame[K]
}

// Len returns the number of rows.
func (rs Rows[K]) Len() int {
	return rs.frame.Len()
}

// Keys returns the row keys in the coordinate index's canonical order.
func (rs Rows[K]) Keys() []K {
	return rs.frame.ix.Keys()
}

// Get returns the row at key. A key outside the coordinate domain fails
// with ErrNotFound.
func (rs Rows[K]) Get(key K) (Row[K], error) {
	if !rs.frame.ix.Contains(key) {
		return Row[K]{}, fmt.Errorf("%w: no row %v", index.ErrNotFound, key)
	}
	return Row[K]{frame: rs.frame, key: key}, nil
}

// Filter returns a frame narrowed to the rows satisfying pred, in their
// current order. Column storage is shared, not copied: the result is a
// view until reshaped.
func (rs Rows[K]) Filter(pred func(Row[K]) bool) (*Frame[K], error) {
	f := rs.frame
	keep := func(key K) bool {
		return pred(Row[K]{frame: f, key: key})
	}
	narrowed := index.Mask[K](f.ix, keep)
	return f.derive(narrowed, func(col Column[K]) (Column[K], error) {
		return col.WithIndex(index.Mask[K](col.Index(), keep))
	})
}

// Sort returns a frame with the rows reordered by less. Column storage is
// shared, not copied.
func (rs Rows[K]) Sort(less func(a, b Row[K]) bool) (*Frame[K], error) {
	f := rs.frame
	keys := f.ix.Keys()
	slices.SortStableFunc(keys, func(a, b K) bool {
		return less(Row[K]{frame: f, key: a}, Row[K]{frame: f, key: b})
	})

	positions := make([]int, len(keys))
	for i, key := range keys {
		pos, err := f.ix.Find(key)
		if err != nil {
			return nil, err
		}
		positions[i] = pos
	}
	reordered, err := index.MappingOf(keys, positions)
	if err != nil {
		return nil, err
	}
	return f.derive(reordered, func(col Column[K]) (Column[K], error) {
		return reorder(col, keys)
	})
}

// Map computes a value per row, producing a new materialized column over
// the frame's current keys. A nil result leaves the row null.
func (rs Rows[K]) Map(fn func(Row[K]) any) (Column[K], error) {
	f := rs.frame
	keys := f.ix.Keys()
	store := field.NewStorage[any](len(keys))
	for i, key := range keys {
		if value := fn(Row[K]{frame: f, key: key}); value != nil {
			store.Set(i, value)
		}
	}
	ix, err := index.Flatten(keys)
	if err != nil {
		return nil, err
	}
	computed, err := field.New[K](ix, store)
	if err != nil {
		return nil, err
	}
	return ColumnOf[K](computed), nil
}

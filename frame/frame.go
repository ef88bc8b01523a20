package frame

import (
	"context"
	"fmt"

	"github.com/jackhall/datapy/index"
	"github.com/jackhall/datapy/tlog"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// A Frame is a named collection of columns sharing one coordinate index.
// Frames are immutable shells: deriving operations return new frames that
// share column storage with their parents, while writes go through the
// shared storage and are visible everywhere.
type Frame[K comparable] struct {
	ix    index.Index[K]
	names []string
	cols  map[string]Column[K]
}

// A NamedColumn pairs a column with its name for frame construction.
type NamedColumn[K comparable] struct {
	Name   string
	Column Column[K]
}

// Col is a shorthand for building a NamedColumn.
func Col[K comparable](name string, column Column[K]) NamedColumn[K] {
	return NamedColumn[K]{Name: name, Column: column}
}

// New creates a frame over the given coordinate index. Every column's
// domain must enumerate the same keys in the same order as the coordinate
// index; a mismatch fails with ErrDomainMismatch. Duplicate column names
// fail with ErrConstruction.
func New[K comparable](ix index.Index[K], columns ...NamedColumn[K]) (*Frame[K], error) {
	f := &Frame[K]{
		ix:   ix,
		cols: make(map[string]Column[K], len(columns)),
	}
	keys := ix.Keys()
	for _, nc := range columns {
		if _, ok := f.cols[nc.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", index.ErrConstruction, nc.Name)
		}
		if !slices.Equal(keys, nc.Column.Index().Keys()) {
			return nil, fmt.Errorf("%w: column %q does not share the frame's coordinate index",
				index.ErrDomainMismatch, nc.Name)
		}
		f.names = append(f.names, nc.Name)
		f.cols[nc.Name] = nc.Column
	}
	return f, nil
}

// Index returns the coordinate index shared by all columns.
func (f *Frame[K]) Index() index.Index[K] {
	return f.ix
}

// Len returns the number of rows.
func (f *Frame[K]) Len() int {
	return f.ix.Len()
}

// Fields returns the name-addressed view of the frame's columns.
func (f *Frame[K]) Fields() Fields[K] {
	return Fields[K]{frame: f}
}

// Rows returns the key-addressed view of the frame's rows.
func (f *Frame[K]) Rows() Rows[K] {
	return Rows[K]{frame: f}
}

// Reshape materializes every column against the current coordinate index
// and flattens the index itself, collapsing whatever lazy transformation
// chains the frame has accumulated back to O(1) access.
func (f *Frame[K]) Reshape(ctx context.Context) (*Frame[K], error) {
	flat, err := index.Flatten(f.ix.Keys())
	if err != nil {
		return nil, err
	}
	reshaped := &Frame[K]{
		ix:    flat,
		names: slices.Clone(f.names),
		cols:  make(map[string]Column[K], len(f.cols)),
	}
	for _, name := range f.names {
		resolved, err := f.cols[name].Resolve()
		if err != nil {
			return nil, fmt.Errorf("reshaping column %q: %w", name, err)
		}
		reshaped.cols[name] = resolved
	}
	tlog.Get(ctx).Debug("reshaped frame",
		zap.Int("rows", f.Len()), zap.Int("columns", len(f.names)))
	return reshaped, nil
}

// Assign returns a frame with one more column, computed row-wise. The
// new column is materialized immediately over the frame's current keys; a
// nil result from fn leaves the row null. An existing column of the same
// name is replaced.
func (f *Frame[K]) Assign(name string, fn func(Row[K]) any) (*Frame[K], error) {
	col, err := f.Rows().Map(fn)
	if err != nil {
		return nil, err
	}
	return f.Fields().Set(name, col)
}

// derive builds a sibling frame over a narrowed or reordered coordinate
// index, rebinding every column to match.
func (f *Frame[K]) derive(ix index.Index[K], rebind func(Column[K]) (Column[K], error)) (*Frame[K], error) {
	derived := &Frame[K]{
		ix:    ix,
		names: slices.Clone(f.names),
		cols:  make(map[string]Column[K], len(f.cols)),
	}
	for _, name := range f.names {
		col, err := rebind(f.cols[name])
		if err != nil {
			return nil, fmt.Errorf("deriving column %q: %w", name, err)
		}
		derived.cols[name] = col
	}
	return derived, nil
}

// Fields is a name-addressed view of a frame's columns, in insertion
// order.
type Fields[K comparable] struct {
	frame *Frame[K]
}

// Names returns the column names in order.
func (fs Fields[K]) Names() []string {
	return slices.Clone(fs.frame.names)
}

// Len returns the number of columns.
func (fs Fields[K]) Len() int {
	return len(fs.frame.names)
}

// Has reports whether a column exists.
func (fs Fields[K]) Has(name string) bool {
	_, ok := fs.frame.cols[name]
	return ok
}

// Get returns the named column. A missing name fails with ErrNotFound.
func (fs Fields[K]) Get(name string) (Column[K], error) {
	col, ok := fs.frame.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: no column %q", index.ErrNotFound, name)
	}
	return col, nil
}

// Set returns a frame with the named column added or replaced. The column
// must share the frame's coordinate domain, like in New.
func (fs Fields[K]) Set(name string, col Column[K]) (*Frame[K], error) {
	f := fs.frame
	if !slices.Equal(f.ix.Keys(), col.Index().Keys()) {
		return nil, fmt.Errorf("%w: column %q does not share the frame's coordinate index",
			index.ErrDomainMismatch, name)
	}
	updated := &Frame[K]{
		ix:    f.ix,
		names: slices.Clone(f.names),
		cols:  make(map[string]Column[K], len(f.cols)+1),
	}
	for n, c := range f.cols {
		updated.cols[n] = c
	}
	if _, ok := f.cols[name]; !ok {
		updated.names = append(updated.names, name)
	}
	updated.cols[name] = col
	return updated, nil
}

// Delete returns a frame without the named column. A missing name fails
// with ErrNotFound.
func (fs Fields[K]) Delete(name string) (*Frame[K], error) {
	f := fs.frame
	if _, ok := f.cols[name]; !ok {
		return nil, fmt.Errorf("%w: no column %q", index.ErrNotFound, name)
	}
	updated := &Frame[K]{
		ix:   f.ix,
		cols: make(map[string]Column[K], len(f.cols)-1),
	}
	for _, n := range f.names {
		if n == name {
			continue
		}
		updated.names = append(updated.names, n)
		updated.cols[n] = f.cols[n]
	}
	return updated, nil
}

package frame

import (
	"context"
	"fmt"

	"github.com/jackhall/datapy/field"
	"github.com/jackhall/datapy/index"
	"github.com/jackhall/datapy/tlog"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FromRecords assembles an integer-keyed frame from a list of loosely
// typed records. The column set is the union of the record keys, in
// ascending name order (record maps carry no order of their own); a key
// missing from a record, or mapped to nil, leaves that row null. Values
// are stored as they come: coercing a column to a concrete type
// afterwards is a field.Convert away.
func FromRecords(ctx context.Context, records []map[string]any) (*Frame[int], error) {
	stores := map[string]*field.Storage[any]{}
	for i, record := range records {
		for name, value := range record {
			store, ok := stores[name]
			if !ok {
				store = field.NewStorage[any](len(records))
				stores[name] = store
			}
			if value != nil {
				store.Set(i, value)
			}
		}
	}
	names := maps.Keys(stores)
	slices.Sort(names)

	f, err := assemble(index.Range(len(records)), names, stores)
	if err != nil {
		return nil, err
	}
	tlog.Get(ctx).Debug("assembled frame from records",
		zap.Int("rows", len(records)), zap.Int("columns", len(names)))
	return f, nil
}

// FromArrays assembles an integer-keyed frame from named value arrays.
// The arrays must all have the same length; nil elements are null. The
// names argument fixes the column order and must name each array exactly
// once.
func FromArrays(ctx context.Context, names []string, arrays map[string][]any) (*Frame[int], error) {
	if len(names) != len(arrays) {
		return nil, fmt.Errorf("%w: %d column names for %d arrays",
			index.ErrConstruction, len(names), len(arrays))
	}
	n := -1
	stores := map[string]*field.Storage[any]{}
	for _, name := range names {
		values, ok := arrays[name]
		if !ok {
			return nil, fmt.Errorf("%w: no array for column %q", index.ErrConstruction, name)
		}
		if n >= 0 && len(values) != n {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d",
				index.ErrConstruction, name, len(values), n)
		}
		n = len(values)
		store := field.NewStorage[any](len(values))
		for i, value := range values {
			if value != nil {
				store.Set(i, value)
			}
		}
		stores[name] = store
	}
	if n < 0 {
		n = 0
	}

	f, err := assemble(index.Range(n), names, stores)
	if err != nil {
		return nil, err
	}
	tlog.Get(ctx).Debug("assembled frame from arrays",
		zap.Int("rows", n), zap.Int("columns", len(names)))
	return f, nil
}

func assemble(ix index.Index[int], names []string, stores map[string]*field.Storage[any]) (*Frame[int], error) {
	columns := make([]NamedColumn[int], 0, len(names))
	for _, name := range names {
		col, err := field.New[int](ix, stores[name])
		if err != nil {
			return nil, err
		}
		columns = append(columns, Col[int](name, ColumnOf[int](col)))
	}
	return New[int](ix, columns...)
}

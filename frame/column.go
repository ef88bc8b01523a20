package frame

import (
	"fmt"

	"github.com/jackhall/datapy/field"
	"github.com/jackhall/datapy/index"
)

// A Column is a type-erased field: the frame stores columns of different
// value types behind this interface. Null values surface as nil.
type Column[K comparable] interface {
	// Len returns the number of keys in the column's domain.
	Len() int

	// Index returns the column's own index. Its domain and canonical
	// order must match the frame's coordinate index; the positions are
	// the column's private business.
	Index() index.Index[K]

	// Value reads the value at key; the second result is false for a
	// null.
	Value(key K) (any, bool, error)

	// SetValue replaces the value at an existing key. A nil value clears
	// it. A value of the wrong dynamic type fails.
	SetValue(key K, value any) error

	// WithIndex rebinds the column to another index over the same
	// storage.
	WithIndex(ix index.Index[K]) (Column[K], error)

	// Resolve materializes the column into dense storage with a flat
	// index.
	Resolve() (Column[K], error)
}

type fieldColumn[K comparable, T any] struct {
	f *field.Field[K, T]
}

// ColumnOf adapts a typed field to the Column interface. The column is a
// view: it shares the field's storage.
func ColumnOf[K comparable, T any](f *field.Field[K, T]) Column[K] {
	return fieldColumn[K, T]{f: f}
}

func (c fieldColumn[K, T]) Len() int {
	return c.f.Len()
}

func (c fieldColumn[K, T]) Index() index.Index[K] {
	return c.f.Index()
}

func (c fieldColumn[K, T]) Value(key K) (any, bool, error) {
	value, ok, err := c.f.Get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	return value, true, nil
}

func (c fieldColumn[K, T]) SetValue(key K, value any) error {
	if value == nil {
		return c.f.SetNull(key)
	}
	typed, ok := value.(T)
	if !ok {
		return fmt.Errorf("value %v (%T) does not fit a column of %T", value, value, *new(T))
	}
	return c.f.Set(key, typed)
}

func (c fieldColumn[K, T]) WithIndex(ix index.Index[K]) (Column[K], error) {
	rebound, err := c.f.WithIndex(ix)
	if err != nil {
		return nil, err
	}
	return fieldColumn[K, T]{f: rebound}, nil
}

func (c fieldColumn[K, T]) Resolve() (Column[K], error) {
	resolved, err := c.f.Resolve()
	if err != nil {
		return nil, err
	}
	return fieldColumn[K, T]{f: resolved}, nil
}

// reorder rebinds a column to enumerate the given keys in the given
// order. The keys must form a subset of the column's domain.
func reorder[K comparable](col Column[K], keys []K) (Column[K], error) {
	positions := make([]int, len(keys))
	for i, key := range keys {
		pos, err := col.Index().Find(key)
		if err != nil {
			return nil, err
		}
		positions[i] = pos
	}
	ix, err := index.MappingOf(keys, positions)
	if err != nil {
		return nil, err
	}
	return col.WithIndex(ix)
}

package index

import "fmt"

// A Composed index resolves a key through an outer index first and an
// inner index second. Its domain is the outer index's domain.
type Composed[K comparable] struct {
	outer Index[K]
	inner Index[int]
}

// Compose layers outer on top of inner: the result resolves key as
// inner.Find(outer.Find(key)). Construction is O(1) and neither argument
// is copied or modified.
//
// Every position the outer index produces must lie in the inner index's
// domain. With verify set, FitsAround is checked first and a violation
// fails with ErrDomainMismatch; without it, an ill-fitted composition is
// the caller's risk and surfaces as ErrNotFound on lookup.
func Compose[K comparable](outer Index[K], inner Index[int], verify bool) (*Composed[K], error) {
	if verify && !FitsAround(outer, inner) {
		return nil, fmt.Errorf("%w: the image of the outer index escapes the inner domain", ErrDomainMismatch)
	}
	return &Composed[K]{outer: outer, inner: inner}, nil
}

// FitsAround reports whether every position the outer index produces is
// contained in the inner index's domain. It walks the whole outer domain.
func FitsAround[K comparable](outer Index[K], inner Index[int]) bool {
	for _, key := range outer.Keys() {
		pos, err := outer.Find(key)
		if err != nil || !inner.Contains(pos) {
			return false
		}
	}
	return true
}

// Contains reports whether key is in the outer domain.
func (c *Composed[K]) Contains(key K) bool {
	return c.outer.Contains(key)
}

// Len returns the outer domain size.
func (c *Composed[K]) Len() int {
	return c.outer.Len()
}

// Keys returns the outer domain in its canonical order.
func (c *Composed[K]) Keys() []K {
	return c.outer.Keys()
}

// Find resolves key through both layers.
func (c *Composed[K]) Find(key K) (int, error) {
	pos, err := c.outer.Find(key)
	if err != nil {
		return 0, err
	}
	return c.inner.Find(pos)
}

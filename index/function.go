package index

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// A Function is an index that resolves keys by evaluating a pure function.
// The domain is explicit: membership is checked before the function is
// called, so the function never sees a key outside the domain.
type Function[K comparable] struct {
	domain []K
	member map[K]struct{}
	fn     func(K) int
}

// NewFunction creates a function index over an explicit domain. The given
// domain order becomes the canonical iteration order. Duplicate domain
// elements fail with ErrConstruction.
func NewFunction[K comparable](domain []K, fn func(K) int) (*Function[K], error) {
	member := make(map[K]struct{}, len(domain))
	for _, key := range domain {
		if _, ok := member[key]; ok {
			return nil, fmt.Errorf("%w: duplicate key %v in function domain", ErrConstruction, key)
		}
		member[key] = struct{}{}
	}
	return &Function[K]{domain: slices.Clone(domain), member: member, fn: fn}, nil
}

// Contains reports whether key is in the domain.
func (f *Function[K]) Contains(key K) bool {
	_, ok := f.member[key]
	return ok
}

// Len returns the domain size.
func (f *Function[K]) Len() int {
	return len(f.domain)
}

// Keys returns the domain in canonical order.
func (f *Function[K]) Keys() []K {
	return slices.Clone(f.domain)
}

// Find evaluates the function on key. A key outside the domain fails with
// ErrNotFound without the function being called.
func (f *Function[K]) Find(key K) (int, error) {
	if !f.Contains(key) {
		return 0, fmt.Errorf("%w: %v not in function domain", ErrNotFound, key)
	}
	return f.fn(key), nil
}

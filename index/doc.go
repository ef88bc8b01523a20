// Package index contains composable index values that map user-facing keys
// to positions in flat backing storage.
//
// An index encapsulates a finite domain of keys together with a
// deterministic lookup rule. The basic variants are:
//
//   - Sequence: integer keys over a list of positions, with negative-index
//     wraparound. Range(n) is the identity sequence used for freshly
//     materialized storage.
//   - Mapping: arbitrary indexable keys looked up in a dictionary.
//   - Function: a pure function evaluated on keys of an explicit domain.
//   - Matrix: (row, col) pairs flattened row-major within fixed extents.
//
// Indices are immutable after construction. Deriving operations produce new
// values:
//
//	sorted, err := index.Compose(perm, base, true)
//	adults := index.Mask(people, func(id PersonID) bool { return ages[id] >= 18 })
//
// Compose layers one index on top of another without touching storage: the
// outer index resolves a key to an intermediate position, and the inner
// index resolves that position further. Construction is O(1); every lookup
// through the composed value pays the cost of both layers. Deep chains are
// expected to be flattened back to O(1) lookups by resolving the field that
// carries them.
//
// Every index declares a canonical iteration order, reported by Keys:
// Sequence counts up from 0, Mapping follows the order given at
// construction (the map-based constructor sorts keys by their serialized
// form), Function preserves its domain order, Matrix is row-major, and
// composed or masked indices preserve the parent's order. Folds and
// bulk operations over fields rely on this order being stable.
//
// # Indexable key types
//
// All integer types, strings, booleans, time.Time, Cell, and named types
// based on them are indexable. Any other type can be made indexable by
// implementing a method
//
//	IndexKey() []byte
//
// The method should be a pure function that serializes the value as a byte
// sequence. The serialized form participates in lexicographical ordering of
// Mapping keys and in structural hashing of whole indices.
package index

// Package datapy is a columnar table library built around a composable
// index algebra.
//
// The load-bearing abstractions live in two packages. Package index maps
// user-facing keys (integers, strings, tuples, arbitrary functions of a
// domain) to positions in flat backing storage, and lets indices be
// layered on one another without touching the storage underneath. Package
// field couples an index to nullable storage and defers elementwise
// transformations until a value is actually read, so chains of maps and
// filters do not materialize intermediate arrays.
//
// Package frame is thin composition over those two: named columns behind
// a shared coordinate index, with row- and column-addressed views and
// construction from loosely typed external records.
//
// # Lazy by default, flat on demand
//
// Deriving operations (map, filter, sort, compose, mask) are cheap to
// build and share storage with their parents; every read through a
// derived value pays for the whole chain. Resolve on a field, or Reshape
// on a frame, is the single operation that collapses a chain back into
// dense storage with O(1) lookups. The intended rhythm is a burst of lazy
// derivations followed by one resolve.
//
// # Views and values
//
// A derived field or frame is a view: writes through any sharer of the
// same storage are visible through all of them. Resolve, Update and
// Convert return values that own a private copy. Everything is
// single-threaded; nothing here locks.
package datapy

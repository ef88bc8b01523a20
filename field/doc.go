// Package field contains nullable, index-addressed sequences of values.
//
// A Field couples an index from the index package to flat nullable
// storage: reading a key resolves it through the index to a storage
// position, then consults the presence mask and the stored value there.
//
// Transformations are deferred. Map records a function to apply on read;
// Filter narrows the index; neither touches storage, and derived fields
// share storage with their parents. Chains of transformations therefore
// cost nothing to build and everything on access, until Resolve
// materializes the pending work into fresh dense storage with an O(1)
// index:
//
//	celsius := readings.Map(toCelsius)
//	warm, err := celsius.Filter(func(c float64) bool { return c > 20 })
//	warm, err = warm.Resolve()
//
// Because storage is shared, writing through one field is visible through
// every sibling derived from it. Fields returned by Resolve, Update,
// Convert and the materializing path of Sort own a private copy instead.
//
// Operations that need a type parameter beyond the field's own (folds,
// converting maps, grouping) are package-level functions.
package field

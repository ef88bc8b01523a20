package index

import "golang.org/x/exp/slices"

// Flatten builds the O(1) index a resolved field or frame is left with:
// the same keys in the same order, bound to dense positions 0..n-1. When
// the keys are exactly the integers 0..n-1 the result is the identity
// Sequence (which keeps negative-key aliasing); otherwise it is an
// order-preserving Mapping.
func Flatten[K comparable](keys []K) (Index[K], error) {
	if ints, ok := any(keys).([]int); ok {
		identity := true
		for i, key := range ints {
			if key != i {
				identity = false
				break
			}
		}
		if identity {
			return any(Range(len(ints))).(Index[K]), nil
		}
	}
	positions := make([]int, len(keys))
	for i := range positions {
		positions[i] = i
	}
	return MappingOf(slices.Clone(keys), positions)
}

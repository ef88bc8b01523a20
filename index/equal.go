package index

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether two indices are structurally equal: same keys in
// the same canonical order, resolving to the same positions. The internal
// representations need not match; a composition that happens to resolve
// like a plain mapping compares equal to it.
func Equal[K comparable](a, b Index[K]) bool {
	if a.Len() != b.Len() {
		return false
	}
	bKeys := b.Keys()
	for i, key := range a.Keys() {
		if key != bKeys[i] {
			return false
		}
		aPos, aErr := a.Find(key)
		bPos, bErr := b.Find(key)
		if aErr != nil || bErr != nil || aPos != bPos {
			return false
		}
	}
	return true
}

// Hash returns a structural hash over the index's (key, position) pairs.
// Per-pair digests are folded with XOR, so the hash does not depend on
// iteration order and equal indices hash identically even when their
// canonical orders differ.
func Hash[K comparable](ix Index[K]) uint64 {
	keyFn := keyFnFor[K]()
	var h uint64
	for _, key := range ix.Keys() {
		pos, err := ix.Find(key)
		if err != nil {
			continue // unreachable for a well-formed index
		}
		var digest xxhash.Digest
		digest.Reset()
		_, _ = digest.Write(keyFor(keyFn, key))
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(pos))
		_, _ = digest.Write(b[:])
		h ^= digest.Sum64()
	}
	return h
}

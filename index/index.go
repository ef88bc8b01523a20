package index

// An Index maps a finite domain of keys to positions in flat backing
// storage. Implementations are immutable: deriving operations such as
// Compose and Mask return new values.
type Index[K comparable] interface {
	// Contains reports whether key belongs to the domain.
	Contains(key K) bool

	// Len returns the number of keys in the domain.
	Len() int

	// Keys returns the domain in canonical iteration order.
	Keys() []K

	// Find resolves key to a storage position. A key outside the domain
	// fails with ErrNotFound.
	Find(key K) (int, error)
}

package index

import "errors"

// Failure conditions surfaced by this package and by the field package
// built on top of it. All errors are wrapped, so they must be tested with
// errors.Is.
var (
	// ErrNotFound reports a key that does not resolve through an index's
	// domain. It is never substituted with a default value.
	ErrNotFound = errors.New("key not found")

	// ErrDomainMismatch reports a failed containment check: a verified
	// composition whose outer image escapes the inner domain, or a field
	// bound to an index that points outside its storage.
	ErrDomainMismatch = errors.New("domain mismatch")

	// ErrConstruction reports an index whose invariant is violated at
	// construction, such as a sequence built from duplicate positions.
	ErrConstruction = errors.New("invalid construction")
)

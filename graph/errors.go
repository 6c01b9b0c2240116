package graph

import "errors"

// Sentinel errors wrapped by the *dolly.UsageError values this package panics with.
var (
	// ErrNilSession indicates a session-scoped helper was called without a session.
	ErrNilSession = errors.New("nil session")

	// ErrNotPointer indicates a graph member is not a pointer, so it has no identity.
	ErrNotPointer = errors.New("graph member is not a pointer")
)

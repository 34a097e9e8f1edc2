package sumtree

import "errors"

var (
	// ErrNoMonoid signals tree construction without an aggregation monoid.
	ErrNoMonoid = errors.New("sumtree: monoid is required")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("sumtree: index out of bounds")
	// ErrBrokenInvariant signals a failed structural self-check.
	ErrBrokenInvariant = errors.New("sumtree: tree invariant violated")
)

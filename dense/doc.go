/*
Package dense provides a logically dense view over a sum tree with
soft-deleted slots.

Deleting an element does not move any physical storage. Instead the slot
is reset to the monoid's neutral element, so it stops contributing to
range aggregates, and flagged in a parallel counting tree. Caller-visible
indices stay dense: index i always addresses the (i+1)-th surviving
element, with the translation to physical storage done by a binary search
over deletion counts in O(log²n).

Deleted slots are never reclaimed or compacted; physical positions are
stable once assigned, which is exactly the invariant the translation
search relies on.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dense

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sumtree'
func tracer() tracing.Trace {
	return tracing.Select("sumtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

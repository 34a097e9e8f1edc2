/*
Package sumtree provides an array-backed segment tree (a "sum tree")
generic over the element type.

A tree is built over an ordered sequence of elements and aggregates them
with a caller-supplied monoid: an associative combine operation together
with its identity element. On top of point update and range aggregation
the tree supports appending with amortized growth, so it can serve as a
summarized dynamic array.

	Operation     |   Tree          |  Slice
	--------------+-----------------+--------
	Get           |   O(log n)      |   O(1)
	Set           |   O(log n)      |   O(n) for re-aggregation
	QueryRange    |   O(log n)      |   O(n)
	Add           |   O(log n)      |   O(1)

	(Add is amortized; a single append may trigger an O(n) rebuild.)

The tree is stored without pointers in a single backing slice of length
2n-1, addressed by subtree-size arithmetic, and therefore works for
capacities that are not powers of two. Subpackage dense layers a
deletion-masking view on top, keeping caller-visible indices dense while
deleted slots stay in physical storage as permanently neutral leaves.

Trees are not safe for concurrent mutation; callers sharing an instance
across goroutines must synchronize externally.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sumtree

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

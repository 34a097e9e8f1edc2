package sumtree

import "fmt"

// Get returns the element at position i.
func (t *Tree[T]) Get(i int) (T, error) {
	return t.QueryRange(i, i)
}

// QueryRange returns the elements in positions [start, end] combined
// left-to-right with the tree's monoid. Both bounds must lie in
// [0, Len()); a reversed range (start > end) covers no position and
// yields the monoid's neutral element.
func (t *Tree[T]) QueryRange(start, end int) (T, error) {
	var zero T
	if t == nil {
		return zero, fmt.Errorf("%w: nil tree", ErrIndexOutOfBounds)
	}
	if start < 0 || start >= t.length {
		return zero, fmt.Errorf("%w: start=%d, len=%d", ErrIndexOutOfBounds, start, t.length)
	}
	if end < 0 || end >= t.length {
		return zero, fmt.Errorf("%w: end=%d, len=%d", ErrIndexOutOfBounds, end, t.length)
	}
	return t.query(0, 0, t.capacity-1, start, end), nil
}

// query descends from node covering [nodeStart, nodeEnd]. Three cases,
// in this order: the node range is contained in the query range and its
// stored aggregate is returned without further descent; the ranges are
// disjoint and the neutral element is returned; the ranges overlap
// partially and both children are combined, left before right, so
// non-commutative monoids see operands in logical order.
func (t *Tree[T]) query(node, nodeStart, nodeEnd, start, end int) T {
	if start <= nodeStart && nodeEnd <= end {
		return t.nodes[node]
	}
	if nodeEnd < start || end < nodeStart {
		return t.monoid.Zero()
	}
	mid := nodeStart + (nodeEnd-nodeStart)/2
	return t.monoid.Add(
		t.query(node+1, nodeStart, mid, start, end),
		t.query(rightChild(node, nodeStart, mid), mid+1, nodeEnd, start, end),
	)
}

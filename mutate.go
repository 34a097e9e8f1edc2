package sumtree

import "fmt"

// Set replaces the element at position i and recomputes the aggregates
// of all its ancestors.
func (t *Tree[T]) Set(i int, v T) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIndexOutOfBounds)
	}
	if i < 0 || i >= t.length {
		return fmt.Errorf("%w: index=%d, len=%d", ErrIndexOutOfBounds, i, t.length)
	}
	t.update(0, 0, t.capacity-1, i, v)
	return nil
}

// update descends to the leaf for position i and refreshes each
// aggregate on the unwind.
func (t *Tree[T]) update(node, nodeStart, nodeEnd, i int, v T) {
	if nodeStart == nodeEnd {
		t.nodes[node] = v
		return
	}
	mid := nodeStart + (nodeEnd-nodeStart)/2
	left := node + 1
	right := rightChild(node, nodeStart, mid)
	if i <= mid {
		t.update(left, nodeStart, mid, i, v)
	} else {
		t.update(right, mid+1, nodeEnd, i, v)
	}
	t.nodes[node] = t.monoid.Add(t.nodes[left], t.nodes[right])
}

// Add appends v after the last logical position, growing the backing
// array first when the tree is at capacity. Growth more than doubles the
// capacity, so a sequence of appends costs O(log n) amortized per
// element even though a single call may rebuild the whole tree.
func (t *Tree[T]) Add(v T) {
	if t.length == t.capacity {
		t.Resize(2*t.capacity + 1) // yields 1 for an empty tree
		assert(t.length < t.capacity, "growth did not open a free slot")
	}
	t.length++
	t.update(0, 0, t.capacity-1, t.length-1, v)
}

// Resize grows the backing array to newCapacity leaf slots of which the
// slots beyond Len() hold the neutral element, and rebuilds every
// aggregate. The logical length does not change. The tree never shrinks:
// a newCapacity of at most Cap() is a no-op.
func (t *Tree[T]) Resize(newCapacity int) {
	if newCapacity <= t.capacity {
		return
	}
	tracer().Debugf("sumtree grows capacity %d -> %d (len=%d)", t.capacity, newCapacity, t.length)
	values := make([]T, newCapacity)
	for i := 0; i < t.length; i++ {
		values[i] = t.query(0, 0, t.capacity-1, i, i)
	}
	for i := t.length; i < newCapacity; i++ {
		values[i] = t.monoid.Zero()
	}
	t.rebuild(values)
}

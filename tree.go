package sumtree

import (
	"fmt"
	"iter"
)

// Tree is an array-backed segment tree over elements of type T.
//
// Nodes live in a single backing slice of length 2*capacity-1. Node 0 is
// the root and covers positions [0, capacity-1]; a node covering
// [start, end] splits at mid = start + (end-start)/2, its left child
// directly follows it, and the right child follows the left child's
// complete subtree. Subtree sizes are not uniform when the capacity is
// not a power of two, so child offsets are computed from leaf counts
// rather than bit shifts.
//
// length counts the logically valid positions; positions in
// [length, capacity) are padding introduced by growth and hold the
// monoid's neutral element.
type Tree[T any] struct {
	monoid   Monoid[T]
	nodes    []T
	length   int
	capacity int
}

// New builds a tree over values; capacity and length both equal
// len(values). A zero-length input yields a valid empty tree. The monoid
// is required.
func New[T any](values []T, m Monoid[T]) (*Tree[T], error) {
	if m == nil {
		return nil, ErrNoMonoid
	}
	t := &Tree[T]{monoid: m, length: len(values)}
	t.rebuild(values)
	return t, nil
}

// FromFunc builds a tree over the n values f(0) … f(n-1).
func FromFunc[T any](n int, f func(i int) T, m Monoid[T]) (*Tree[T], error) {
	if n < 0 || (n > 0 && f == nil) {
		return nil, fmt.Errorf("%w: n=%d", ErrIndexOutOfBounds, n)
	}
	values := make([]T, n)
	for i := range values {
		values[i] = f(i)
	}
	return New(values, m)
}

// rebuild reallocates the backing slice for len(values) leaves and
// recomputes every node. It leaves t.length untouched.
func (t *Tree[T]) rebuild(values []T) {
	t.capacity = len(values)
	if t.capacity == 0 {
		t.nodes = nil
		return
	}
	t.nodes = make([]T, 2*t.capacity-1)
	t.build(values, 0, 0, t.capacity-1)
}

// build fills the subtree at node covering [start, end] bottom-up.
func (t *Tree[T]) build(values []T, node, start, end int) {
	if start == end {
		t.nodes[node] = values[start]
		return
	}
	mid := start + (end-start)/2
	left := node + 1
	right := rightChild(node, start, mid)
	t.build(values, left, start, mid)
	t.build(values, right, mid+1, end)
	t.nodes[node] = t.monoid.Add(t.nodes[left], t.nodes[right])
}

// rightChild returns the node index of the right child of node, where
// node covers a range starting at start and splitting at mid. The left
// subtree holds mid-start+1 leaves and therefore occupies
// 2*(mid-start+1)-1 slots directly after node.
func rightChild(node, start, mid int) int {
	return node + 2*(mid-start+1)
}

// Len returns the number of logically valid positions.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Cap returns the number of leaf slots the backing array can hold
// without a rebuild.
func (t *Tree[T]) Cap() int {
	if t == nil {
		return 0
	}
	return t.capacity
}

// Monoid returns the aggregation monoid the tree was built with, so a
// wrapping layer can reuse the same combine operation and identity.
func (t *Tree[T]) Monoid() Monoid[T] {
	return t.monoid
}

// Zero returns the monoid's neutral element.
func (t *Tree[T]) Zero() T {
	return t.monoid.Zero()
}

// All returns an iterator over (position, element) pairs in logical
// order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t == nil || t.length == 0 {
			return
		}
		t.eachLeaf(0, 0, t.capacity-1, yield)
	}
}

// Values returns an iterator over the elements in logical order.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Each visits all elements in logical order. Iteration stops at the
// first callback error and returns that error to the caller.
func (t *Tree[T]) Each(f func(i int, v T) error) error {
	var err error
	for i, v := range t.All() {
		if err = f(i, v); err != nil {
			break
		}
	}
	return err
}

// eachLeaf walks the leaves of the subtree at node covering
// [start, end], skipping growth padding beyond t.length.
func (t *Tree[T]) eachLeaf(node, start, end int, yield func(int, T) bool) bool {
	if start >= t.length {
		return true
	}
	if start == end {
		return yield(start, t.nodes[node])
	}
	mid := start + (end-start)/2
	if !t.eachLeaf(node+1, start, mid, yield) {
		return false
	}
	return t.eachLeaf(rightChild(node, start, mid), mid+1, end, yield)
}

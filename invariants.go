package sumtree

import "fmt"

// Check validates structural tree invariants: backing size, length
// bounds, and that every internal node stores the combination of its
// children. Monoid element types are not required to be comparable, so
// the caller supplies the equality predicate.
//
// This checker is intentionally strict and meant for tests.
func (t *Tree[T]) Check(eq func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrBrokenInvariant)
	}
	if eq == nil {
		return fmt.Errorf("%w: equality predicate is required", ErrBrokenInvariant)
	}
	if t.monoid == nil {
		return fmt.Errorf("%w: tree has no monoid", ErrBrokenInvariant)
	}
	if t.length < 0 || t.length > t.capacity {
		return fmt.Errorf("%w: length %d outside [0, capacity=%d]", ErrBrokenInvariant, t.length, t.capacity)
	}
	if t.capacity == 0 {
		if len(t.nodes) != 0 {
			return fmt.Errorf("%w: empty tree must have empty backing", ErrBrokenInvariant)
		}
		return nil
	}
	if len(t.nodes) != 2*t.capacity-1 {
		return fmt.Errorf("%w: backing size %d, want %d", ErrBrokenInvariant, len(t.nodes), 2*t.capacity-1)
	}
	return t.checkNode(0, 0, t.capacity-1, eq)
}

func (t *Tree[T]) checkNode(node, start, end int, eq func(a, b T) bool) error {
	if start == end {
		if start >= t.length && !eq(t.nodes[node], t.monoid.Zero()) {
			return fmt.Errorf("%w: padding leaf %d is not neutral", ErrBrokenInvariant, start)
		}
		return nil
	}
	mid := start + (end-start)/2
	left := node + 1
	right := rightChild(node, start, mid)
	if err := t.checkNode(left, start, mid, eq); err != nil {
		return err
	}
	if err := t.checkNode(right, mid+1, end, eq); err != nil {
		return err
	}
	if !eq(t.nodes[node], t.monoid.Add(t.nodes[left], t.nodes[right])) {
		return fmt.Errorf("%w: node over [%d,%d] does not combine its children", ErrBrokenInvariant, start, end)
	}
	return nil
}

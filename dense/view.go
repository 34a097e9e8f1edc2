package dense

import (
	"fmt"
	"iter"

	"github.com/npillmayer/sumtree"
)

// View presents the surviving elements of a sum tree under dense,
// 0-based logical indices.
//
// Two co-indexed trees share one physical index space: values holds the
// elements, deleted counts per slot (0 or 1) whether the slot has been
// soft-deleted. The deletion counts double as the search structure for
// translating logical to physical indices.
//
// length counts surviving elements only. It is distinct from the value
// tree's capacity, which additionally counts deleted slots and growth
// slack.
type View[T any] struct {
	values  *sumtree.Tree[T]
	deleted *sumtree.Tree[int]
	length  int
}

// New builds a view over values with every slot alive. The monoid is
// required and obeys the same laws as for sumtree.New.
func New[T any](values []T, m sumtree.Monoid[T]) (*View[T], error) {
	vt, err := sumtree.New(values, m)
	if err != nil {
		return nil, err
	}
	dt, err := sumtree.New(make([]int, len(values)), sumtree.Sum[int]())
	assert(err == nil, "dense.New: cannot build deletion-count tree")
	return &View[T]{
		values:  vt,
		deleted: dt,
		length:  len(values),
	}, nil
}

// translate maps a logical index (rank among surviving elements) to its
// physical index in the backing trees.
//
// Binary search over the physical range [index, values.Cap()-1]: a
// candidate position mid can only be the answer if exactly mid-index of
// the slots before it are deleted. When mid-index falls short of the
// deletion count up to mid, the candidate sits too early in physical
// space and the search moves right; otherwise it moves left. The search
// converges on the smallest physical position p whose prefix [0, p]
// holds index+1 surviving slots.
//
// Each step costs one range sum over the deletion tree, so translation
// is O(log²n).
func (v *View[T]) translate(index int) int {
	low, high := index, v.values.Cap()-1
	for low <= high {
		mid := low + (high-low)/2
		deletedCount := v.deletedUpTo(mid)
		if mid-index < deletedCount {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return low
}

// deletedUpTo returns the number of deleted slots in physical [0, p].
// Flags beyond the appended prefix of the deletion tree are zero, so p
// is clamped to the tree's length without changing the count.
func (v *View[T]) deletedUpTo(p int) int {
	last := v.deleted.Len() - 1
	if last < 0 {
		return 0
	}
	if p > last {
		p = last
	}
	n, err := v.deleted.QueryRange(0, p)
	assert(err == nil, "dense: deletion count query out of bounds")
	return n
}

// Get returns the surviving element at logical index i.
func (v *View[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, fmt.Errorf("%w: index=%d, len=%d", ErrIndexOutOfBounds, i, v.length)
	}
	return v.values.Get(v.translate(i))
}

// Set replaces the surviving element at logical index i.
func (v *View[T]) Set(i int, value T) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index=%d, len=%d", ErrIndexOutOfBounds, i, v.length)
	}
	return v.values.Set(v.translate(i), value)
}

// QueryRange combines the surviving elements at logical positions
// [start, end] with the view's monoid. Deleted slots inside the
// translated physical range hold the neutral element and do not
// contribute. A reversed range yields the neutral element.
func (v *View[T]) QueryRange(start, end int) (T, error) {
	var zero T
	if start < 0 || start >= v.length {
		return zero, fmt.Errorf("%w: start=%d, len=%d", ErrIndexOutOfBounds, start, v.length)
	}
	if end < 0 || end >= v.length {
		return zero, fmt.Errorf("%w: end=%d, len=%d", ErrIndexOutOfBounds, end, v.length)
	}
	return v.values.QueryRange(v.translate(start), v.translate(end))
}

// Add appends a new surviving element after the last logical position.
func (v *View[T]) Add(value T) {
	v.values.Add(value)
	v.deleted.Add(0)
	v.length++
}

// Delete soft-deletes the element at logical index i: its physical slot
// is flagged as deleted and reset to the neutral element, so it stops
// contributing to aggregates while keeping its physical position. The
// elements after i shift down by one logical index.
func (v *View[T]) Delete(i int) error {
	if v.length == 0 {
		return ErrUnderflow
	}
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index=%d, len=%d", ErrIndexOutOfBounds, i, v.length)
	}
	p := v.translate(i)
	tracer().Debugf("dense delete: logical %d -> physical %d", i, p)
	if err := v.deleted.Set(p, 1); err != nil {
		return err
	}
	if err := v.values.Set(p, v.values.Zero()); err != nil {
		return err
	}
	v.length--
	return nil
}

// Len returns the number of surviving elements.
func (v *View[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// Cap returns the physical capacity not consumed by deleted slots: the
// remaining structural room before the next backing resize. Deleted
// slots stay in physical storage forever, so this never grows back on
// its own.
func (v *View[T]) Cap() int {
	if v == nil {
		return 0
	}
	physical := v.values.Cap()
	if physical == 0 {
		return 0
	}
	return physical - v.deletedUpTo(physical-1)
}

// Monoid returns the aggregation monoid of the underlying value tree.
func (v *View[T]) Monoid() sumtree.Monoid[T] {
	return v.values.Monoid()
}

// All returns an iterator over (logical index, element) pairs of the
// surviving elements.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil {
			return
		}
		logical := 0
		for p, value := range v.values.All() {
			flag, err := v.deleted.Get(p)
			assert(err == nil, "dense: deletion flag lookup out of bounds")
			if flag != 0 {
				continue
			}
			if !yield(logical, value) {
				return
			}
			logical++
		}
	}
}

// Values returns an iterator over the surviving elements in logical
// order.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// Each visits all surviving elements in logical order. Iteration stops
// at the first callback error and returns that error to the caller.
func (v *View[T]) Each(f func(i int, value T) error) error {
	var err error
	for i, value := range v.All() {
		if err = f(i, value); err != nil {
			break
		}
	}
	return err
}

package sumtree

import "cmp"

// Monoid defines how elements are aggregated up the tree.
//
// For elements a, b, c, Add must be associative:
//
//	Add(Add(a, b), c) == Add(a, Add(b, c))
//
// and Zero must be a two-sided neutral element:
//
//	Add(Zero(), a) == a == Add(a, Zero())
//
// The laws are not verified; every range result of a tree built over a
// monoid that violates them is meaningless. Add need not be commutative:
// trees preserve left-to-right operand order.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Of adapts a combine function and its identity value to a Monoid.
//
// This is the constructor-argument style of supplying an operation; the
// laws documented for Monoid apply unchanged.
func Of[T any](zero T, add func(left, right T) T) Monoid[T] {
	return funcMonoid[T]{zero: zero, add: add}
}

type funcMonoid[T any] struct {
	zero T
	add  func(left, right T) T
}

func (m funcMonoid[T]) Zero() T             { return m.zero }
func (m funcMonoid[T]) Add(left, right T) T { return m.add(left, right) }

// Sum returns the additive monoid for an ordered type. For numbers this
// is arithmetic addition with identity 0, for strings concatenation with
// identity "".
func Sum[T cmp.Ordered]() Monoid[T] {
	return sumMonoid[T]{}
}

type sumMonoid[T cmp.Ordered] struct{}

func (sumMonoid[T]) Zero() T             { var zero T; return zero }
func (sumMonoid[T]) Add(left, right T) T { return left + right }

// Min returns the minimum monoid. Ordered types have no generic greatest
// value, so the caller supplies top, an element known to compare >= every
// element ever stored (e.g. math.MaxInt).
func Min[T cmp.Ordered](top T) Monoid[T] {
	return Of(top, func(left, right T) T {
		return min(left, right)
	})
}

// Max returns the maximum monoid with the caller-supplied least element
// bottom (e.g. math.MinInt).
func Max[T cmp.Ordered](bottom T) Monoid[T] {
	return Of(bottom, func(left, right T) T {
		return max(left, right)
	})
}

// SPDX-License-Identifier: MIT
// Package core: law-preserving structure combinators.
// Each constructor here builds a new structure out of existing ones such
// that the output laws follow from the input laws — no new proof burden
// lands on the caller.

package core

// Pair is the carrier of a direct product: one value from each factor.
type Pair[A, B any] struct {
	First  A
	Second B
}

// productSemigroup combines Pair values component-wise.
type productSemigroup[A, B any] struct {
	a Semigroup[A]
	b Semigroup[B]
}

// Combine applies each factor's operation to its own component.
func (p productSemigroup[A, B]) Combine(x, y Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		First:  p.a.Combine(x.First, y.First),
		Second: p.b.Combine(x.Second, y.Second),
	}
}

// productMonoid extends the product with the pair of identities.
type productMonoid[A, B any] struct {
	productSemigroup[A, B]
	ma Monoid[A]
	mb Monoid[B]
}

// Identity returns the pair of the factor identities.
func (p productMonoid[A, B]) Identity() Pair[A, B] {
	return Pair[A, B]{First: p.ma.Identity(), Second: p.mb.Identity()}
}

// ProductSemigroup returns the direct product of two semigroups: the
// component-wise operation on Pair[A, B]. Associativity of the product
// follows from associativity of each factor.
func ProductSemigroup[A, B any](a Semigroup[A], b Semigroup[B]) Semigroup[Pair[A, B]] {
	return productSemigroup[A, B]{a: a, b: b}
}

// ProductMonoid returns the direct product of two monoids. The identity
// is the pair of the factor identities.
func ProductMonoid[A, B any](a Monoid[A], b Monoid[B]) Monoid[Pair[A, B]] {
	return productMonoid[A, B]{
		productSemigroup: productSemigroup[A, B]{a: a, b: b},
		ma:               a,
		mb:               b,
	}
}

// Lifted is the carrier produced by Adjoin: either a present value of T
// or the freshly adjoined identity (the zero Lifted, Valid == false).
type Lifted[T any] struct {
	Value T
	Valid bool
}

// Lift wraps a plain carrier value as a present Lifted value.
func Lift[T any](v T) Lifted[T] {
	return Lifted[T]{Value: v, Valid: true}
}

// adjoined extends a bare semigroup to a monoid over Lifted values.
type adjoined[T any] struct {
	s Semigroup[T]
}

// Combine treats the absent value as neutral and otherwise delegates.
func (m adjoined[T]) Combine(x, y Lifted[T]) Lifted[T] {
	switch {
	case !x.Valid:
		return y
	case !y.Valid:
		return x
	default:
		return Lift(m.s.Combine(x.Value, y.Value))
	}
}

// Identity returns the adjoined neutral element.
func (m adjoined[T]) Identity() Lifted[T] {
	return Lifted[T]{}
}

// Adjoin turns any Semigroup into a Monoid by adjoining a new identity
// element outside the carrier. The result lets semigroup-only structures
// ride the monoid engines (e.g. empty-input-safe reduction) at the cost
// of one wrapper per value.
func Adjoin[T any](s Semigroup[T]) Monoid[Lifted[T]] {
	return adjoined[T]{s: s}
}

// mapUnion merges maps key-wise, resolving collisions with the value
// semigroup.
type mapUnion[K comparable, V any] struct {
	s Semigroup[V]
}

// Combine returns a fresh map holding the key-wise union of x and y.
// Neither input is mutated. Keys present in both maps combine their
// values with x's value on the left, preserving operand order for
// non-commutative value semigroups.
func (m mapUnion[K, V]) Combine(x, y map[K]V) map[K]V {
	out := make(map[K]V, len(x)+len(y))
	for k, v := range x {
		out[k] = v
	}
	for k, v := range y {
		if w, ok := out[k]; ok {
			out[k] = m.s.Combine(w, v)
		} else {
			out[k] = v
		}
	}

	return out
}

// Identity returns the empty map.
func (m mapUnion[K, V]) Identity() map[K]V {
	return map[K]V{}
}

// MapUnion lifts a Semigroup on V to a Monoid on map[K]V: maps combine
// by union, and values colliding on a key combine with s. The empty map
// is the identity. A nil map is accepted as an operand and treated as
// empty.
func MapUnion[K comparable, V any](s Semigroup[V]) Monoid[map[K]V] {
	return mapUnion[K, V]{s: s}
}

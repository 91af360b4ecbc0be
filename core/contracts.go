// SPDX-License-Identifier: MIT
// Package core: the contract hierarchy.
// This file declares ONLY the capability interfaces. Concrete structures
// live in catalog/; law-preserving combinators live in combinators.go.

package core

// Semigroup describes a carrier type T closed under an associative
// binary operation.
//
// Law (associativity), required for all a, b, c of T:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// Associativity is what lets the reduction engine regroup a fold into a
// balanced tree or independent chunks without changing the result.
// Commutativity is NOT part of the contract and is never assumed.
type Semigroup[T any] interface {
	// Combine merges two values of the carrier. Must be associative and
	// must not mutate its arguments or retain references to them.
	Combine(a, b T) T
}

// Monoid is a Semigroup with a distinguished identity element.
//
// Law (identity), required for all x of T:
//
//	Combine(Identity(), x) == x == Combine(x, Identity())
//
// The identity is a property of the structure, not of any particular
// value; Identity must return an equivalent element on every call.
type Monoid[T any] interface {
	Semigroup[T]

	// Identity returns the neutral element of Combine.
	Identity() T
}

// Semiring couples two Monoid witnesses over one carrier T: an additive
// monoid (⊕ with identity 0̄) and a multiplicative monoid (⊗ with
// identity 1̄).
//
// Laws, required for all x, y, z of T, beyond the two monoid contracts:
//
//	x ⊗ (y ⊕ z) == (x ⊗ y) ⊕ (x ⊗ z)   // left distributivity
//	(x ⊕ y) ⊗ z == (x ⊗ z) ⊕ (y ⊗ z)   // right distributivity
//	0̄ ⊗ x == 0̄ == x ⊗ 0̄               // 0̄ absorbs under ⊗
//
// These are exactly the laws that make the generic closure kernel valid
// for every plugged-in structure.
type Semiring[T any] interface {
	// Additive returns the ⊕ monoid witness.
	Additive() Monoid[T]

	// Multiplicative returns the ⊗ monoid witness.
	Multiplicative() Monoid[T]
}

// Idempotent is an optional capability a Semiring may implement to
// declare whether its additive operation is idempotent (a ⊕ a == a).
// Idempotence guarantees the closure iteration converges in bounded
// steps; the closure engine consults this capability before honoring an
// early-stop request and refuses it when the structure answers false.
//
// A structure that does not implement Idempotent makes no claim either
// way, and the caller carries the burden of choosing sound options.
type Idempotent interface {
	// IdempotentAdditive reports whether a ⊕ a == a for all a.
	IdempotentAdditive() bool
}

// Package core defines the algebraic contracts every other package in
// this module builds on: Semigroup, Monoid and Semiring.
//
// A structure is a stateless, freely shareable description of an algebra
// over some carrier type T — typically an empty struct or a tiny value
// carrying only its identity sentinel. No structure holds mutable state,
// so a single value may be shared across any number of goroutines.
//
// The hierarchy:
//
//	Semigroup[T] — Combine(a, b T) T, closed and associative
//	Monoid[T]    — Semigroup[T] + Identity() T, the neutral element
//	Semiring[T]  — two Monoid[T] witnesses over the same carrier:
//	               Additive (⊕, identity 0̄) and Multiplicative (⊗, identity 1̄),
//	               with ⊗ distributing over ⊕ from both sides and 0̄
//	               absorbing under ⊗
//
// Laws are unchecked preconditions. The engines in reduce/ and closure/
// are correct precisely because these laws hold; an implementation that
// violates them produces silently wrong results, never a crash. This is
// deliberate: law verification is not mechanically decidable for
// arbitrary carriers, so law-abidance is the implementer's contract.
//
// Beyond the contracts, core ships structure combinators that preserve
// the laws by construction:
//
//   - ProductSemigroup / ProductMonoid — the direct product of two
//     structures, combining Pair values component-wise.
//   - Adjoin — freely adjoin an identity to any Semigroup, yielding a
//     Monoid over Lifted values (the "absent" Lifted is the new identity).
//   - MapUnion — lift a Semigroup on values to a Monoid on maps, merging
//     key collisions with Combine.
//
// and the square-and-multiply powers Power / PowerSemigroup, which
// compute x^n in O(log n) Combine calls — legal for any associative
// operation, no commutativity required.
package core

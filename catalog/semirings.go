// SPDX-License-Identifier: MIT
// Package catalog: semiring descriptors.
// Each semiring couples two monoid witnesses from monoids.go over the
// same carrier. The distributivity/absorption laws hold for each entry
// by the arithmetic of its carrier; none are re-checked at runtime.

package catalog

import "github.com/katalvlaran/algebra/core"

// Tropical is the min-plus semiring over float64:
//
//	⊕ = min, 0̄ = +Inf;  ⊗ = +, 1̄ = 0.
//
// Absorption holds because +Inf + x == +Inf in IEEE 754. Plugged into
// the closure engine it yields all-pairs shortest-path distances, with
// +Inf meaning "no path". The additive operation is idempotent, so the
// closure converges and early stopping is sound.
type Tropical struct{}

// Additive returns the min monoid with +Inf identity.
func (Tropical) Additive() core.Monoid[float64] { return MinFloat64() }

// Multiplicative returns the numeric-sum monoid (identity 0).
func (Tropical) Multiplicative() core.Monoid[float64] { return Sum[float64]{} }

// IdempotentAdditive reports true: min(a, a) == a.
func (Tropical) IdempotentAdditive() bool { return true }

// MaxPlus is the max-plus semiring over float64:
//
//	⊕ = max, 0̄ = -Inf;  ⊗ = +, 1̄ = 0.
//
// The dual of Tropical: closure yields longest/critical-path lengths on
// acyclic relations, with -Inf meaning "no path". ⊕ is idempotent, but
// note that on a relation with a positive-weight cycle the true closure
// is unbounded; the engine's fixed iteration count returns the best
// path using at most n hops.
type MaxPlus struct{}

// Additive returns the max monoid with -Inf identity.
func (MaxPlus) Additive() core.Monoid[float64] { return MaxFloat64() }

// Multiplicative returns the numeric-sum monoid (identity 0).
func (MaxPlus) Multiplicative() core.Monoid[float64] { return Sum[float64]{} }

// IdempotentAdditive reports true: max(a, a) == a.
func (MaxPlus) IdempotentAdditive() bool { return true }

// Reach is the boolean semiring:
//
//	⊕ = or, 0̄ = false;  ⊗ = and, 1̄ = true.
//
// Absorption holds because false && x == false. Plugged into the closure
// engine it yields all-pairs reachability. Idempotent.
type Reach struct{}

// Additive returns the boolean-or monoid.
func (Reach) Additive() core.Monoid[bool] { return Or{} }

// Multiplicative returns the boolean-and monoid.
func (Reach) Multiplicative() core.Monoid[bool] { return And{} }

// IdempotentAdditive reports true: a || a == a.
func (Reach) IdempotentAdditive() bool { return true }

// Count is the counting semiring over a numeric carrier:
//
//	⊕ = +, 0̄ = 0;  ⊗ = ×, 1̄ = 1.
//
// Plugged into the closure engine it counts distinct paths instead of
// measuring or deciding them. The additive operation is NOT idempotent:
// over a cyclic relation the unbounded closure diverges, and the engine
// returns the well-defined bounded result of its fixed iteration count
// (paths whose intermediate hops are visited once). Prefer acyclic
// relations, or treat the output accordingly.
type Count[T Number] struct{}

// Additive returns the numeric-sum monoid.
func (Count[T]) Additive() core.Monoid[T] { return Sum[T]{} }

// Multiplicative returns the numeric-product monoid.
func (Count[T]) Multiplicative() core.Monoid[T] { return Product[T]{} }

// IdempotentAdditive reports false: a + a != a for a != 0.
func (Count[T]) IdempotentAdditive() bool { return false }

// Compile-time contract checks.
var (
	_ core.Semiring[float64] = Tropical{}
	_ core.Semiring[float64] = MaxPlus{}
	_ core.Semiring[bool]    = Reach{}
	_ core.Semiring[int]     = Count[int]{}

	_ core.Idempotent = Tropical{}
	_ core.Idempotent = MaxPlus{}
	_ core.Idempotent = Reach{}
	_ core.Idempotent = Count[int]{}
)

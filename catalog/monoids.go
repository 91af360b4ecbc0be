// SPDX-License-Identifier: MIT
// Package catalog: monoid descriptors over numeric, ordered, boolean,
// bitwise and sequence carriers.

package catalog

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/algebra/core"
)

// Number constrains the carriers of the arithmetic structures.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is the additive monoid: Combine is +, identity is 0.
type Sum[T Number] struct{}

// Combine returns a + b.
func (Sum[T]) Combine(a, b T) T { return a + b }

// Identity returns 0.
func (Sum[T]) Identity() T { return 0 }

// Product is the multiplicative monoid: Combine is ×, identity is 1.
type Product[T Number] struct{}

// Combine returns a × b.
func (Product[T]) Combine(a, b T) T { return a * b }

// Identity returns 1.
func (Product[T]) Identity() T { return 1 }

// Min combines by minimum. Top is the identity and must be an upper
// bound of every value the caller will feed in — for a carrier with no
// natural +∞ (integers), use the type's maximum representable value.
type Min[T constraints.Ordered] struct {
	// Top is the identity sentinel, an upper bound of the carrier values.
	Top T
}

// Combine returns the smaller of a and b.
func (Min[T]) Combine(a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Identity returns the Top sentinel.
func (m Min[T]) Identity() T { return m.Top }

// Max combines by maximum. Floor is the identity and must be a lower
// bound of every value the caller will feed in.
type Max[T constraints.Ordered] struct {
	// Floor is the identity sentinel, a lower bound of the carrier values.
	Floor T
}

// Combine returns the larger of a and b.
func (Max[T]) Combine(a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Identity returns the Floor sentinel.
func (m Max[T]) Identity() T { return m.Floor }

// MinFloat64 returns the Min monoid over float64 with +Inf as identity.
func MinFloat64() Min[float64] { return Min[float64]{Top: math.Inf(1)} }

// MaxFloat64 returns the Max monoid over float64 with -Inf as identity.
func MaxFloat64() Max[float64] { return Max[float64]{Floor: math.Inf(-1)} }

// Or is boolean disjunction: identity false. Idempotent.
type Or struct{}

// Combine returns a || b.
func (Or) Combine(a, b bool) bool { return a || b }

// Identity returns false.
func (Or) Identity() bool { return false }

// And is boolean conjunction: identity true. Idempotent.
type And struct{}

// Combine returns a && b.
func (And) Combine(a, b bool) bool { return a && b }

// Identity returns true.
func (And) Identity() bool { return true }

// BitOr is bitwise union over an unsigned carrier: identity 0.
type BitOr[T constraints.Unsigned] struct{}

// Combine returns a | b.
func (BitOr[T]) Combine(a, b T) T { return a | b }

// Identity returns 0 (no bits set).
func (BitOr[T]) Identity() T { return 0 }

// BitAnd is bitwise intersection over an unsigned carrier: identity is
// the all-ones word.
type BitAnd[T constraints.Unsigned] struct{}

// Combine returns a & b.
func (BitAnd[T]) Combine(a, b T) T { return a & b }

// Identity returns the all-ones value of T.
func (BitAnd[T]) Identity() T {
	var zero T

	return ^zero
}

// Concat is string concatenation: identity "". Associative but NOT
// commutative — the engines must (and do) preserve operand order.
type Concat struct{}

// Combine returns a + b.
func (Concat) Combine(a, b string) string { return a + b }

// Identity returns the empty string.
func (Concat) Identity() string { return "" }

// Append is slice concatenation: identity nil. Combine always allocates
// a fresh slice, so neither operand's backing array is ever shared or
// mutated.
type Append[T any] struct{}

// Combine returns a fresh slice holding a followed by b.
func (Append[T]) Combine(a, b []T) []T {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// Identity returns nil (the empty slice).
func (Append[T]) Identity() []T { return nil }

// Compile-time contract checks.
var (
	_ core.Monoid[int]      = Sum[int]{}
	_ core.Monoid[float64]  = Product[float64]{}
	_ core.Monoid[float64]  = MinFloat64()
	_ core.Monoid[int64]    = Max[int64]{Floor: math.MinInt64}
	_ core.Monoid[bool]     = Or{}
	_ core.Monoid[bool]     = And{}
	_ core.Monoid[uint64]   = BitOr[uint64]{}
	_ core.Monoid[uint8]    = BitAnd[uint8]{}
	_ core.Monoid[string]   = Concat{}
	_ core.Monoid[[]byte]   = Append[byte]{}
	_ core.Monoid[Gaussian] = GaussianMerge{}
)

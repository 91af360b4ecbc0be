// SPDX-License-Identifier: MIT
// Package core: square-and-multiply powers.
// x^n under an associative operation needs only O(log n) Combine calls:
// square the running base, multiply it in on the set bits of n. All
// factors are powers of the same x, so they commute with each other even
// when the operation itself is not commutative.

package core

import "errors"

// ErrZeroExponent indicates PowerSemigroup was called with n == 0: a
// bare semigroup has no identity to return for the empty product.
var ErrZeroExponent = errors.New("core: exponent must be positive for a semigroup power")

// Power computes x^n under the monoid m — the n-fold Combine of x with
// itself — by binary exponentiation. Power(m, x, 0) is m.Identity().
// Complexity: O(log n) Combine calls.
func Power[T any](m Monoid[T], x T, n uint64) T {
	acc := m.Identity() // empty product
	base := x

	for n > 0 {
		// Fold the current base in on every set bit of n.
		if n&1 == 1 {
			acc = m.Combine(acc, base)
		}
		n >>= 1
		// Square only while more bits remain (avoids one spurious Combine).
		if n > 0 {
			base = m.Combine(base, base)
		}
	}

	return acc
}

// PowerSemigroup computes x^n under a bare semigroup, n ≥ 1. Without an
// identity there is no empty product, so n == 0 returns ErrZeroExponent
// (and the zero value of T, which the caller must ignore).
// Complexity: O(log n) Combine calls.
func PowerSemigroup[T any](s Semigroup[T], x T, n uint64) (T, error) {
	// 1) Reject the undefined empty product.
	if n == 0 {
		var zero T

		return zero, ErrZeroExponent
	}

	// 2) Peel trailing zero bits by squaring, so the accumulator can be
	//    seeded with a real power of x instead of a nonexistent identity.
	base := x
	for n&1 == 0 {
		base = s.Combine(base, base)
		n >>= 1
	}

	// 3) Standard square-and-multiply over the remaining bits.
	acc := base
	n >>= 1
	for n > 0 {
		base = s.Combine(base, base)
		if n&1 == 1 {
			acc = s.Combine(acc, base)
		}
		n >>= 1
	}

	return acc, nil
}

// SPDX-License-Identifier: MIT
// Package reduce: the reduction strategies.
// Every strategy is pinned to the same specification: the result must
// equal the canonical left fold under the algebra's equality. Sequential
// IS the left fold; Tree and Parallel only regroup it, which
// associativity licenses.

package reduce

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algebra/core"
)

// Reduce folds xs under the monoid m as the canonical sequential left
// fold. An empty sequence yields m.Identity(); a single element x yields
// Combine(Identity, x), which the identity law makes equal to x.
// Complexity: O(len(xs)) Combine calls, O(1) extra memory.
func Reduce[T any](m core.Monoid[T], xs []T) T {
	acc := m.Identity()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}

	return acc
}

// ReduceSemigroup folds a non-empty xs under a bare semigroup, seeding
// the accumulator with the first element. An empty sequence is a
// contract violation and returns ErrEmptyReduction (with the zero value
// of T, which the caller must ignore).
// Complexity: O(len(xs)) Combine calls, O(1) extra memory.
func ReduceSemigroup[T any](s core.Semigroup[T], xs []T) (T, error) {
	if len(xs) == 0 {
		var zero T

		return zero, ErrEmptyReduction
	}

	acc := xs[0]
	for _, x := range xs[1:] {
		acc = s.Combine(acc, x)
	}

	return acc, nil
}

// FoldMap maps each element of xs into the monoid m with f and folds the
// images in one pass, without materializing the mapped sequence.
// Complexity: O(len(xs)) calls to f and Combine.
func FoldMap[S, T any](m core.Monoid[T], xs []S, f func(S) T) T {
	acc := m.Identity()
	for _, x := range xs {
		acc = m.Combine(acc, f(x))
	}

	return acc
}

// Tree folds xs as a balanced pairwise tree: split at the midpoint,
// reduce each half, combine the halves. Elements keep their left-to-right
// order, so the result equals Reduce for every lawful monoid, commutative
// or not.
// Complexity: O(len(xs)) Combine calls, O(log len(xs)) stack.
func Tree[T any](m core.Monoid[T], xs []T) T {
	if len(xs) == 0 {
		return m.Identity()
	}

	return treeReduce(m, xs)
}

// treeReduce is the non-empty divide-and-conquer core shared by Tree.
// It never consults the identity, so it is valid for bare semigroups.
func treeReduce[T any](s core.Semigroup[T], xs []T) T {
	if len(xs) == 1 {
		return xs[0]
	}
	mid := len(xs) / 2

	return s.Combine(treeReduce(s, xs[:mid]), treeReduce(s, xs[mid:]))
}

// Parallel folds xs under the monoid m using concurrent contiguous
// chunks:
//
//  1. Split xs into contiguous chunks (ChunkSize, or evenly across
//     Workers when unset).
//  2. Reduce every chunk independently on an errgroup worker — no chunk
//     shares mutable state with any other; each worker reads its own
//     sub-slice and the stateless structure, and writes its own partial
//     slot.
//  3. Combine the partials sequentially in chunk order, preserving
//     left-to-right ordering across chunk boundaries so non-commutative
//     monoids stay correct.
//
// The result equals Reduce(m, xs) under the algebra's equality.
// Complexity: O(len(xs)) Combine calls + O(chunks) for the join pass.
func Parallel[T any](m core.Monoid[T], xs []T, opts ...Option) T {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Trivial inputs skip the scheduling machinery.
	if len(xs) == 0 {
		return m.Identity()
	}
	chunk := cfg.ChunkSize
	if chunk == 0 {
		chunk = (len(xs) + cfg.Workers - 1) / cfg.Workers
	}
	chunks := (len(xs) + chunk - 1) / chunk
	if chunks == 1 {
		return Reduce(m, xs)
	}

	// 3) Fan out one chunk reduction per worker slot.
	partials := make([]T, chunks)
	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for i := 0; i < chunks; i++ {
		i := i
		lo := i * chunk
		hi := min(lo+chunk, len(xs))
		g.Go(func() error {
			partials[i] = Reduce(m, xs[lo:hi])

			return nil
		})
	}
	// Workers cannot fail; Wait is the join barrier.
	_ = g.Wait()

	// 4) Join partials in chunk order (chunk i before chunk i+1).
	return Reduce(m, partials)
}

// Package reduce folds a sequence of values under any Semigroup or
// Monoid, with interchangeable evaluation strategies.
//
// 🚀 Why an engine for a fold?
//
//	Because associativity makes the grouping of a fold irrelevant, one
//	contract admits three implementations with identical results:
//	  • Reduce   — the canonical sequential left fold
//	  • Tree     — a balanced pairwise divide-and-conquer
//	  • Parallel — contiguous chunks folded on worker goroutines, partial
//	    results joined strictly left-to-right
//
//	Swapping strategies never changes the answer (up to the algebra's own
//	notion of equality); it only changes how the work is scheduled. That
//	reorderability IS the computational benefit the algebraic contract
//	buys.
//
// Ordering & commutativity:
//
//	Commutativity is never assumed. Chunks cover contiguous index ranges
//	and their partials are combined in chunk order, so non-commutative
//	structures (string/slice concatenation) reduce correctly under every
//	strategy.
//
// Concurrency model:
//
//	Workers share no mutable state: each reads only its own chunk plus
//	the stateless structure descriptor, and writes only its own partial
//	slot. The errgroup Wait is purely a join barrier; no locks are needed
//	and no cancellation semantics are defined — calls run to completion
//	synchronously relative to the caller.
//
// Empty input:
//
//	A Monoid fold of nothing is Identity(); this is exactly why the
//	engines demand Monoid rather than Semigroup. The Semigroup-only entry
//	point ReduceSemigroup returns ErrEmptyReduction on an empty sequence,
//	since no identity exists to fall back on.
//
// Complexity: all strategies perform exactly len(xs) Combine calls on
// the elements (plus one per chunk/level to join partials); Parallel
// adds O(workers) goroutine overhead — profitable only when Combine or
// len(xs) is heavy. See bench_test.go.
package reduce

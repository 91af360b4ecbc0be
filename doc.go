// Package algebra turns algebraic structure into computational benefit:
// define an operation once, state its laws, and the same generic engines
// give you parallel reductions and all-pairs closures for free.
//
// 🚀 What is algebra?
//
//	A small, dependency-light library built around three capability sets:
//		• Semigroup — a closed associative Combine(a, b)
//		• Monoid    — a Semigroup plus an Identity element
//		• Semiring  — two Monoids (⊕ additive, ⊗ multiplicative) linked by
//		  distributivity and absorption
//
// ✨ Why do the laws matter?
//
//   - Associativity – reductions may be regrouped, so one fold can run
//     sequentially, as a balanced tree, or across worker goroutines and
//     always produce the same answer
//   - Identity – empty inputs are safe; the fold of nothing is Identity()
//   - Distributivity – one generic matrix-closure kernel computes shortest
//     paths, reachability, or path counts depending only on the semiring
//     you plug in
//
// Everything is organized under four subpackages:
//
//	core/    — the Semigroup/Monoid/Semiring contracts, product/lift/map
//	           combinators, and square-and-multiply powers
//	catalog/ — ready-made law-abiding structures: sum, product, min, max,
//	           boolean, bitwise, concat monoids; tropical, boolean,
//	           counting, max-plus semirings; mergeable Gaussian moments
//	reduce/  — the reduction engine: sequential, balanced-tree and
//	           parallel chunked folds over any Monoid
//	closure/ — the semiring closure engine: generic dense matrices,
//	           semiring matrix products, matrix powers and the
//	           Floyd–Warshall-style transitive closure
//
// Quick taste — the same Close call, three meanings:
//
//	closure.Close(catalog.Tropical{}, dist)  // all-pairs shortest paths
//	closure.Close(catalog.Reach{}, adj)      // all-pairs reachability
//	closure.Close(catalog.Count[int]{}, cnt) // number of distinct paths
//
// The laws themselves are unchecked preconditions: the engines trust your
// Combine to be associative and your semiring to distribute. Supplying a
// structure that lies about its laws yields silently wrong results, never
// a crash.
//
//	go get github.com/katalvlaran/algebra
package algebra

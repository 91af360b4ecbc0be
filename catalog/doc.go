// Package catalog ships ready-made, law-abiding algebraic structures for
// common carrier types — the plug-in points for the reduce and closure
// engines.
//
// Every structure here is a stateless value descriptor (an empty struct,
// or a tiny struct carrying only its identity sentinel). Construct them
// inline, copy them freely, share them across goroutines: there is
// nothing to initialize and nothing to tear down.
//
// Monoids:
//
//   - Sum[T] / Product[T]   — numeric addition / multiplication
//   - Min[T] / Max[T]       — minimum / maximum over an ordered carrier,
//     carrying the identity sentinel (Top / Floor); MinFloat64 and
//     MaxFloat64 use ±Inf
//   - Or / And              — boolean disjunction / conjunction
//   - BitOr[T] / BitAnd[T]  — bitwise union / intersection on unsigned carriers
//   - Concat / Append[T]    — string and slice concatenation (the
//     canonical non-commutative monoids)
//   - GaussianMerge         — exact merge of Gaussian sample moments
//
// Semirings:
//
//   - Tropical   — (min, +) over float64: shortest paths. ⊕-idempotent.
//   - MaxPlus    — (max, +) over float64: longest paths / critical paths.
//     ⊕-idempotent.
//   - Reach      — (or, and) over bool: reachability. ⊕-idempotent.
//   - Count[T]   — (+, ×) over a numeric carrier: counts distinct paths.
//     NOT idempotent; closure over a cyclic relation is only defined up
//     to the engine's fixed iteration bound.
//
// The catalog supplies operations and identities only; it performs no
// I/O, holds no state, and returns no errors. Law-abidance for the
// listed carriers is guaranteed, with the usual caveat that float64
// addition is associative only up to rounding — exact enough for the
// min/max-plus semirings, where ⊕ picks rather than accumulates.
package catalog

// Package closure computes iterated semiring combinations over square
// relations: matrix products, matrix powers, and the semiring-generalized
// transitive closure.
//
// 🚀 One kernel, many meanings
//
//	The closure of an n×n relation R is the ⊕-combination over all path
//	lengths k = 1..n of the ⊗-extended k-step compositions of R with
//	itself. Distributivity and absorption are exactly what make one
//	Floyd–Warshall-style kernel valid for every semiring:
//
//	  Close(catalog.Tropical{}, dist)  → all-pairs shortest paths
//	  Close(catalog.Reach{}, adj)      → all-pairs reachability
//	  Close(catalog.Count[int]{}, cnt) → number of distinct paths
//	  Close(catalog.MaxPlus{}, dur)    → critical-path lengths (DAGs)
//
// The kernel relaxes R[i][j] = R[i][j] ⊕ (R[i][k] ⊗ R[k][j]) over an
// outer "via" index k = 0..n-1. It runs exactly one such sweep by
// default; the WithConvergence option instead repeats full sweeps until
// one changes no cell — a verified fixed point — which is sound only for
// idempotent ⊕ (min, max, or) and is refused when the structure declares
// itself non-idempotent.
//
// Non-idempotent structures over cyclic relations (e.g. Count on a graph
// with cycles) have no finite unbounded closure; the engine does not
// infinite-loop — it returns the well-defined result of its fixed
// iteration count, documented rather than silently corrected.
//
// Matrices:
//
//	Matrix[T] is a generic dense row-major matrix over any carrier.
//	Construct with New (uniform fill — use the additive identity for "no
//	edge"), FromRows, or Identity (diagonal 1̄, elsewhere 0̄). At/Set
//	return ErrIndexOutOfBounds rather than panicking; kernels validate
//	shape up front and then run on the flat backing slice.
//
// Concurrency:
//
//	The triple loop is inherently sequential across k (each pass depends
//	on the previous), so Close itself runs on the calling goroutine. Mul
//	assembles each output cell's ⊗-terms and joins them with the
//	reduction engine under the additive monoid — the row/column
//	dot-products are independent per cell.
//
// Complexity: Close is O(n³) Combine pairs, O(1) extra memory in-place
// or O(n²) for the default fresh-copy mode; Mul is O(n·m·p); MatPower is
// O(log k) multiplications.
package closure

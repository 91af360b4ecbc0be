// SPDX-License-Identifier: MIT
// Package closure: the semiring kernels.
// Mul is the ⊗/⊕ generalization of matrix multiplication, MatPower the
// ⊗-extended k-step composition by iterated doubling, and Close the
// Floyd–Warshall-style transitive closure. Every kernel is valid for any
// law-abiding semiring — distributivity and absorption are precisely
// what the relaxation step relies on.

package closure

import (
	"fmt"

	"github.com/katalvlaran/algebra/core"
	"github.com/katalvlaran/algebra/reduce"
)

// Mul computes the semiring matrix product a·b: each output cell is the
// ⊕-reduction of the row-by-column ⊗-terms,
//
//	out[i][j] = ⊕ over k of (a[i][k] ⊗ b[k][j]),
//
// joined with the reduction engine under the additive monoid.
// Returns ErrNilMatrix on a nil operand and ErrDimensionMismatch when
// a.Cols != b.Rows.
// Complexity: O(a.Rows · a.Cols · b.Cols) Combine pairs.
func Mul[T any](s core.Semiring[T], a, b *Matrix[T]) (*Matrix[T], error) {
	// 1) Validate operands.
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, fmt.Errorf("closure: Mul %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	add := s.Additive()
	mul := s.Multiplicative()

	// 2) Allocate the result filled with 0̄.
	out, err := New(a.r, b.c, add.Identity())
	if err != nil {
		return nil, err
	}

	// 3) Per-cell dot products; terms buffer is reused across cells.
	terms := make([]T, a.c)
	var i, j, k int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			for k = 0; k < a.c; k++ {
				terms[k] = mul.Combine(a.data[i*a.c+k], b.data[k*b.c+j])
			}
			out.data[i*out.c+j] = reduce.Reduce(add, terms)
		}
	}

	return out, nil
}

// MatPower computes the k-step ⊗-composition m^k by iterated doubling
// over the matrix-product monoid: O(log k) multiplications instead of k.
// m must be square; k == 0 yields Identity(s, n). The input is never
// mutated.
func MatPower[T any](s core.Semiring[T], m *Matrix[T], k uint64) (*Matrix[T], error) {
	// 1) Validate input shape.
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.r != m.c {
		return nil, fmt.Errorf("closure: MatPower on %dx%d matrix: %w", m.r, m.c, ErrDimensionMismatch)
	}

	// 2) Square-and-multiply, seeded with the semiring identity matrix.
	acc, err := Identity(s, m.r)
	if err != nil {
		return nil, err
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if acc, err = Mul(s, acc, base); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(s, base, base); err != nil {
				return nil, err
			}
		}
	}

	return acc, nil
}

// Close computes the semiring-generalized transitive closure of the
// square relation m: the ⊕-combination over all path lengths 1..n of
// the ⊗-extended compositions of m with itself. The kernel is the
// Floyd–Warshall-style relaxation
//
//	R[i][j] = R[i][j] ⊕ (R[i][k] ⊗ R[k][j])
//
// with the "via" index k outermost. One full sweep runs k = 0..n-1; the
// default mode runs exactly one such sweep.
//
// Validation and options:
//
//   - nil matrix → ErrNilMatrix; non-square → ErrDimensionMismatch.
//   - Default: the input is left untouched and a fresh matrix returned;
//     WithInPlace overwrites the input instead.
//   - WithConvergence(eq) repeats full sweeps until one changes no cell,
//     i.e. until a verified fixed point. Sound only for idempotent ⊕: if
//     the semiring implements core.Idempotent and reports false, Close
//     returns ErrNotIdempotent.
//
// For a non-idempotent ⊕ over a relation with ⊗-reachable cycles the
// unbounded closure does not exist; Close still terminates after its
// single fixed sweep and returns that bounded result.
// Complexity: O(n³) Combine pairs; O(n²) extra memory unless in-place.
func Close[T any](s core.Semiring[T], m *Matrix[T], opts ...Option[T]) (*Matrix[T], error) {
	// 1) Build and apply options.
	cfg := DefaultOptions[T]()
	var opt Option[T]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the relation.
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.r != m.c {
		return nil, fmt.Errorf("closure: Close on %dx%d relation: %w", m.r, m.c, ErrDimensionMismatch)
	}

	// 3) Early stopping demands an idempotent ⊕; refuse when the
	//    structure itself declares otherwise.
	if cfg.Equal != nil {
		if idem, ok := s.(core.Idempotent); ok && !idem.IdempotentAdditive() {
			return nil, ErrNotIdempotent
		}
	}

	// 4) Choose the output buffer per configuration.
	r := m
	if !cfg.InPlace {
		r = m.Clone()
	}

	add := s.Additive()
	mul := s.Multiplicative()
	n := r.r

	// 5) Core triple loop: relax every (i,j) via every intermediate k.
	//    Cells are re-read on every step (no caching), so within-pass
	//    updates to row k / column k propagate exactly as in the
	//    classical formulation.
	//
	//    The convergence unit is a FULL sweep over k = 0..n-1: distinct
	//    k values consider distinct via-nodes, so a single unchanged
	//    k-pass proves nothing about passes that follow. Only a complete
	//    sweep that changes no cell is a fixed point.
	var i, j, k int
	for {
		changed := false
		for k = 0; k < n; k++ {
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					old := r.data[i*n+j]
					next := add.Combine(old, mul.Combine(r.data[i*n+k], r.data[k*n+j]))
					r.data[i*n+j] = next
					if cfg.Equal != nil && !changed && !cfg.Equal(old, next) {
						changed = true
					}
				}
			}
		}
		// Default mode runs exactly one sweep; convergence mode repeats
		// sweeps until one of them changes no cell.
		if cfg.Equal == nil || !changed {
			break
		}
	}

	return r, nil
}

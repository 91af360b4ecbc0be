// SPDX-License-Identifier: MIT
// Package closure: sentinel error set and functional options.
// All kernels return these sentinels and tests match them via errors.Is.
// Kernels never panic on user-triggered conditions; panics are reserved
// for invalid option construction (programmer error, signaled early).

package closure

import "errors"

// Sentinel errors returned by the closure engine.
var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("closure: nil matrix")

	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("closure: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("closure: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes: a
	// non-square relation passed to Close or MatPower, or Mul operands
	// with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("closure: dimension mismatch")

	// ErrRaggedRows indicates FromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("closure: rows have differing lengths")

	// ErrNotIdempotent indicates WithConvergence was requested for a
	// semiring that declares its additive operation non-idempotent, where
	// sweep-to-fixed-point iteration would be unsound.
	ErrNotIdempotent = errors.New("closure: convergence check requires an idempotent additive operation")

	// ErrNilEqual indicates WithConvergence was given a nil predicate.
	ErrNilEqual = errors.New("closure: convergence predicate must be non-nil")
)

// Options configures Close.
//
// InPlace – mutate the caller's matrix instead of allocating a result.
// Equal   – optional cell-equality predicate enabling convergence mode:
//
//	full k=0..n-1 sweeps repeat until one changes no cell;
//	sound only for idempotent ⊕.
type Options[T any] struct {
	InPlace bool              // overwrite the input relation
	Equal   func(a, b T) bool // nil = a single fixed sweep, no convergence check
}

// Option is a functional option for configuring Close.
type Option[T any] func(*Options[T])

// WithInPlace makes Close overwrite the caller's relation instead of
// returning a fresh matrix. The returned *Matrix is then the input. Use
// when the pre-closure relation is no longer needed and the O(n²) copy
// matters.
func WithInPlace[T any]() Option[T] {
	return func(o *Options[T]) {
		o.InPlace = true
	}
}

// WithConvergence enables convergence mode: Close repeats full
// k = 0..n-1 sweeps until eq reports an entire sweep left every cell
// unchanged — a verified fixed point. A single unchanged k-pass proves
// nothing (different k values consider different via-nodes), so the
// sweep is the smallest sound convergence unit. Sound only when ⊕ is
// idempotent; Close refuses the option with ErrNotIdempotent if the
// semiring implements core.Idempotent and answers false. A nil
// predicate panics with ErrNilEqual.
func WithConvergence[T any](eq func(a, b T) bool) Option[T] {
	if eq == nil {
		panic(ErrNilEqual.Error())
	}

	return func(o *Options[T]) {
		o.Equal = eq
	}
}

// DefaultOptions returns the Close defaults: fresh-copy output, one
// fixed sweep, no convergence detection.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{}
}

// SPDX-License-Identifier: MIT
// Package reduce: sentinel errors and functional options.
// This file declares the error taxonomy surfaced by the reduction engine
// and the Options controlling the Parallel strategy.

package reduce

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by the reduction engine.
var (
	// ErrEmptyReduction indicates a Semigroup-only reduction was asked to
	// fold an empty sequence: with no identity element there is nothing
	// lawful to return. Use a Monoid (or core.Adjoin) for empty-safe folds.
	ErrEmptyReduction = errors.New("reduce: empty sequence under a semigroup with no identity")

	// ErrBadWorkers indicates WithWorkers was given a value below 1.
	ErrBadWorkers = errors.New("reduce: Workers must be at least 1")

	// ErrBadChunkSize indicates WithChunkSize was given a value below 1.
	ErrBadChunkSize = errors.New("reduce: ChunkSize must be at least 1")
)

// Options configures the Parallel strategy.
//
// Workers   – maximum number of chunk reductions in flight at once.
// ChunkSize – elements per contiguous chunk; 0 derives a chunk size that
//
//	spreads the input evenly across Workers.
type Options struct {
	Workers   int // concurrent chunk reducers, ≥ 1
	ChunkSize int // elements per chunk, ≥ 1, or 0 for automatic
}

// Option is a functional option for configuring Parallel.
type Option func(*Options)

// WithWorkers caps the number of concurrently running chunk reductions.
// Must be ≥ 1; anything lower panics with ErrBadWorkers (invalid
// configuration is a programmer error, signaled early).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithChunkSize fixes the number of elements per chunk instead of
// deriving it from Workers. Must be ≥ 1; anything lower panics with
// ErrBadChunkSize. Smaller chunks increase scheduling overhead but
// smooth out uneven per-element Combine cost.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(ErrBadChunkSize.Error())
	}

	return func(o *Options) {
		o.ChunkSize = n
	}
}

// DefaultOptions returns the Parallel defaults:
//
//   - Workers:   runtime.GOMAXPROCS(0) (one chunk per available P).
//   - ChunkSize: 0 (derived: input split evenly across Workers).
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: 0,
	}
}

// SPDX-License-Identifier: MIT
// Package closure: generic dense matrix.
// Matrix is a row-major flat-slice dense matrix over an arbitrary
// carrier, the relation representation every kernel in this package
// operates on. Public indexers return sentinels instead of panicking;
// in-package kernels validate shape once and then index the flat slice
// directly.

package closure

import (
	"fmt"

	"github.com/katalvlaran/algebra/core"
)

// Matrix is a dense row-major matrix of carrier values.
// r is rows, c is columns, data holds r*c elements in row-major order.
type Matrix[T any] struct {
	r, c int
	data []T // flat backing storage, length == r*c
}

// matrixErrorf wraps an underlying sentinel with method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// New creates a rows×cols matrix with every cell set to fill.
// For a relation, fill should be the semiring's additive identity
// ("no edge"). Returns ErrInvalidDimensions if rows or cols < 1.
// Complexity: O(rows*cols).
func New[T any](rows, cols int, fill T) (*Matrix[T], error) {
	// Validate dimensions before allocating.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}

	return &Matrix[T]{r: rows, c: cols, data: data}, nil
}

// FromRows creates a matrix from a slice of equally sized rows, copying
// the input. Returns ErrInvalidDimensions on an empty input and
// ErrRaggedRows when row lengths differ.
// Complexity: O(rows*cols).
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	// 1) Validate overall shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	var row []T
	for _, row = range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
	}

	// 2) Copy row by row into flat storage.
	m := &Matrix[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n semiring identity matrix: multiplicative
// identity 1̄ on the diagonal, additive identity 0̄ elsewhere. It is the
// neutral element of Mul and the k == 0 result of MatPower.
// Complexity: O(n²).
func Identity[T any](s core.Semiring[T], n int) (*Matrix[T], error) {
	m, err := New(n, n, s.Additive().Identity())
	if err != nil {
		return nil, err
	}
	one := s.Multiplicative().Identity()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns
// ErrIndexOutOfBounds. Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col), or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or ErrIndexOutOfBounds.
// Complexity: O(cols).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf("Row", i, 0, ErrIndexOutOfBounds)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy sharing no storage with m.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and eq holds for
// every cell pair. A nil operand is only equal to another nil.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Equal(o *Matrix[T], eq func(a, b T) bool) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !eq(m.data[i], o.data[i]) {
			return false
		}
	}

	return true
}

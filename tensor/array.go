// SPDX-License-Identifier: MIT
// Package tensor: Array, a row-major float64 array of rank 1 or 2.
//
// Storage:
//   - shape holds 1 or 2 non-negative dimensions.
//   - data holds prod(shape) elements in row-major order.
//   - prod(shape) never exceeds MaxLen.
//   - The zero Array has no shape and behaves as an empty vector.
//
// Determinism:
//   - Fill visits elements in index order (i→j), so a seeded source produces
//     the same layout on every run.

package tensor

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MaxLen is the largest element count an Array can hold. Larger shapes are
// rejected with ErrBadShape instead of failing inside make.
const MaxLen = min(1<<31, math.MaxInt/8)

// Array is a dense float64 array of rank 1 or 2.
type Array struct {
	shape []int     // (n) or (rows, cols)
	data  []float64 // flat backing storage, len == prod(shape)
}

// NewVector creates a rank-1 array of length n initialised to zeros.
// n == 0 is valid and yields an empty array.
// Complexity: O(n).
func NewVector(n int) (*Array, error) {
	if n < 0 || n > MaxLen {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrBadShape)
	}

	return &Array{shape: []int{n}, data: make([]float64, n)}, nil
}

// NewMatrix creates a rank-2 rows×cols array initialised to zeros.
// Either dimension may be zero; rows*cols must not exceed MaxLen.
// Complexity: O(rows*cols).
func NewMatrix(rows, cols int) (*Array, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if cols != 0 && rows > MaxLen/cols {
		return nil, fmt.Errorf("NewMatrix(%d,%d): more than %d elements: %w", rows, cols, MaxLen, ErrBadShape)
	}

	return &Array{shape: []int{rows, cols}, data: make([]float64, rows*cols)}, nil
}

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)

	return out
}

// Rank returns the number of dimensions (1 or 2).
func (a *Array) Rank() int {
	return len(a.shape)
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// Rows returns the leading dimension. For a vector this is 1, matching the
// 1×n view used by Dense. The zero Array has 0 rows.
func (a *Array) Rows() int {
	switch len(a.shape) {
	case 0:
		return 0
	case 1:
		return 1
	}

	return a.shape[0]
}

// Cols returns the trailing dimension, or 0 for the zero Array.
func (a *Array) Cols() int {
	if len(a.shape) == 0 {
		return 0
	}

	return a.shape[len(a.shape)-1]
}

// offset computes the flat index for idx, validating rank and bounds.
func (a *Array) offset(method string, idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf(method, idx, ErrRank)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return 0, arrayErrorf(method, idx, ErrOutOfRange)
		}
		off = off*a.shape[d] + i
	}

	return off, nil
}

// At returns the element at idx. The number of indices must equal Rank.
// Complexity: O(1).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset("At", idx)
	if err != nil {
		return 0, err
	}

	return a.data[off], nil
}

// Set assigns v at idx. The number of indices must equal Rank.
// Complexity: O(1).
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset("Set", idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Row returns a copy of row i of a rank-2 array.
// Complexity: O(cols).
func (a *Array) Row(i int) ([]float64, error) {
	if len(a.shape) != 2 {
		return nil, arrayErrorf("Row", []int{i}, ErrRank)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, arrayErrorf("Row", []int{i}, ErrOutOfRange)
	}
	c := a.shape[1]
	out := make([]float64, c)
	copy(out, a.data[i*c:(i+1)*c])

	return out, nil
}

// Values returns a copy of the elements in row-major order.
func (a *Array) Values() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// Fill assigns fn() to every element in row-major order.
// Complexity: O(Len) calls to fn.
func (a *Array) Fill(fn func() float64) {
	for i := range a.data {
		a.data[i] = fn()
	}
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return &Array{shape: a.Shape(), data: a.Values()}
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements (NaN never equals NaN).
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.shape) != len(b.shape) {
		return false
	}
	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}

	return floats.Equal(a.data, b.data)
}

// Nested returns the elements as []float64 (rank 1) or [][]float64 (rank 2).
// The result shares no memory with a.
func (a *Array) Nested() any {
	if len(a.shape) < 2 {
		return a.Values()
	}
	rows, cols := a.shape[0], a.shape[1]
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		copy(out[i], a.data[i*cols:(i+1)*cols])
	}

	return out
}

// Dense converts the array to a gonum matrix. A vector becomes a 1×n row.
// gonum forbids zero-length dimensions, so empty arrays return ErrEmpty.
// Complexity: O(Len) for the copy.
func (a *Array) Dense() (*mat.Dense, error) {
	if len(a.data) == 0 {
		return nil, fmt.Errorf("Array.Dense(%v): %w", a.shape, ErrEmpty)
	}

	return mat.NewDense(a.Rows(), a.Cols(), a.Values()), nil
}

// String implements fmt.Stringer.
func (a *Array) String() string {
	var sb strings.Builder
	writeRow := func(row []float64) {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteByte(']')
	}
	if len(a.shape) < 2 {
		writeRow(a.data)
		return sb.String()
	}
	cols := a.shape[1]
	sb.WriteByte('[')
	for i := 0; i < a.shape[0]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeRow(a.data[i*cols : (i+1)*cols])
	}
	sb.WriteByte(']')

	return sb.String()
}

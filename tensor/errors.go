// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." for easy grepping. Methods
// attach context with fmt.Errorf("Array.<Method>(...): %w", ErrX); callers
// match with errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrRank indicates that the number of indices (or the operation) does
	// not match the array rank.
	ErrRank = errors.New("tensor: rank mismatch")

	// ErrEmpty is returned by operations that need at least one element
	// (Dense conversion, Summarize).
	ErrEmpty = errors.New("tensor: empty array")
)

// arrayErrorf wraps err with Array method context.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, idx, err)
}

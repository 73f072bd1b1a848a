// SPDX-License-Identifier: MIT
// Package: cvqnn/params
//
// errors.go — sentinel errors for the params package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failing operation:
//     "LayerStack: layers must be ≥ 1, got 0: params: invalid argument".
//   • Generators never panic; option constructors panic only on nil
//     collaborators (source, rand, logger).

package params

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a non-positive layer or mode count, or counts
// whose arrays would exceed MaxElements.
// It is the only runtime error the generators return: the generation either
// fails with it before any value is drawn, or succeeds with all eleven arrays.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* fix layers/modes */ }.
var ErrInvalidArgument = errors.New("params: invalid argument")

// paramErrorf formats a message with the given method context and wraps
// sentinel so errors.Is keeps working.
// Complexity: O(len(format) + Σlen(args)).
func paramErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

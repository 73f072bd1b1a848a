// Package params provides validation helpers that enforce the count
// contracts of the generators.
package params

// validateMin ensures that the integer 'got' named 'what' is ≥ 'min'.
// Returns "<Method>: <what> must be ≥ <min>, got <got>: params: invalid argument".
// Complexity: O(1).
func validateMin(method, what string, got, min int) error {
	if got < min {
		return paramErrorf(method, ErrInvalidArgument, "%s must be ≥ %d, got %d", what, min, got)
	}

	return nil
}

// validateSize ensures every array of a generation fits in MaxElements.
// layers == 0 stands for the rank-1 single-layer shape. The widest role is
// the interaction one for modes ≥ 3, the per-mode one otherwise.
// Complexity: O(1).
func validateSize(method string, layers, modes int) error {
	rows := max(layers, 1)
	width := max(modes, InteractionCount(modes))
	if width > MaxElements/rows {
		return paramErrorf(method, ErrInvalidArgument,
			"layers=%d modes=%d needs more than %d elements per array", layers, modes, MaxElements)
	}

	return nil
}

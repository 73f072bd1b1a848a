package cli

import "errors"

var (
	// ErrRequest indicates an unreadable or malformed request file.
	ErrRequest = errors.New("cli: invalid request")

	// ErrFormat indicates an unsupported output format, or a result the
	// chosen format cannot encode (NaN or ±Inf in JSON).
	ErrFormat = errors.New("cli: unsupported output format")

	// ErrIncompleteSet indicates a params.Set with missing arrays, such as
	// the zero Set. Sets returned by the generators are always complete.
	ErrIncompleteSet = errors.New("cli: incomplete parameter set")
)

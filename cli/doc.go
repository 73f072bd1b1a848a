// Package cli holds the pieces of the cvqnn-params binary that are worth
// testing outside cobra: request-file loading, turning a request into
// generator options, rendering results as YAML or JSON, and building the
// slog logger.
package cli

// SPDX-License-Identifier: MIT
// Package: cvqnn/params
//
// config.go — internal configuration and documented defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • newConfig applies options in-order (later overrides earlier).
//   • Seeded sources are created while applying options, so every call
//     starts from a fresh stream.
//
// Defaults:
//   • uniform range = [DefaultUniformMin, DefaultUniformMax) = [0, 2π)
//     (max is reachable through rounding)
//   • normal        = N(DefaultMean, DefaultStd) = N(0, 0.1)
//   • src           = nil (runtime source: math/rand/v2 global generator)
//   • logger        = discard

package params

import (
	"log/slog"
	"math/rand/v2"
)

// config aggregates all knobs used by the generators.
// It is passed by VALUE (immutable to callers).
type config struct {
	// Uniform range for magnitude roles; not validated (min > max is allowed).
	uniformMin float64
	uniformMax float64

	// Normal distribution for angle roles; std < 0 is passed through.
	mean float64
	std  float64

	// Random source; nil means the process-wide runtime source.
	src rand.Source
	// seeded records whether src came from WithSeed (for logging only).
	seeded bool

	logger *slog.Logger
}

// newConfig constructs a config with the documented defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		uniformMin: DefaultUniformMin,
		uniformMax: DefaultUniformMax,
		mean:       DefaultMean,
		std:        DefaultStd,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the configured source or the runtime source.
func (c config) source() rand.Source {
	if c.src != nil {
		return c.src
	}

	return runtimeSource{}
}

// runtimeSource draws from math/rand/v2's top-level generator, which is
// randomly seeded and safe for concurrent use.
type runtimeSource struct{}

// Uint64 implements rand.Source.
func (runtimeSource) Uint64() uint64 {
	return rand.Uint64()
}

// SPDX-License-Identifier: MIT
// Package: cvqnn/params
//
// options.go — functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Numeric options do NOT validate: an inverted uniform range or a
//     negative std is the caller's responsibility and flows into the
//     samplers unchanged.
//   • Collaborator options (source, rand, logger) panic on nil.
//   • WithSeed, WithSource and WithRand share one slot; the last one wins.

package params

import (
	"log/slog"
	"math/rand/v2"
)

// Option customizes a generation call by mutating a config instance before
// any value is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithUniformRange sets the interval [min, max) for the uniform roles
// (r, a, k). Values are computed as u*(max-min) + min with u ∈ [0,1), so
// the upper bound is exclusive only up to floating-point rounding: a u just
// below 1 can round to exactly max. min > max is accepted and yields values
// in [max, min].
func WithUniformRange(min, max float64) Option {
	return func(c *config) {
		c.uniformMin, c.uniformMax = min, max
	}
}

// WithNormal sets the mean and standard deviation for the normal roles.
// std is passed to the sampler as given; a negative std mirrors the draws.
func WithNormal(mean, std float64) Option {
	return func(c *config) {
		c.mean, c.std = mean, std
	}
}

// WithSeed makes the call deterministic: a new PCG source seeded with seed
// is created each time the option is applied, so reusing the same option
// value across calls reproduces the same output.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.NewPCG(uint64(seed), uint64(seed))
		c.seeded = true
	}
}

// WithSource draws from a caller-owned source. The stream is shared: two
// calls with the same source continue where the previous one stopped.
// Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("params: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
		c.seeded = false
	}
}

// WithRand draws from a caller-owned *rand.Rand. See WithSource.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("params: WithRand(nil)")
	}
	return func(c *config) {
		c.src = r
		c.seeded = false
	}
}

// WithLogger routes the per-call debug record to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("params: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

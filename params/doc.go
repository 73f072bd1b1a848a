// Package params generates randomly-initialised parameter sets for
// continuous-variable (CV) quantum neural-network layers.
//
// One CV layer is parameterised by eleven arrays, always returned in the
// same positional order (see Role):
//
//	idx role      distribution     width
//	 0  theta_1   Normal(mean,std) interactions
//	 1  phi_1     Normal(mean,std) interactions
//	 2  varphi_1  Normal(mean,std) modes
//	 3  r         Uniform[min,max) modes
//	 4  phi_r     Normal(mean,std) modes
//	 5  theta_2   Normal(mean,std) interactions
//	 6  phi_2     Normal(mean,std) interactions
//	 7  varphi_2  Normal(mean,std) modes
//	 8  a         Uniform[min,max) modes
//	 9  phi_a     Normal(mean,std) modes
//	10  k         Uniform[min,max) modes
//
// where interactions = modes*(modes-1)/2 (integer division). Uniform[min,max)
// excludes max only up to floating-point rounding.
//
// Entry points:
//
//   - LayerStack(layers, modes, opts...) returns arrays of shape (layers, width).
//   - SingleLayer(modes, opts...) returns arrays of shape (width).
//
// Configuration uses functional options (WithUniformRange, WithNormal,
// WithSeed, WithSource, WithRand, WithLogger). Defaults: uniform range
// [0, 2π), mean 0, std 0.1, unseeded.
//
// Determinism: WithSeed builds a fresh PCG source per call, so two calls
// with the same seed and arguments return element-wise identical sets.
// Without a seed, draws come from math/rand/v2's goroutine-safe global
// generator. There is no package-level mutable state.
//
// Numeric inputs are deliberately permissive: an inverted uniform range or
// a negative std is passed to the samplers as is. Only non-positive
// layer/mode counts are rejected, with ErrInvalidArgument.
package params

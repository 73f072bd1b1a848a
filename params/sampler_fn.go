// Package params provides the scalar samplers behind the two role
// distributions, built on gonum's stat/distuv.
package params

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// SamplerFn draws one value from src. It must consume src deterministically
// so a seeded source reproduces the same sequence. A nil src falls back to
// the runtime source.
type SamplerFn func(src rand.Source) float64

// UniformSampler returns a SamplerFn for [min, max), up to floating-point
// rounding: a unit draw u ∈ [0,1) mapped as u*(max-min) + min may land on
// max itself when u is close to 1. The bounds are not validated; min > max
// yields values in [max, min], and min == max always yields min.
// Complexity: O(1) per draw.
func UniformSampler(min, max float64) SamplerFn {
	interval := max - min

	return func(src rand.Source) float64 {
		unit := distuv.Uniform{Min: 0, Max: 1, Src: orRuntime(src)}

		return unit.Rand()*interval + min
	}
}

// NormalSampler returns a SamplerFn for N(mean, std). std is passed to
// gonum unchanged: std == 0 always yields mean, std < 0 mirrors the draws.
// Complexity: O(1) per draw.
func NormalSampler(mean, std float64) SamplerFn {
	return func(src rand.Source) float64 {
		dist := distuv.Normal{Mu: mean, Sigma: std, Src: orRuntime(src)}

		return dist.Rand()
	}
}

// samplerFor resolves the SamplerFn of a distribution under cfg.
func samplerFor(d Distribution, cfg config) SamplerFn {
	if d == Uniform {
		return UniformSampler(cfg.uniformMin, cfg.uniformMax)
	}

	return NormalSampler(cfg.mean, cfg.std)
}

func orRuntime(src rand.Source) rand.Source {
	if src == nil {
		return runtimeSource{}
	}

	return src
}

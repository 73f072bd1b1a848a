// SPDX-License-Identifier: MIT
// Package: cvqnn/params
//
// api.go — public entry points for the params package.
//
// Design contract:
//   • Two generators, LayerStack and SingleLayer, share one implementation
//     (generate) and differ only in the presence of the leading layer axis.
//   • Validation runs first; on failure nothing is drawn and no option is
//     resolved (atomic failure).
//   • Draw order is fixed: roles in Role order, each array in row-major
//     order. Together with WithSeed this makes the output a pure function of
//     the inputs.

package params

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/cvqnn/tensor"
)

// LayerStack generates parameters for layers stacked CV layers over modes
// modes. Every returned array has shape (layers, width), where width is
// modes or InteractionCount(modes) depending on the role.
//
// Errors:
//   - ErrInvalidArgument if layers < 1 or modes < 1 (layers is checked
//     before modes), or if layers×width exceeds MaxElements.
//
// Complexity: O(ParameterCount(layers, modes)) draws and memory.
func LayerStack(layers, modes int, opts ...Option) (Set, error) {
	if err := validateMin(MethodLayerStack, "layers", layers, MinLayers); err != nil {
		return Set{}, err
	}
	if err := validateMin(MethodLayerStack, "modes", modes, MinModes); err != nil {
		return Set{}, err
	}
	if err := validateSize(MethodLayerStack, layers, modes); err != nil {
		return Set{}, err
	}

	return generate(MethodLayerStack, layers, modes, newConfig(opts...))
}

// SingleLayer generates parameters for one CV layer over modes modes.
// Every returned array is rank 1 with length modes or
// InteractionCount(modes) depending on the role.
//
// Errors:
//   - ErrInvalidArgument if modes < 1. modes == 0 is rejected rather than
//     treated as an empty layer.
//   - ErrInvalidArgument if InteractionCount(modes) exceeds MaxElements.
//
// Complexity: O(ParameterCount(1, modes)) draws and memory.
func SingleLayer(modes int, opts ...Option) (Set, error) {
	if err := validateMin(MethodSingleLayer, "modes", modes, MinModes); err != nil {
		return Set{}, err
	}
	if err := validateSize(MethodSingleLayer, 0, modes); err != nil {
		return Set{}, err
	}

	return generate(MethodSingleLayer, 0, modes, newConfig(opts...))
}

// generate allocates and fills the eleven arrays. layers == 0 selects the
// rank-1 (single layer) shape.
func generate(method string, layers, modes int, cfg config) (Set, error) {
	var (
		set Set
		arr *tensor.Array
		err error
	)
	src := cfg.source()
	samplers := [...]SamplerFn{
		Normal:  samplerFor(Normal, cfg),
		Uniform: samplerFor(Uniform, cfg),
	}

	for _, r := range Roles() {
		width := r.Width(modes)
		if layers == 0 {
			arr, err = tensor.NewVector(width)
		} else {
			arr, err = tensor.NewMatrix(layers, width)
		}
		if err != nil {
			return Set{}, paramErrorf(method, err, "allocate %s", r)
		}
		draw := samplers[r.Distribution()]
		arr.Fill(func() float64 { return draw(src) })
		set[r] = arr
	}

	cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "generated CV layer parameters",
		slog.String("method", method),
		slog.Int("layers", layers),
		slog.Int("modes", modes),
		slog.Int("interactions", InteractionCount(modes)),
		slog.Bool("seeded", cfg.seeded),
	)

	return set, nil
}

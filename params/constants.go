// Package params defines shared constants used by the generators, ensuring
// consistent defaults and error prefixes.
package params

import (
	"math"

	"github.com/katalvlaran/cvqnn/tensor"
)

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodLayerStack is the canonical name for the LayerStack generator.
	MethodLayerStack = "LayerStack"
	// MethodSingleLayer is the canonical name for the SingleLayer generator.
	MethodSingleLayer = "SingleLayer"
)

//-----------------------------------------------------------------------------
// Sampling Defaults
//-----------------------------------------------------------------------------

// DefaultUniformMin is the lower bound of the uniform range used for
// magnitude-like roles (r, a, k).
const DefaultUniformMin = 0.0

// DefaultUniformMax is the upper bound of the uniform range used for
// magnitude-like roles (r, a, k).
const DefaultUniformMax = 2 * math.Pi

// DefaultMean is the mean of the normal distribution used for angle-like roles.
const DefaultMean = 0.0

// DefaultStd is the standard deviation of the normal distribution used for
// angle-like roles.
const DefaultStd = 0.1

//-----------------------------------------------------------------------------
// Minimum Counts
//-----------------------------------------------------------------------------

// MinModes is the smallest accepted mode count. modes == 1 is valid and
// yields empty interaction arrays.
const MinModes = 1

// MinLayers is the smallest accepted layer count for LayerStack.
const MinLayers = 1

// MaxElements is the largest element count of any single generated array.
// A layers×width product above it is rejected with ErrInvalidArgument.
const MaxElements = tensor.MaxLen

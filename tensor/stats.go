// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Summary statistics over all elements of an Array, used by the CLI
//     (--summary) and by distribution checks in tests.
//
// Behavior:
//   - Empty arrays have no meaningful extrema, so Summarize returns ErrEmpty.
//   - Std is the unbiased sample standard deviation (gonum stat.MeanStdDev);
//     a single element yields NaN, reported as 0.

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the element distribution of an Array.
type Summary struct {
	Count int     `json:"count" yaml:"count"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Std   float64 `json:"std" yaml:"std"`
}

// Summarize computes count, extrema, mean and sample standard deviation.
// Complexity: O(Len) time, O(1) extra space.
func Summarize(a *Array) (Summary, error) {
	if a == nil || len(a.data) == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmpty)
	}
	mean, std := stat.MeanStdDev(a.data, nil)
	if math.IsNaN(std) {
		std = 0
	}

	return Summary{
		Count: len(a.data),
		Min:   floats.Min(a.data),
		Max:   floats.Max(a.data),
		Mean:  mean,
		Std:   std,
	}, nil
}

// SPDX-License-Identifier: MIT
// Package: cvqnn/params
//
// roles.go — the fixed, positional role table of a CV layer.
//
// The order of the Role constants IS the output order of every generator;
// consumers index the result positionally, so it must never change.

package params

import (
	"fmt"
	"math"
)

// Role identifies one of the eleven parameter arrays of a CV layer.
type Role int

const (
	Theta1  Role = iota // first interferometer rotation angles
	Phi1                // first interferometer phases
	Varphi1             // first interferometer local phases
	R                   // squeezing magnitudes
	PhiR                // squeezing phases
	Theta2              // second interferometer rotation angles
	Phi2                // second interferometer phases
	Varphi2             // second interferometer local phases
	A                   // displacement magnitudes
	PhiA                // displacement phases
	K                   // Kerr nonlinearity coefficients

	// RoleCount is the number of roles (the length of a Set).
	RoleCount = 11
)

// Distribution names the sampling distribution of a role.
type Distribution int

const (
	// Normal draws from N(mean, std).
	Normal Distribution = iota
	// Uniform draws from [min, max), up to floating-point rounding.
	Uniform
)

// String implements fmt.Stringer.
func (d Distribution) String() string {
	switch d {
	case Normal:
		return "normal"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// Dimension names what the trailing dimension of a role counts.
type Dimension int

const (
	// PerInteraction arrays have one value per unordered mode pair.
	PerInteraction Dimension = iota
	// PerMode arrays have one value per mode.
	PerMode
)

// String implements fmt.Stringer.
func (d Dimension) String() string {
	switch d {
	case PerInteraction:
		return "interaction"
	case PerMode:
		return "mode"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

type roleSpec struct {
	name string
	dist Distribution
	dim  Dimension
}

var roleSpecs = [RoleCount]roleSpec{
	Theta1:  {"theta_1", Normal, PerInteraction},
	Phi1:    {"phi_1", Normal, PerInteraction},
	Varphi1: {"varphi_1", Normal, PerMode},
	R:       {"r", Uniform, PerMode},
	PhiR:    {"phi_r", Normal, PerMode},
	Theta2:  {"theta_2", Normal, PerInteraction},
	Phi2:    {"phi_2", Normal, PerInteraction},
	Varphi2: {"varphi_2", Normal, PerMode},
	A:       {"a", Uniform, PerMode},
	PhiA:    {"phi_a", Normal, PerMode},
	K:       {"k", Uniform, PerMode},
}

// Valid reports whether r is one of the eleven roles.
func (r Role) Valid() bool {
	return r >= 0 && r < RoleCount
}

// String returns the conventional parameter name (e.g. "theta_1").
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}

	return roleSpecs[r].name
}

// Distribution returns the sampling distribution of r.
// It panics if r is not Valid.
func (r Role) Distribution() Distribution {
	return roleSpecs[r].dist
}

// Dimension returns the trailing-dimension kind of r.
// It panics if r is not Valid.
func (r Role) Dimension() Dimension {
	return roleSpecs[r].dim
}

// Width returns the trailing dimension of r for the given mode count.
func (r Role) Width(modes int) int {
	if r.Dimension() == PerInteraction {
		return InteractionCount(modes)
	}

	return modes
}

// Roles returns all roles in output order.
func Roles() []Role {
	out := make([]Role, RoleCount)
	for i := range out {
		out[i] = Role(i)
	}

	return out
}

// InteractionCount returns the number of unordered mode pairs,
// modes*(modes-1)/2, or 0 when modes ≤ 1. It saturates at math.MaxInt.
func InteractionCount(modes int) int {
	if modes <= 1 {
		return 0
	}
	// halve the even factor first so only the true overflow saturates
	a, b := modes, modes-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}

	return satMul(a, b)
}

// ParameterCount returns the number of scalars in a LayerStack result:
// layers × (4·interactions + 7·modes). Non-positive counts give 0 and the
// result saturates at math.MaxInt.
func ParameterCount(layers, modes int) int {
	if layers < MinLayers || modes < MinModes {
		return 0
	}
	perLayer := 0
	for _, r := range Roles() {
		perLayer = satAdd(perLayer, r.Width(modes))
	}

	return satMul(layers, perLayer)
}

// satMul returns a*b for non-negative a, b, or math.MaxInt on overflow.
func satMul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}

	return a * b
}

// satAdd returns a+b for non-negative a, b, or math.MaxInt on overflow.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

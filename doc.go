// Package cvqnn generates randomly-initialised parameters for
// continuous-variable (CV) quantum neural-network layers.
//
// A CV layer is described by eleven parameter arrays: two interferometers
// (rotation, phase, local phase), squeezing (magnitude, phase),
// displacement (magnitude, phase) and a Kerr coefficient. Interferometer
// rotations and phases have one value per unordered mode pair, and the
// others have one value per mode. Angle-like roles are drawn from a normal
// distribution and magnitude roles from a uniform range.
//
// Everything is organized under three subpackages:
//
//	params/  — the generators (LayerStack, SingleLayer), roles, options, samplers
//	tensor/  — rank-1/2 float64 arrays, gonum interop and summaries
//	cli/     — request files, YAML/JSON rendering and logging for the binary
//
// and one binary:
//
//	cmd/cvqnn-params — command-line front end (generate, roles)
//
// Quick example:
//
//	set, err := params.LayerStack(2, 4, params.WithSeed(42))
//	if err != nil { ... }
//	theta1 := set[params.Theta1] // shape (2, 6)
//	kerr := set[params.K]        // shape (2, 4)
//
//	go get github.com/katalvlaran/cvqnn/params
package cvqnn

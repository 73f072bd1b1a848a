// Package tensor provides the dense float64 arrays handed out by the
// parameter generator.
//
// An Array is a row-major, flat-backed array of rank 1 (n) or rank 2
// (rows×cols). Unlike gonum's mat.Dense, zero-length dimensions are legal:
// a single-mode CV layer has no interferometer pairs, and the generator
// still has to return a well-formed (0) or (L×0) array for those roles.
//
// The package provides:
//
//   - Construction: NewVector, NewMatrix.
//   - Access: Shape, Rank, Len, Rows, Cols, At, Set, Row, Values, Nested.
//   - Bulk fill in deterministic row-major order: Fill.
//   - Interop: Dense (gonum *mat.Dense), JSON and YAML marshalling.
//   - Statistics: Summarize (min/max/mean/std via gonum floats and stat).
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange, ErrRank,
// ErrEmpty); branch on them with errors.Is.
package tensor

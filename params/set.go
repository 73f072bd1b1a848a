package params

import "github.com/katalvlaran/cvqnn/tensor"

// Set is the ordered result of a generation: index i holds the array of
// Role(i). Consumers may index it positionally.
type Set [RoleCount]*tensor.Array

// Get returns the array for role r, or nil if r is not Valid.
func (s Set) Get(r Role) *tensor.Array {
	if !r.Valid() {
		return nil
	}

	return s[r]
}

// Slice returns the eleven arrays in output order as a fresh slice.
// The arrays themselves are shared with s.
func (s Set) Slice() []*tensor.Array {
	out := make([]*tensor.Array, RoleCount)
	copy(out, s[:])

	return out
}

// Equal reports whether every array in s equals its counterpart in o.
func (s Set) Equal(o Set) bool {
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

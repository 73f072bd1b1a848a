package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cvqnn/params"
	"github.com/katalvlaran/cvqnn/tensor"
)

// Document is the rendered result of a generation.
type Document struct {
	Request    Request `json:"request" yaml:"request"`
	Parameters []Entry `json:"parameters" yaml:"parameters"`
}

// Entry describes one role of the result.
type Entry struct {
	Index        int             `json:"index" yaml:"index"`
	Role         string          `json:"role" yaml:"role"`
	Distribution string          `json:"distribution" yaml:"distribution"`
	Dimension    string          `json:"dimension" yaml:"dimension"`
	Shape        []int           `json:"shape" yaml:"shape"`
	Values       *tensor.Array   `json:"values,omitempty" yaml:"values,omitempty"`
	Summary      *tensor.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// RenderOptions selects what each Entry carries.
type RenderOptions struct {
	// OmitValues drops the sampled values (useful with Summary).
	OmitValues bool
	// Summary attaches min/max/mean/std per non-empty role.
	Summary bool
}

// NewDocument renders set in role order. Every role must hold an array;
// otherwise it returns ErrIncompleteSet.
func NewDocument(req Request, set params.Set, opts RenderOptions) (*Document, error) {
	doc := &Document{Request: req, Parameters: make([]Entry, 0, params.RoleCount)}
	for _, r := range params.Roles() {
		arr := set.Get(r)
		if arr == nil {
			return nil, fmt.Errorf("%w: %s is missing", ErrIncompleteSet, r)
		}
		e := Entry{
			Index:        int(r),
			Role:         r.String(),
			Distribution: r.Distribution().String(),
			Dimension:    r.Dimension().String(),
			Shape:        arr.Shape(),
		}
		if !opts.OmitValues {
			e.Values = arr
		}
		if opts.Summary {
			s, err := tensor.Summarize(arr)
			switch {
			case err == nil:
				e.Summary = &s
			case !errors.Is(err, tensor.ErrEmpty):
				return nil, err
			}
		}
		doc.Parameters = append(doc.Parameters, e)
	}

	return doc, nil
}

// RoleRow is one line of the role table.
type RoleRow struct {
	Index        int    `json:"index" yaml:"index"`
	Role         string `json:"role" yaml:"role"`
	Distribution string `json:"distribution" yaml:"distribution"`
	Dimension    string `json:"dimension" yaml:"dimension"`
}

// RoleTable lists every role in output order.
func RoleTable() []RoleRow {
	rows := make([]RoleRow, 0, params.RoleCount)
	for _, r := range params.Roles() {
		rows = append(rows, RoleRow{
			Index:        int(r),
			Role:         r.String(),
			Distribution: r.Distribution().String(),
			Dimension:    r.Dimension().String(),
		})
	}

	return rows
}

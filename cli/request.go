package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/cvqnn/params"
)

// Request describes one generation. Layers == 0 selects the single-layer
// variant; a negative Layers is passed to LayerStack and rejected there.
// Nil pointers mean "use the library default". Non-finite numbers (.nan,
// .inf) are accepted as written; results built from them only render as
// YAML, since JSON has no encoding for them.
type Request struct {
	Layers     int      `json:"layers,omitempty" yaml:"layers,omitempty"`
	Modes      int      `json:"modes" yaml:"modes"`
	UniformMin *float64 `json:"uniform_min,omitempty" yaml:"uniform_min,omitempty"`
	UniformMax *float64 `json:"uniform_max,omitempty" yaml:"uniform_max,omitempty"`
	Mean       *float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	Std        *float64 `json:"std,omitempty" yaml:"std,omitempty"`
	Seed       *int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// LoadRequest reads a YAML or JSON request file. JSON is valid YAML, so a
// single decoder handles both. Unknown fields are rejected.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRequest, path, err)
	}

	return ParseRequest(data)
}

// ParseRequest decodes a request document.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := yaml.UnmarshalWithOptions(data, &req, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}

	return &req, nil
}

// Options converts the request into generator options. Only fields that
// are set produce an option.
func (r *Request) Options() []params.Option {
	var opts []params.Option
	if r.UniformMin != nil || r.UniformMax != nil {
		lo, hi := params.DefaultUniformMin, params.DefaultUniformMax
		if r.UniformMin != nil {
			lo = *r.UniformMin
		}
		if r.UniformMax != nil {
			hi = *r.UniformMax
		}
		opts = append(opts, params.WithUniformRange(lo, hi))
	}
	if r.Mean != nil || r.Std != nil {
		mean, std := params.DefaultMean, params.DefaultStd
		if r.Mean != nil {
			mean = *r.Mean
		}
		if r.Std != nil {
			std = *r.Std
		}
		opts = append(opts, params.WithNormal(mean, std))
	}
	if r.Seed != nil {
		opts = append(opts, params.WithSeed(*r.Seed))
	}

	return opts
}

// Generate runs the request: SingleLayer when Layers == 0, LayerStack
// otherwise. extra options are applied after the request's own.
func (r *Request) Generate(extra ...params.Option) (params.Set, error) {
	opts := append(r.Options(), extra...)
	if r.Layers != 0 {
		return params.LayerStack(r.Layers, r.Modes, opts...)
	}

	return params.SingleLayer(r.Modes, opts...)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvqnn/cli"
	"github.com/katalvlaran/cvqnn/params"
)

type generateFlags struct {
	inputFile  string
	layers     int
	modes      int
	uniformMin float64
	uniformMax float64
	mean       float64
	std        float64
	seed       int64
	summary    bool
	omitValues bool
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample the eleven CV layer parameter arrays",
		Long: `Sample the eleven CV layer parameter arrays.

Without --layers (or with layers: 0 in the request file) a single layer is
generated and every array is one-dimensional. With --layers N every array
has N rows.

Values come from the request file first (-f), then from explicitly set
flags. Unset values use the defaults: uniform [0, 2π), mean 0, std 0.1,
unseeded.

Example request file (request.yaml):
  layers: 2
  modes: 4
  uniform_max: 1.0
  std: 0.05
  seed: 42

Examples:
  cvqnn-params generate --modes 2 --seed 42
  cvqnn-params generate -f request.yaml --json -o params.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(cmd)
			if err != nil {
				return err
			}
			log := g.logger(cmd)

			set, err := req.Generate(params.WithLogger(log))
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			doc, err := cli.NewDocument(*req, set, cli.RenderOptions{
				Summary:    f.summary,
				OmitValues: f.omitValues,
			})
			if err != nil {
				return err
			}
			if g.outputFile != "" {
				log.Info("writing parameters", "file", g.outputFile, "roles", len(doc.Parameters))
			}
			return g.output(cmd, doc)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.inputFile, "file", "f", "", "request file (YAML or JSON)")
	fl.IntVar(&f.layers, "layers", 0, "number of stacked layers (0 = single layer)")
	fl.IntVar(&f.modes, "modes", 0, "number of modes (required unless set in the request file)")
	fl.Float64Var(&f.uniformMin, "uniform-min", params.DefaultUniformMin, "lower bound for r, a, k")
	fl.Float64Var(&f.uniformMax, "uniform-max", params.DefaultUniformMax, "upper bound for r, a, k")
	fl.Float64Var(&f.mean, "mean", params.DefaultMean, "mean for angle-like roles")
	fl.Float64Var(&f.std, "std", params.DefaultStd, "standard deviation for angle-like roles")
	fl.Int64Var(&f.seed, "seed", 0, "seed for reproducible output (unseeded when not set)")
	fl.BoolVar(&f.summary, "summary", false, "attach min/max/mean/std per role")
	fl.BoolVar(&f.omitValues, "omit-values", false, "drop the sampled values from the output")

	return cmd
}

// request merges the request file (if any) with explicitly set flags.
func (f *generateFlags) request(cmd *cobra.Command) (*cli.Request, error) {
	req := &cli.Request{}
	if f.inputFile != "" {
		var err error
		if req, err = cli.LoadRequest(f.inputFile); err != nil {
			return nil, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("layers") {
		req.Layers = f.layers
	}
	if fl.Changed("modes") {
		req.Modes = f.modes
	}
	if fl.Changed("uniform-min") {
		req.UniformMin = &f.uniformMin
	}
	if fl.Changed("uniform-max") {
		req.UniformMax = &f.uniformMax
	}
	if fl.Changed("mean") {
		req.Mean = &f.mean
	}
	if fl.Changed("std") {
		req.Std = &f.std
	}
	if fl.Changed("seed") {
		req.Seed = &f.seed
	}

	return req, nil
}

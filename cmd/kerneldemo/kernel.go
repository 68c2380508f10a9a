package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/internal/term"
	"github.com/gogpu/convolve/render"
	"github.com/gogpu/convolve/sample"
)

var errUnknownKernel = errors.New("unknown kernel")

// kernelFlags are the inputs shared by convolve and trace.
type kernelFlags struct {
	sample  string
	kernel  string
	weights string
	divisor float64
	edge    string
	mode    string
	label   string
}

func (f *kernelFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.sample, "sample", "s", "smiley", "sample grid (see 'samples')")
	fl.StringVarP(&f.kernel, "kernel", "k", "sharpen", "kernel name (see 'presets')")
	fl.StringVarP(&f.weights, "weights", "w", "", `custom weights, rows separated by ';', e.g. "0,-1,0;-1,5,-1;0,-1,0"`)
	fl.Float64VarP(&f.divisor, "divisor", "d", 0, "divisor for --weights (default: weight sum, or 1)")
	fl.StringVarP(&f.edge, "edge", "e", "", "edge policy: passthrough, pad-zero, mirror, clamp")
	fl.StringVarP(&f.mode, "mode", "m", "", "channel mode: color, gray")
	fl.StringVarP(&f.label, "label", "l", "", "cell label: none, gray, hex")
}

// run is the resolved input of a kernel command.
type run struct {
	grid   *convolve.Grid
	name   string
	kernel convolve.Kernel
	mode   convolve.ChannelMode
	edge   convolve.EdgePolicy
	label  render.Label
}

// resolve merges the flags over the configuration.
func (f *kernelFlags) resolve(cmd *cobra.Command, a *app) (*run, error) {
	g, err := sample.Load(f.sample)
	if err != nil {
		return nil, err
	}

	r := &run{
		grid:  g,
		name:  f.kernel,
		mode:  a.cfg.Mode,
		edge:  a.cfg.Edge,
		label: a.cfg.Label,
	}

	if f.weights != "" {
		w, err := convolve.ParseWeights(f.weights)
		if err != nil {
			return nil, err
		}
		k := convolve.Kernel{Weights: w, Divisor: 1}
		if cmd.Flags().Changed("divisor") {
			k.Divisor = f.divisor
		} else {
			k = k.Normalized()
		}
		r.kernel, r.name = k, "custom"
	} else {
		k, ok := a.cfg.Kernel(f.kernel)
		if !ok {
			return nil, fmt.Errorf("%w %q", errUnknownKernel, f.kernel)
		}
		r.kernel = k
	}

	if cmd.Flags().Changed("edge") {
		if r.edge, err = convolve.ParseEdgePolicy(f.edge); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("mode") {
		if r.mode, err = convolve.ParseChannelMode(f.mode); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("label") {
		if r.label, err = render.ParseLabel(f.label); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func newConvolveCmd(a *app) *cobra.Command {
	var f kernelFlags
	cmd := &cobra.Command{
		Use:   "convolve",
		Short: "Convolve a sample grid and show before and after",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := f.resolve(cmd, a)
			if err != nil {
				return err
			}
			out, err := convolve.Convolve(r.grid, r.kernel, r.mode, r.edge)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %s  %s  mode %s  edge %s\n\n",
				f.sample, r.name, r.kernel, r.mode, r.edge)
			fmt.Fprintln(w, term.Compare(r.grid, out, r.label))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newTraceCmd(a *app) *cobra.Command {
	var (
		f        kernelFlags
		row, col int
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Explain how one output pixel is computed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := f.resolve(cmd, a)
			if err != nil {
				return err
			}
			t, err := convolve.TraceAt(r.grid, r.kernel, row, col, r.mode, r.edge)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Trace(t))
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&row, "row", 0, "output row")
	cmd.Flags().IntVar(&col, "col", 0, "output column")
	return cmd
}

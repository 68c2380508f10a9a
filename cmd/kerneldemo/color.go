package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/internal/term"
)

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <#RRGGBB | r g b>",
		Short: "Describe one color",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts a hex color or three channel values, received %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseColorArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term.Describe(p))
			return nil
		},
	}
}

func parseColorArgs(args []string) (convolve.Pixel, error) {
	if len(args) == 1 {
		c, err := convolve.ParseHex(args[0])
		if err != nil {
			return convolve.Pixel{}, err
		}
		return pixelOf(c)
	}

	var c convolve.RGB
	for i, dst := range []*int{&c.R, &c.G, &c.B} {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return convolve.Pixel{}, fmt.Errorf("%w: %q", convolve.ErrChannelRange, args[i])
		}
		*dst = v
	}
	return pixelOf(c)
}

// pixelOf validates c through a one-cell grid.
func pixelOf(c convolve.RGB) (convolve.Pixel, error) {
	g, err := convolve.FromRGBMatrix([][]convolve.RGB{{c}})
	if err != nil {
		return convolve.Pixel{}, err
	}
	return g.At(0, 0)
}

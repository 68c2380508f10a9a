// Command kerneldemo applies convolution kernels to sample grids and
// shows the results as terminal swatches.
//
// Usage:
//
//	kerneldemo convolve --sample smiley --kernel sharpen --edge mirror --label gray
//	kerneldemo trace --sample sharpen --kernel sharpen --row 1 --col 1 --mode gray
//	kerneldemo color "#3498DB"
//	kerneldemo presets
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", userMessage(err))
		os.Exit(1)
	}
}

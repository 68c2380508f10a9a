package convolve

// Preset is a named kernel.
type Preset struct {
	Name        string
	Description string
	Kernel      Kernel
}

// builtinPresets returns fresh copies so callers cannot alter the
// shared definitions through the weight slices.
func builtinPresets() []Preset {
	return []Preset{
		{
			Name:        "identity",
			Description: "returns the input unchanged",
			Kernel: Kernel{Weights: [][]float64{
				{0, 0, 0},
				{0, 1, 0},
				{0, 0, 0},
			}, Divisor: 1},
		},
		{
			Name:        "edge-detect",
			Description: "highlights intensity changes in every direction",
			Kernel: Kernel{Weights: [][]float64{
				{-1, -1, -1},
				{-1, 8, -1},
				{-1, -1, -1},
			}, Divisor: 1},
		},
		{
			Name:        "gaussian-blur",
			Description: "weighted average favoring the center",
			Kernel: Kernel{Weights: [][]float64{
				{1, 2, 1},
				{2, 4, 2},
				{1, 2, 1},
			}, Divisor: 16},
		},
		{
			Name:        "sharpen",
			Description: "boosts the center against its four neighbors",
			Kernel: Kernel{Weights: [][]float64{
				{0, -1, 0},
				{-1, 5, -1},
				{0, -1, 0},
			}, Divisor: 1},
		},
		{
			Name:        "box-blur",
			Description: "uniform average of the 3x3 neighborhood",
			Kernel:      BoxKernel(1),
		},
		// Sobel operators approximate the horizontal and vertical gradient.
		{
			Name:        "sobel-x",
			Description: "horizontal gradient (vertical edges)",
			Kernel: Kernel{Weights: [][]float64{
				{1, 0, -1},
				{2, 0, -2},
				{1, 0, -1},
			}, Divisor: 1},
		},
		{
			Name:        "sobel-y",
			Description: "vertical gradient (horizontal edges)",
			Kernel: Kernel{Weights: [][]float64{
				{1, 2, 1},
				{0, 0, 0},
				{-1, -2, -1},
			}, Divisor: 1},
		},
		{
			Name:        "emboss",
			Description: "relief effect lit from the top left",
			Kernel: Kernel{Weights: [][]float64{
				{-2, -1, 0},
				{-1, 1, 1},
				{0, 1, 2},
			}, Divisor: 1},
		},
	}
}

// Presets returns the builtin kernels in display order.
func Presets() []Preset {
	return builtinPresets()
}

// LookupPreset returns the builtin kernel with the given name.
func LookupPreset(name string) (Kernel, bool) {
	for _, p := range builtinPresets() {
		if p.Name == name {
			return p.Kernel, true
		}
	}
	return Kernel{}, false
}

package convolve

import (
	"errors"
	"math"
	"testing"
)

func TestKernelValidate(t *testing.T) {
	tests := []struct {
		name    string
		k       Kernel
		wantErr error
	}{
		{"3x3", Kernel{Weights: [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, Divisor: 1}, nil},
		{"1x1", Kernel{Weights: [][]float64{{2}}, Divisor: 2}, nil},
		{"empty", Kernel{Divisor: 1}, ErrInvalidKernelShape},
		{"2x2", Kernel{Weights: [][]float64{{1, 1}, {1, 1}}, Divisor: 4}, ErrInvalidKernelShape},
		{"ragged", Kernel{Weights: [][]float64{{1, 1, 1}, {1}, {1, 1, 1}}, Divisor: 1}, ErrInvalidKernelShape},
		{"not square", Kernel{Weights: [][]float64{{1, 1, 1}}, Divisor: 1}, ErrInvalidKernelShape},
		{"zero divisor", Kernel{Weights: [][]float64{{1}}, Divisor: 0}, ErrDivisionByZero},
		{"NaN divisor", Kernel{Weights: [][]float64{{1}}, Divisor: math.NaN()}, ErrDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.k.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewKernel(t *testing.T) {
	if _, err := NewKernel([][]float64{{1, 2}, {3, 4}}, 1); !errors.Is(err, ErrInvalidKernelShape) {
		t.Errorf("NewKernel(2x2) error = %v, want ErrInvalidKernelShape", err)
	}
	k, err := NewKernel([][]float64{{1}}, 1)
	if err != nil {
		t.Fatalf("NewKernel(1x1) error = %v", err)
	}
	if k.Size() != 1 || k.Center() != 0 {
		t.Errorf("Size(), Center() = %d, %d, want 1, 0", k.Size(), k.Center())
	}
}

func TestKernelSumAndNormalized(t *testing.T) {
	blur, _ := LookupPreset("gaussian-blur")
	if got := blur.Sum(); got != 16 {
		t.Errorf("gaussian-blur Sum() = %v, want 16", got)
	}

	raw := Kernel{Weights: blur.Weights, Divisor: 1}
	if got := raw.Normalized().Divisor; got != 16 {
		t.Errorf("Normalized().Divisor = %v, want 16", got)
	}

	edge, _ := LookupPreset("edge-detect")
	if got := edge.Normalized().Divisor; got != 1 {
		t.Errorf("edge-detect Normalized().Divisor = %v, want 1", got)
	}

	if got := (Kernel{Weights: [][]float64{{1, 1}}}).Sum(); got != 0 {
		t.Errorf("Sum() of malformed kernel = %v, want 0", got)
	}
}

func TestKernelNormalizedCopiesWeights(t *testing.T) {
	k := Kernel{Weights: [][]float64{{1}}, Divisor: 1}
	n := k.Normalized()
	n.Weights[0][0] = 9
	if k.Weights[0][0] != 1 {
		t.Error("Normalized() shares weights with the original kernel")
	}
}

func TestKernelString(t *testing.T) {
	k, _ := LookupPreset("sharpen")
	want := "[[0 -1 0] [-1 5 -1] [0 -1 0]] / 1"
	if got := k.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseWeights(t *testing.T) {
	got, err := ParseWeights("0,-1,0; -1,5,-1; 0 -1 0")
	if err != nil {
		t.Fatalf("ParseWeights() error = %v", err)
	}
	want, _ := LookupPreset("sharpen")
	for i := range want.Weights {
		for j := range want.Weights[i] {
			if got[i][j] != want.Weights[i][j] {
				t.Errorf("weight (%d, %d) = %v, want %v", i, j, got[i][j], want.Weights[i][j])
			}
		}
	}

	if _, err := ParseWeights("1,2;;3"); !errors.Is(err, ErrInvalidKernelShape) {
		t.Errorf("ParseWeights(empty row) error = %v, want ErrInvalidKernelShape", err)
	}
	if _, err := ParseWeights("1,x,3"); err == nil {
		t.Error("ParseWeights(bad number) should fail")
	}
}

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		radius   float64
		wantSize int
	}{
		{0, 1},
		{-2, 1},
		{0.5, 5},
		{1, 7},
	}

	for _, tt := range tests {
		k := GaussianKernel(tt.radius)
		if k.Size() != tt.wantSize {
			t.Errorf("GaussianKernel(%v) size = %d, want %d", tt.radius, k.Size(), tt.wantSize)
		}
		if err := k.Validate(); err != nil {
			t.Errorf("GaussianKernel(%v) invalid: %v", tt.radius, err)
		}
		if math.Abs(k.Sum()-1) > 1e-9 {
			t.Errorf("GaussianKernel(%v) sum = %v, want 1", tt.radius, k.Sum())
		}
	}
}

func TestGaussianKernelShape(t *testing.T) {
	k := GaussianKernel(1)
	n := k.Size()
	c := k.Center()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(k.Weights[i][j]-k.Weights[j][i]) > 1e-12 {
				t.Fatalf("kernel asymmetric at (%d, %d)", i, j)
			}
			if math.Abs(k.Weights[i][j]-k.Weights[n-1-i][n-1-j]) > 1e-12 {
				t.Fatalf("kernel not point symmetric at (%d, %d)", i, j)
			}
			if k.Weights[i][j] > k.Weights[c][c] {
				t.Fatalf("weight (%d, %d) exceeds center", i, j)
			}
		}
	}
}

func TestBoxKernel(t *testing.T) {
	k := BoxKernel(2)
	if k.Size() != 5 || k.Divisor != 25 || k.Sum() != 25 {
		t.Errorf("BoxKernel(2) = size %d, divisor %v, sum %v; want 5, 25, 25", k.Size(), k.Divisor, k.Sum())
	}
	if got := BoxKernel(0).Size(); got != 1 {
		t.Errorf("BoxKernel(0) size = %d, want 1", got)
	}
}

func TestPresets(t *testing.T) {
	want := []string{"identity", "edge-detect", "gaussian-blur", "sharpen", "box-blur", "sobel-x", "sobel-y", "emboss"}
	presets := Presets()
	if len(presets) != len(want) {
		t.Fatalf("Presets() returned %d kernels, want %d", len(presets), len(want))
	}
	for i, p := range presets {
		if p.Name != want[i] {
			t.Errorf("preset %d = %q, want %q", i, p.Name, want[i])
		}
		if err := p.Kernel.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", p.Name, err)
		}
	}

	if _, ok := LookupPreset("nope"); ok {
		t.Error(`LookupPreset("nope") ok = true, want false`)
	}
}

func TestLookupPresetReturnsCopy(t *testing.T) {
	k, _ := LookupPreset("identity")
	k.Weights[1][1] = 42

	again, _ := LookupPreset("identity")
	if again.Weights[1][1] != 1 {
		t.Error("modifying a looked-up preset changed the builtin definition")
	}
}

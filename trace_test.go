package convolve

import (
	"errors"
	"testing"
)

func TestTraceMatchesConvolve(t *testing.T) {
	g, _ := FromRGBMatrix([][]RGB{
		{{10, 20, 30}, {200, 10, 0}, {5, 5, 5}, {90, 180, 255}},
		{{0, 0, 0}, {255, 255, 255}, {128, 64, 32}, {1, 2, 3}},
		{{60, 70, 80}, {33, 66, 99}, {250, 0, 250}, {17, 34, 51}},
	})

	for _, p := range Presets() {
		for _, mode := range []ChannelMode{ChannelColor, ChannelGray} {
			for _, edge := range allEdges {
				out, err := Convolve(g, p.Kernel, mode, edge)
				if err != nil {
					t.Fatalf("Convolve(%s) error = %v", p.Name, err)
				}
				for r := 0; r < g.Rows(); r++ {
					for c := 0; c < g.Cols(); c++ {
						tr, err := TraceAt(g, p.Kernel, r, c, mode, edge)
						if err != nil {
							t.Fatalf("TraceAt(%s, %d, %d) error = %v", p.Name, r, c, err)
						}
						want, _ := out.At(r, c)
						if !tr.Result.Equal(want) {
							t.Errorf("%s/%s/%s (%d, %d): trace %v, convolve %v", p.Name, mode, edge, r, c, tr.Result, want)
						}
					}
				}
			}
		}
	}
}

func TestTraceTerms(t *testing.T) {
	patch := mustGray(t, [][]int{
		{100, 100, 100},
		{100, 110, 100},
		{100, 100, 100},
	})
	k := mustPreset(t, "sharpen")

	tr, err := TraceAt(patch, k, 0, 0, ChannelGray, EdgePadZero)
	if err != nil {
		t.Fatalf("TraceAt() error = %v", err)
	}
	if len(tr.Terms) != 9 {
		t.Fatalf("len(Terms) = %d, want 9", len(tr.Terms))
	}

	first := tr.Terms[0]
	if first.Row != -1 || first.Col != -1 || first.InBounds || first.Sampled {
		t.Errorf("Terms[0] = %+v, want out-of-bounds unsampled (-1, -1)", first)
	}
	center := tr.Terms[4]
	if center.Weight != 5 || center.Values[0] != 100 || center.Products[0] != 500 {
		t.Errorf("Terms[4] = %+v, want weight 5, value 100, product 500", center)
	}

	// 5*100 - 100 (right) - 100 (below); the up and left samples are padded.
	if tr.Sums[0] != 300 || tr.Divided[0] != 300 {
		t.Errorf("Sums, Divided = %v, %v; want 300, 300", tr.Sums, tr.Divided)
	}
	if tr.Result.Gray() != 255 {
		t.Errorf("Result = %v, want clamped to 255", tr.Result)
	}
	if tr.Passthrough {
		t.Error("Passthrough = true under pad-zero")
	}
	if got := tr.Channels(); len(got) != 1 || got[0] != "gray" {
		t.Errorf("Channels() = %v, want [gray]", got)
	}
}

func TestTracePassthrough(t *testing.T) {
	g := mustGray(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	tr, err := TraceAt(g, mustPreset(t, "box-blur"), 0, 2, ChannelColor, EdgePassthrough)
	if err != nil {
		t.Fatalf("TraceAt() error = %v", err)
	}
	if !tr.Passthrough {
		t.Error("Passthrough = false for a border position")
	}
	if tr.Result.Gray() != 3 || !tr.Result.Equal(tr.Input) {
		t.Errorf("Result = %v, want input pixel %v", tr.Result, tr.Input)
	}
	if len(tr.Sums) != 0 {
		t.Errorf("Sums = %v, want empty", tr.Sums)
	}
	if len(tr.Terms) != 9 {
		t.Errorf("len(Terms) = %d, want 9", len(tr.Terms))
	}
	if got := tr.Channels(); len(got) != 3 {
		t.Errorf("Channels() = %v, want r, g, b", got)
	}
}

func TestTraceMirrorSource(t *testing.T) {
	g := mustGray(t, [][]int{{10, 20, 30}})
	tr, err := TraceAt(g, mustPreset(t, "box-blur"), 0, 0, ChannelGray, EdgeMirror)
	if err != nil {
		t.Fatalf("TraceAt() error = %v", err)
	}
	// Terms[3] is kernel cell (1, 0): source (0, -1) reflects to (0, 1).
	term := tr.Terms[3]
	if term.InBounds || !term.Sampled || term.SourceRow != 0 || term.SourceCol != 1 || term.Values[0] != 20 {
		t.Errorf("Terms[3] = %+v, want reflected sample (0, 1) = 20", term)
	}
}

func TestTraceErrors(t *testing.T) {
	g := flat(t, 2, 2, 1)
	k := mustPreset(t, "identity")

	if _, err := TraceAt(g, k, 2, 0, ChannelGray, EdgePassthrough); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("TraceAt(2, 0) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := TraceAt(g, Kernel{Weights: [][]float64{{1, 0}, {0, 1}}, Divisor: 1}, 0, 0, ChannelGray, EdgePassthrough); !errors.Is(err, ErrInvalidKernelShape) {
		t.Errorf("TraceAt(2x2) error = %v, want ErrInvalidKernelShape", err)
	}
	if _, err := TraceAt(g, Kernel{Weights: [][]float64{{1}}}, 0, 0, ChannelGray, EdgePassthrough); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("TraceAt(divisor 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestTraceCopiesKernel(t *testing.T) {
	g := flat(t, 3, 3, 1)
	k := Kernel{Weights: [][]float64{{1}}, Divisor: 1}
	tr, _ := TraceAt(g, k, 1, 1, ChannelGray, EdgePassthrough)
	k.Weights[0][0] = 7
	if tr.Kernel.Weights[0][0] != 1 {
		t.Error("Trace.Kernel shares weights with the caller's kernel")
	}
}

// Package term renders grids, colors and traces for a terminal using
// lipgloss styles.
package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/convolve"
	"github.com/gogpu/convolve/render"
)

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// cellWidth is wide enough for the label plus one space each side.
func cellWidth(label render.Label) int {
	switch label {
	case render.LabelHex:
		return 9
	case render.LabelGray:
		return 5
	default:
		return 4
	}
}

func cellStyle(p convolve.Pixel, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Background(lipgloss.Color(p.Hex())).
		Foreground(lipgloss.Color(p.TextColor()))
}

func cellText(p convolve.Pixel, label render.Label) string {
	switch label {
	case render.LabelHex:
		return p.Hex()
	case render.LabelGray:
		return strconv.Itoa(p.Gray())
	default:
		return ""
	}
}

// Grid renders g as rows of colored blocks. With a label, each block
// shows the gray value or hex color in the contrast text color.
func Grid(g *convolve.Grid, label render.Label) string {
	if g == nil {
		return ""
	}
	w := cellWidth(label)
	lines := make([]string, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		var b strings.Builder
		for c := 0; c < g.Cols(); c++ {
			p, err := g.At(r, c)
			if err != nil {
				break
			}
			b.WriteString(cellStyle(p, w).Render(cellText(p, label)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Compare renders before and after next to each other under titles.
func Compare(before, after *convolve.Grid, label render.Label) string {
	left := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("before"), Grid(before, label))
	right := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("after"), Grid(after, label))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

// Describe reports the color of p in several models, led by a swatch.
func Describe(p convolve.Pixel) string {
	c := colorful.Color{
		R: float64(p.R()) / 255,
		G: float64(p.G()) / 255,
		B: float64(p.B()) / 255,
	}
	h, s, l := c.Hsl()
	lightness, a, bb := c.Lab()

	tone, text := "dark", "white"
	if p.IsLight() {
		tone, text = "light", "black"
	}

	rows := [][2]string{
		{"hex", p.Hex()},
		{"rgb", fmt.Sprintf("%d %d %d", p.R(), p.G(), p.B())},
		{"gray", strconv.Itoa(p.Gray())},
		{"tone", tone},
		{"text", text + " " + p.TextColor()},
		{"hsl", fmt.Sprintf("%.1f° %.1f%% %.1f%%", h, s*100, l*100)},
		{"lab", fmt.Sprintf("L %.1f a %.1f b %.1f", lightness*100, a*100, bb*100)},
	}

	key := lipgloss.NewStyle().Width(6).Bold(true)
	var b strings.Builder
	b.WriteString(cellStyle(p, 16).Render(p.Hex()))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(key.Render(r[0]))
		b.WriteString(r[1])
	}
	return b.String()
}

// Trace formats a step trace: a header, one table row per kernel term,
// then the sums and the result.
func Trace(t *convolve.Trace) string {
	if t == nil {
		return ""
	}
	chans := strings.Join(t.Channels(), "/")

	var b strings.Builder
	fmt.Fprintf(&b, "output (%d, %d)  kernel %dx%d / %s  mode %s  edge %s\n",
		t.Row, t.Col, t.Kernel.Size(), t.Kernel.Size(),
		formatFloat(t.Kernel.Divisor), t.Mode, t.Edge)
	fmt.Fprintf(&b, "input %s\n", t.Input)

	if t.Passthrough {
		b.WriteString("window leaves the grid: input copied to output\n")
		fmt.Fprintf(&b, "result %s", t.Result)
		return b.String()
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("kernel", "source", "used", "weight", chans, "weight x "+chans)
	for _, term := range t.Terms {
		tbl.Row(
			fmt.Sprintf("(%d, %d)", term.KernelRow, term.KernelCol),
			fmt.Sprintf("(%d, %d)", term.Row, term.Col),
			usedCell(term),
			formatFloat(term.Weight),
			joinInts(term.Values),
			joinFloats(term.Products),
		)
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "sum     %s\n", joinFloats(t.Sums))
	fmt.Fprintf(&b, "divided %s\n", joinFloats(t.Divided))
	fmt.Fprintf(&b, "result  %s", t.Result)
	return b.String()
}

func usedCell(t convolve.Term) string {
	switch {
	case !t.Sampled:
		return "zero"
	case t.InBounds:
		return "yes"
	default:
		return fmt.Sprintf("(%d, %d)", t.SourceRow, t.SourceCol)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, "/")
}
